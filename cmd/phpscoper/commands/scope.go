package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/erraggy/phpscoper/config"
	"github.com/erraggy/phpscoper/internal/fileutil"
	"github.com/erraggy/phpscoper/internal/runner"
	"github.com/erraggy/phpscoper/scoper"
)

// ScopeFlags contains flags for the scope command
type ScopeFlags struct {
	Config    string
	EnvFile   string
	Prefix    string
	OutputDir string
	BaseDir   string
	Stdout    bool
	Verbose   bool
	Quiet     bool
}

// SetupScopeFlags creates and configures a FlagSet for the scope command.
// Returns the FlagSet and a ScopeFlags struct with bound flag variables.
func SetupScopeFlags() (*flag.FlagSet, *ScopeFlags) {
	fs := flag.NewFlagSet("scope", flag.ContinueOnError)
	flags := &ScopeFlags{}

	fs.StringVar(&flags.Config, "c", "", "YAML configuration file")
	fs.StringVar(&flags.Config, "config", "", "YAML configuration file")
	fs.StringVar(&flags.EnvFile, "env-file", ".env", "dotenv file loaded before reading PHPSCOPER_* variables")
	fs.StringVar(&flags.Prefix, "p", "", "namespace prefix (overrides config and PHPSCOPER_PREFIX)")
	fs.StringVar(&flags.Prefix, "prefix", "", "namespace prefix (overrides config and PHPSCOPER_PREFIX)")
	fs.StringVar(&flags.OutputDir, "o", "", "output directory (default: build)")
	fs.StringVar(&flags.OutputDir, "output-dir", "", "output directory (default: build)")
	fs.StringVar(&flags.BaseDir, "base-dir", ".", "directory input paths are relative to in the output")
	fs.BoolVar(&flags.Stdout, "stdout", false, "write the scoped contents to stdout instead of the output directory")
	fs.BoolVar(&flags.Verbose, "v", false, "log every scoped file")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log every scoped file")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only log errors")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only log errors")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: phpscoper scope [flags] <file>...\n\n")
		Writef(fs.Output(), "Prefix the namespaces of PHP dependency files.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  phpscoper scope --prefix Humbug vendor/composer/installed.json\n")
		Writef(fs.Output(), "  phpscoper scope -c phpscoper.yaml -o build vendor/autoload.php vendor/composer/installed.json\n")
		Writef(fs.Output(), "  phpscoper scope -p Humbug --stdout vendor/composer/installed.json\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - vendor/composer/installed.json has every package's autoload namespaces prefixed\n")
		Writef(fs.Output(), "  - configured patches are applied afterwards, in order\n")
		Writef(fs.Output(), "  - the first failing file aborts the run and nothing is written\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    All files scoped\n")
		Writef(fs.Output(), "  1    Scoping failed\n")
	}

	return fs, flags
}

// HandleScope executes the scope command
func HandleScope(args []string) error {
	return runScope(args, os.Stdout, os.Stderr)
}

func runScope(args []string, stdout, stderr io.Writer) error {
	fs, flags := SetupScopeFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("scope command requires at least one file")
	}
	if flags.Stdout && fs.NArg() != 1 {
		return errors.New("--stdout requires exactly one file")
	}
	if flags.Verbose && flags.Quiet {
		return errors.New("cannot use --verbose and --quiet together")
	}

	cfg, err := loadScopeConfig(flags)
	if err != nil {
		return err
	}

	docs, err := readDocuments(flags.BaseDir, fs.Args())
	if err != nil {
		return err
	}

	logger := newLogger(stderr, flags.Verbose, flags.Quiet)
	result, err := runner.Run(docs, runner.WithConfig(cfg), runner.WithLogger(logger))
	if err != nil {
		return err
	}

	if flags.Stdout {
		Writef(stdout, "%s\n", result.Documents[0].Contents)
		return nil
	}
	return writeDocuments(cfg.OutputDir, result.Documents, logger)
}

// loadScopeConfig resolves the configuration: file, then environment, then flags.
func loadScopeConfig(flags *ScopeFlags) (*config.Config, error) {
	if err := config.LoadDotEnv(flags.EnvFile); err != nil {
		return nil, err
	}

	cfg := config.Default()
	if flags.Config != "" {
		loaded, err := config.Load(flags.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv(os.LookupEnv)

	if flags.Prefix != "" {
		cfg.Prefix = flags.Prefix
	}
	if flags.OutputDir != "" {
		cfg.OutputDir = flags.OutputDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readDocuments reads every input. Document paths are slash-separated and
// relative to baseDir, which is what patch globs are matched against.
func readDocuments(baseDir string, paths []string) ([]scoper.Document, error) {
	docs := make([]scoper.Document, 0, len(paths))
	for _, path := range paths {
		rel, err := fileutil.RelPath(baseDir, path)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path) //nolint:gosec // G304: reading user-named inputs is the command's purpose
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		docs = append(docs, scoper.Document{Path: filepath.ToSlash(rel), Contents: string(data)})
	}
	return docs, nil
}

// writeDocuments writes every document to the same relative location under
// outputDir.
func writeDocuments(outputDir string, docs []scoper.Document, logger scoper.Logger) error {
	for _, doc := range docs {
		target := filepath.Join(outputDir, filepath.FromSlash(doc.Path))
		if err := fileutil.WriteFile(target, []byte(doc.Contents)); err != nil {
			return err
		}
		logger.Debug("wrote file", "path", target)
	}
	return nil
}
