// Package config loads phpscoper configuration from YAML files and the
// environment.
//
// A configuration file looks like:
//
//	prefix: Humbug
//	exclude-namespaces:
//	  - Psr\Log
//	output-dir: build
//	patches:
//	  - files: ["vendor/**/*.php"]
//	    search: \Composer\Autoload\
//	    replace: \%prefix%\Composer\Autoload\
//
// Environment variables override file values:
//
//   - PHPSCOPER_PREFIX overrides prefix
//   - PHPSCOPER_OUTPUT_DIR overrides output-dir
//
// [LoadDotEnv] reads a .env file into the environment first, without
// overriding variables that are already set.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/phpscoper/patcher"
	"github.com/erraggy/phpscoper/scoper/composer"
	"github.com/erraggy/phpscoper/scoperrors"
)

// Environment variable names.
const (
	EnvPrefix    = "PHPSCOPER_PREFIX"
	EnvOutputDir = "PHPSCOPER_OUTPUT_DIR"
)

// DefaultOutputDir is the output directory used when none is configured.
const DefaultOutputDir = "build"

// Config is the phpscoper configuration.
type Config struct {
	// Prefix is the namespace prefix applied to the dependency tree.
	Prefix string `yaml:"prefix"`

	// ExcludeNamespaces lists namespaces that keep their original name.
	ExcludeNamespaces []string `yaml:"exclude-namespaces,omitempty"`

	// OutputDir is where scoped files are written.
	OutputDir string `yaml:"output-dir,omitempty"`

	// Patches are applied, in order, to every scoped file they match.
	Patches []Patch `yaml:"patches,omitempty"`
}

// Patch is a declarative search and replace applied after scoping.
type Patch struct {
	// Files are doublestar patterns; empty means every file.
	Files []string `yaml:"files,omitempty"`
	// Search is the literal text to replace.
	Search string `yaml:"search"`
	// Replace is the replacement; "%prefix%" expands to the prefix.
	Replace string `yaml:"replace"`
}

// Default returns a configuration with default values and no prefix.
func Default() *Config {
	return &Config{OutputDir: DefaultOutputDir}
}

// Parse decodes a YAML configuration. Unknown fields are rejected.
// An empty document yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, &scoperrors.ConfigError{
			Option:  "config",
			Message: "invalid configuration document",
			Cause:   err,
		}
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	return cfg, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the user on purpose
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDotEnv loads the given .env files into the process environment.
// Missing files are ignored; variables already set are not overridden.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: loading %s: %w", path, err)
		}
	}
	return nil
}

// ApplyEnv overrides configuration values with environment variables.
// lookup is typically os.LookupEnv. Empty values are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvPrefix); ok && v != "" {
		c.Prefix = v
	}
	if v, ok := lookup(EnvOutputDir); ok && v != "" {
		c.OutputDir = v
	}
}

// Validate checks that the configuration can build a scoping pipeline.
func (c *Config) Validate() error {
	if _, err := c.Prefixer(); err != nil {
		return err
	}
	_, err := c.Patchers()
	return err
}

// Prefixer builds the autoload prefixer for the configured prefix and exclusions.
func (c *Config) Prefixer() (*composer.NamespacePrefixer, error) {
	if c.Prefix == "" {
		return nil, &scoperrors.ConfigError{Option: "prefix", Message: "a prefix is required"}
	}
	return composer.NewNamespacePrefixer(c.Prefix, composer.WithExcludedNamespaces(c.ExcludeNamespaces...))
}

// Patchers builds the configured patches, in order.
func (c *Config) Patchers() ([]patcher.Patcher, error) {
	patchers := make([]patcher.Patcher, 0, len(c.Patches))
	for i, p := range c.Patches {
		r, err := patcher.NewReplace(p.Files, p.Search, p.Replace)
		if err != nil {
			return nil, fmt.Errorf("config: patches[%d]: %w", i, err)
		}
		patchers = append(patchers, r)
	}
	return patchers, nil
}
