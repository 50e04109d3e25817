package composer

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/erraggy/phpscoper/scoper"
	"github.com/erraggy/phpscoper/scoperrors"
	"go.yaml.in/yaml/v4"
)

// installedFilePattern matches the path of Composer's installed packages list.
var installedFilePattern = regexp.MustCompile(`composer(/|\\)installed\.json$`)

// packagesField is the container field holding the package records.
const packagesField = "packages"

// IsInstalledPackagesFile reports whether filePath names a Composer
// installed.json file. The check is purely syntactic.
func IsInstalledPackagesFile(filePath string) bool {
	return installedFilePattern.MatchString(filePath)
}

// InstalledPackagesScoper prefixes the autoload statements of every package
// listed in vendor/composer/installed.json and delegates every other file to
// the scoper it decorates.
type InstalledPackagesScoper struct {
	decorated scoper.Scoper
	prefixer  AutoloadPrefixer
}

// NewInstalledPackagesScoper creates a scoper that handles installed.json
// with prefixer and passes all other files to decorated.
func NewInstalledPackagesScoper(decorated scoper.Scoper, prefixer AutoloadPrefixer) (*InstalledPackagesScoper, error) {
	if decorated == nil {
		return nil, &scoperrors.ConfigError{Option: "decorated", Message: "decorated scoper cannot be nil"}
	}
	if prefixer == nil {
		return nil, &scoperrors.ConfigError{Option: "prefixer", Message: "autoload prefixer cannot be nil"}
	}
	return &InstalledPackagesScoper{
		decorated: decorated,
		prefixer:  prefixer,
	}, nil
}

// Scope implements scoper.Scoper.
func (s *InstalledPackagesScoper) Scope(filePath, contents string) (string, error) {
	if !IsInstalledPackagesFile(filePath) {
		return s.decorated.Scope(filePath, contents)
	}
	return rewritePackages(filePath, contents, s.prefixer)
}

// RewritePackages decodes an installed.json document, replaces every package
// record with the result of prefixer, and re-encodes the document.
func RewritePackages(contents string, prefixer AutoloadPrefixer) (string, error) {
	return rewritePackages("", contents, prefixer)
}

func rewritePackages(filePath, contents string, prefixer AutoloadPrefixer) (string, error) {
	root, node, err := decodeContainer(filePath, contents)
	if err != nil {
		return "", err
	}

	order := extractKeyOrder(lookupValue(node, packagesField))
	packages, err := checkPackages(filePath, root[packagesField], order)
	if err != nil {
		return "", err
	}

	prefixed, err := prefixPackages(filePath, packages, order, prefixer)
	if err != nil {
		return "", err
	}

	root[packagesField] = prefixed

	out, err := encodeOrdered(node, root)
	if err != nil {
		return "", fmt.Errorf("composer: encoding installed packages: %w", err)
	}
	return out, nil
}

// decodeContainer decodes contents and requires a top-level JSON object.
func decodeContainer(filePath, contents string) (map[string]any, *yaml.Node, error) {
	data, node, err := decodeOrdered(contents)
	if err != nil {
		return nil, nil, &scoperrors.DecodeError{
			Path:    filePath,
			Message: "invalid JSON",
			Cause:   err,
		}
	}

	root, ok := data.(map[string]any)
	if !ok {
		return nil, nil, &scoperrors.DecodeError{
			Path:    filePath,
			Message: fmt.Sprintf("expected the decoded JSON to be an object, got %s instead", jsonKind(data)),
		}
	}
	return root, node, nil
}

// checkPackages validates the packages field before any record is touched.
// It must be either an object or an array, and every entry must be an object.
// order lists the object keys as they appear in the source, so the first
// offending entry is always the one reported.
func checkPackages(filePath string, raw any, order []string) (any, error) {
	noPackages := &scoperrors.ShapeError{
		Path:    filePath,
		Field:   packagesField,
		Message: "expected the decoded JSON to contain the list of installed packages",
	}

	switch packages := raw.(type) {
	case map[string]any:
		for _, name := range order {
			if pkg := packages[name]; !isObject(pkg) {
				return nil, notAPackage(filePath, packagesField+"."+name, pkg)
			}
		}
		return packages, nil
	case []any:
		for i, pkg := range packages {
			if !isObject(pkg) {
				return nil, notAPackage(filePath, packagesField+"["+strconv.Itoa(i)+"]", pkg)
			}
		}
		return packages, nil
	default:
		if raw != nil {
			noPackages.Message += ", got " + jsonKind(raw)
		}
		return nil, noPackages
	}
}

func isObject(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

func notAPackage(filePath, field string, v any) error {
	return &scoperrors.ShapeError{
		Path:    filePath,
		Field:   field,
		Message: "expected a package object, got " + jsonKind(v),
	}
}

// prefixPackages hands every record to prefixer in source order and returns
// a new collection with the same keys, or the same length for arrays.
// order lists the object keys as they appear in the source.
func prefixPackages(filePath string, packages any, order []string, prefixer AutoloadPrefixer) (any, error) {
	switch p := packages.(type) {
	case []any:
		out := make([]any, len(p))
		for i, pkg := range p {
			prefixed, err := prefixOne(filePath, packagesField+"["+strconv.Itoa(i)+"]", pkg, prefixer)
			if err != nil {
				return nil, err
			}
			out[i] = prefixed
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(p))
		for _, name := range order {
			prefixed, err := prefixOne(filePath, packagesField+"."+name, p[name], prefixer)
			if err != nil {
				return nil, err
			}
			out[name] = prefixed
		}
		return out, nil
	default:
		return nil, &scoperrors.ShapeError{Path: filePath, Field: packagesField, Message: "unexpected packages type " + jsonKind(packages)}
	}
}

func prefixOne(filePath, field string, pkg any, prefixer AutoloadPrefixer) (any, error) {
	// checkPackages guarantees the assertion holds.
	prefixed, err := prefixer.PrefixPackage(Package(pkg.(map[string]any)))
	if err != nil {
		return nil, err
	}
	if prefixed == nil {
		return nil, &scoperrors.ShapeError{
			Path:    filePath,
			Field:   field,
			Message: "autoload prefixer returned no package",
		}
	}
	return map[string]any(prefixed), nil
}

var _ scoper.Scoper = (*InstalledPackagesScoper)(nil)
