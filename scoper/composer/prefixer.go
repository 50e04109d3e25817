package composer

import (
	"maps"
	"regexp"
	"strings"

	"github.com/erraggy/phpscoper/scoperrors"
)

// Package is one package record of installed.json. The rewriter treats it as
// opaque and hands it, whole, to an AutoloadPrefixer.
type Package map[string]any

// AutoloadPrefixer rewrites the autoload statements of a single package.
//
// Implementations validate the record's internals themselves and return an
// error for records they cannot handle. The returned record replaces the
// input in the rewritten document.
type AutoloadPrefixer interface {
	PrefixPackage(pkg Package) (Package, error)
}

// PrefixerFunc adapts an ordinary function to the AutoloadPrefixer interface.
type PrefixerFunc func(pkg Package) (Package, error)

// PrefixPackage calls f(pkg).
func (f PrefixerFunc) PrefixPackage(pkg Package) (Package, error) {
	return f(pkg)
}

// Autoload sections and the namespace-keyed mappings inside them.
var (
	autoloadSections = []string{"autoload", "autoload-dev"}
	namespaceKinds   = []string{"psr-4", "psr-0"}
)

// namespacePattern matches a PHP namespace without leading or trailing separators.
var namespacePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\\[A-Za-z_][A-Za-z0-9_]*)*$`)

// NamespacePrefixer prefixes the PSR-4 and PSR-0 namespaces declared in the
// autoload and autoload-dev sections of a package.
//
// Fallback directories (the empty namespace), excluded namespaces and
// namespaces that already carry the prefix are left as is, so applying the
// prefixer twice gives the same record as applying it once.
type NamespacePrefixer struct {
	prefix   string
	excluded map[string]bool
}

// PrefixerOption configures a NamespacePrefixer.
type PrefixerOption func(*NamespacePrefixer) error

// WithExcludedNamespaces leaves the given namespaces, and only those, unprefixed.
// Leading and trailing backslashes are ignored.
func WithExcludedNamespaces(namespaces ...string) PrefixerOption {
	return func(p *NamespacePrefixer) error {
		for _, ns := range namespaces {
			trimmed := trimNamespace(ns)
			if trimmed == "" {
				return &scoperrors.ConfigError{Option: "excluded namespace", Value: ns, Message: "namespace cannot be empty"}
			}
			p.excluded[trimmed] = true
		}
		return nil
	}
}

// NewNamespacePrefixer creates a prefixer for prefix, e.g. "Humbug" or "Acme\\Vendor".
func NewNamespacePrefixer(prefix string, opts ...PrefixerOption) (*NamespacePrefixer, error) {
	trimmed := trimNamespace(prefix)
	if !namespacePattern.MatchString(trimmed) {
		return nil, &scoperrors.ConfigError{
			Option:  "prefix",
			Value:   prefix,
			Message: "prefix must be a valid PHP namespace",
		}
	}

	p := &NamespacePrefixer{
		prefix:   trimmed,
		excluded: make(map[string]bool),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Prefix returns the namespace prefix without surrounding backslashes.
func (p *NamespacePrefixer) Prefix() string {
	return p.prefix
}

// PrefixPackage implements AutoloadPrefixer. pkg is not modified.
func (p *NamespacePrefixer) PrefixPackage(pkg Package) (Package, error) {
	name, _ := pkg["name"].(string)
	out := maps.Clone(pkg)

	for _, section := range autoloadSections {
		raw, ok := pkg[section]
		if !ok || isEmptyList(raw) {
			continue
		}
		autoload, ok := raw.(map[string]any)
		if !ok {
			return nil, shapeError(name, section, "expected an object, got "+jsonKind(raw))
		}

		prefixed, err := p.prefixSection(name, section, autoload)
		if err != nil {
			return nil, err
		}
		out[section] = prefixed
	}
	return out, nil
}

func (p *NamespacePrefixer) prefixSection(name, section string, autoload map[string]any) (map[string]any, error) {
	out := maps.Clone(autoload)

	for _, kind := range namespaceKinds {
		raw, ok := autoload[kind]
		if !ok || isEmptyList(raw) {
			continue
		}
		field := section + "." + kind
		namespaces, ok := raw.(map[string]any)
		if !ok {
			return nil, shapeError(name, field, "expected an object, got "+jsonKind(raw))
		}

		prefixed := make(map[string]any, len(namespaces))
		for ns, paths := range namespaces {
			key := p.prefixNamespace(ns)
			_, declared := namespaces[key]
			_, written := prefixed[key]
			if (key != ns && declared) || written {
				return nil, shapeError(name, field, "prefixed namespace "+key+" is already declared")
			}
			prefixed[key] = paths
		}
		out[kind] = prefixed
	}
	return out, nil
}

// prefixNamespace returns ns with the prefix applied, or ns itself when it
// must stay unprefixed.
func (p *NamespacePrefixer) prefixNamespace(ns string) string {
	trimmed := trimNamespace(ns)
	switch {
	case trimmed == "":
		return ns
	case p.excluded[trimmed]:
		return ns
	case trimmed == p.prefix, strings.HasPrefix(trimmed, p.prefix+`\`):
		return ns
	}
	return p.prefix + `\` + strings.TrimLeft(ns, `\`)
}

func trimNamespace(ns string) string {
	return strings.Trim(ns, `\`)
}

// isEmptyList reports whether v is an empty JSON array. PHP encodes an
// empty associative array as [], so Composer writes "autoload": [].
func isEmptyList(v any) bool {
	list, ok := v.([]any)
	return ok && len(list) == 0
}

func shapeError(pkgName, field, message string) error {
	if pkgName != "" {
		field = pkgName + "." + field
	}
	return &scoperrors.ShapeError{Field: field, Message: message}
}

var (
	_ AutoloadPrefixer = PrefixerFunc(nil)
	_ AutoloadPrefixer = (*NamespacePrefixer)(nil)
)
