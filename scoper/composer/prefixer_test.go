package composer

import (
	"testing"

	"github.com/erraggy/phpscoper/scoperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNamespacePrefixer(t *testing.T) {
	tests := []struct {
		prefix  string
		want    string
		wantErr bool
	}{
		{"Humbug", "Humbug", false},
		{`Humbug\`, "Humbug", false},
		{`\Acme\Vendor\`, `Acme\Vendor`, false},
		{"_Scoped123", "_Scoped123", false},
		{"", "", true},
		{`\`, "", true},
		{"1abc", "", true},
		{"Acme-Vendor", "", true},
		{`Acme\\Vendor`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			p, err := NewNamespacePrefixer(tt.prefix)
			if tt.wantErr {
				assert.ErrorIs(t, err, scoperrors.ErrConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Prefix())
		})
	}
}

func TestWithExcludedNamespacesEmpty(t *testing.T) {
	_, err := NewNamespacePrefixer("Humbug", WithExcludedNamespaces(`\`))
	assert.ErrorIs(t, err, scoperrors.ErrConfig)
}

func TestNamespacePrefixer_PrefixPackage(t *testing.T) {
	p, err := NewNamespacePrefixer("Humbug", WithExcludedNamespaces(`Psr\Log`))
	require.NoError(t, err)

	pkg := Package{
		"name": "acme/foo",
		"autoload": map[string]any{
			"psr-4": map[string]any{
				`Acme\Foo\`:       "src/",
				`Humbug\Already\`: "already/",
				`Psr\Log\`:        "psr/",
				"":                "fallback/",
				`\Leading\Slash\`: "leading/",
			},
			"psr-0": map[string]any{
				"Twig_": "lib/",
			},
			"classmap": []any{"legacy/"},
			"files":    []any{"src/functions.php"},
		},
		"autoload-dev": map[string]any{
			"psr-4": map[string]any{
				`Acme\Foo\Tests\`: []any{"tests/", "fixtures/"},
			},
		},
		"version": "1.0.0",
	}

	out, err := p.PrefixPackage(pkg)
	require.NoError(t, err)

	autoload := out["autoload"].(map[string]any)
	assert.Equal(t, map[string]any{
		`Humbug\Acme\Foo\`:      "src/",
		`Humbug\Already\`:       "already/",
		`Psr\Log\`:              "psr/",
		"":                      "fallback/",
		`Humbug\Leading\Slash\`: "leading/",
	}, autoload["psr-4"])
	assert.Equal(t, map[string]any{`Humbug\Twig_`: "lib/"}, autoload["psr-0"])
	assert.Equal(t, []any{"legacy/"}, autoload["classmap"])
	assert.Equal(t, []any{"src/functions.php"}, autoload["files"])

	dev := out["autoload-dev"].(map[string]any)
	assert.Equal(t, map[string]any{`Humbug\Acme\Foo\Tests\`: []any{"tests/", "fixtures/"}}, dev["psr-4"])
	assert.Equal(t, "1.0.0", out["version"])

	t.Run("input is not modified", func(t *testing.T) {
		in := pkg["autoload"].(map[string]any)["psr-4"].(map[string]any)
		assert.Contains(t, in, `Acme\Foo\`)
		assert.NotContains(t, in, `Humbug\Acme\Foo\`)
	})

	t.Run("idempotent", func(t *testing.T) {
		again, err := p.PrefixPackage(out)
		require.NoError(t, err)
		assert.Equal(t, out, again)
	})
}

func TestNamespacePrefixer_NoAutoload(t *testing.T) {
	p, err := NewNamespacePrefixer("Humbug")
	require.NoError(t, err)

	tests := []struct {
		name string
		pkg  Package
	}{
		{"no autoload", Package{"name": "acme/meta"}},
		{"empty list autoload", Package{"name": "acme/meta", "autoload": []any{}}},
		{"empty list psr-4", Package{"name": "acme/meta", "autoload": map[string]any{"psr-4": []any{}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := p.PrefixPackage(tt.pkg)
			require.NoError(t, err)
			assert.Equal(t, tt.pkg, out)
		})
	}
}

func TestNamespacePrefixer_Malformed(t *testing.T) {
	p, err := NewNamespacePrefixer("Humbug")
	require.NoError(t, err)

	tests := []struct {
		name  string
		pkg   Package
		field string
	}{
		{
			name:  "autoload is a string",
			pkg:   Package{"name": "acme/foo", "autoload": "src/"},
			field: "acme/foo.autoload",
		},
		{
			name:  "psr-4 is a list of paths",
			pkg:   Package{"name": "acme/foo", "autoload-dev": map[string]any{"psr-4": []any{"src/"}}},
			field: "acme/foo.autoload-dev.psr-4",
		},
		{
			name:  "unnamed package",
			pkg:   Package{"autoload": map[string]any{"psr-0": 1}},
			field: "autoload.psr-0",
		},
		{
			name: "prefixed namespace already declared",
			pkg: Package{"name": "acme/foo", "autoload": map[string]any{"psr-4": map[string]any{
				`Acme\`:        "src/",
				`Humbug\Acme\`: "other/",
			}}},
			field: "acme/foo.autoload.psr-4",
		},
		{
			name: "namespaces differing only in leading backslashes",
			pkg: Package{"name": "acme/foo", "autoload": map[string]any{"psr-4": map[string]any{
				`Foo\`:  "src/",
				`\Foo\`: "lib/",
			}}},
			field: "acme/foo.autoload.psr-4",
		},
		{
			name: "dev namespaces differing only in leading backslashes",
			pkg: Package{"name": "acme/foo", "autoload-dev": map[string]any{"psr-0": map[string]any{
				`\Foo_`: "tests/",
				`Foo_`:  "spec/",
			}}},
			field: "acme/foo.autoload-dev.psr-0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.PrefixPackage(tt.pkg)
			var shapeErr *scoperrors.ShapeError
			require.ErrorAs(t, err, &shapeErr)
			assert.Equal(t, tt.field, shapeErr.Field)
		})
	}
}
