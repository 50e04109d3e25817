package mcpserver

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const installedJSON = `{"packages": [{"name": "acme/foo", "autoload": {"psr-4": {"Acme\\": "src/"}}}]}`

// errorText returns the text of an error result.
func errorText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestScopeTool_InstalledJSON(t *testing.T) {
	input := scopeInput{
		FilePath: "vendor/composer/installed.json",
		Contents: installedJSON,
		Prefix:   "Humbug",
	}
	result, output, err := handleScope(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.True(t, output.Handled)
	assert.True(t, output.Changed)
	assert.Contains(t, output.Contents, `"Humbug\\Acme\\": "src/"`)
}

func TestScopeTool_OtherFile(t *testing.T) {
	input := scopeInput{
		FilePath: "src/Foo.php",
		Contents: "<?php namespace Acme;",
		Prefix:   "Humbug",
	}
	_, output, err := handleScope(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.False(t, output.Handled)
	assert.False(t, output.Changed)
	assert.Equal(t, input.Contents, output.Contents)
}

func TestScopeTool_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input scopeInput
		want  string
	}{
		{
			name:  "missing file path",
			input: scopeInput{Contents: "x", Prefix: "Humbug"},
			want:  "file_path is required",
		},
		{
			name:  "missing prefix",
			input: scopeInput{FilePath: "a.php", Contents: "x"},
			want:  "a prefix is required",
		},
		{
			name:  "not an object",
			input: scopeInput{FilePath: "vendor/composer/installed.json", Contents: "[]", Prefix: "Humbug"},
			want:  "decode error",
		},
		{
			name:  "no packages",
			input: scopeInput{FilePath: "vendor/composer/installed.json", Contents: "{}", Prefix: "Humbug"},
			want:  "shape error",
		},
	}

	prevPrefix := cfg.DefaultPrefix
	cfg.DefaultPrefix = ""
	t.Cleanup(func() { cfg.DefaultPrefix = prevPrefix })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleScope(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			assert.Contains(t, errorText(t, result), tt.want)
		})
	}
}

func TestScopeTool_DefaultPrefix(t *testing.T) {
	prevPrefix := cfg.DefaultPrefix
	cfg.DefaultPrefix = "Scoped"
	t.Cleanup(func() { cfg.DefaultPrefix = prevPrefix })

	input := scopeInput{FilePath: "vendor/composer/installed.json", Contents: installedJSON}
	_, output, err := handleScope(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Contains(t, output.Contents, `"Scoped\\Acme\\": "src/"`)
}

func TestScopeTool_MaxContentBytes(t *testing.T) {
	prevMax := cfg.MaxContentBytes
	cfg.MaxContentBytes = 4
	t.Cleanup(func() { cfg.MaxContentBytes = prevMax })

	result, _, err := handleScope(context.Background(), &mcp.CallToolRequest{}, scopeInput{FilePath: "a.php", Contents: "12345", Prefix: "Humbug"})
	require.NoError(t, err)
	assert.Contains(t, errorText(t, result), "exceed 4 bytes")
}

func TestSanitizeError(t *testing.T) {
	assert.Empty(t, sanitizeError(nil))
	assert.Equal(t, "reading <path>: denied", sanitizeError(errors.New("reading /home/user/vendor/composer/installed.json: denied")))
}

func TestNewServer(t *testing.T) {
	assert.NotNil(t, newServer())
}
