package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("PHPSCOPER_MCP_PREFIX", "Humbug")
	t.Setenv("PHPSCOPER_MCP_MAX_BYTES", "2048")

	c := loadConfig()
	assert.Equal(t, "Humbug", c.DefaultPrefix)
	assert.Equal(t, 2048, c.MaxContentBytes)
}

func TestEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset", "", 7},
		{"valid", "42", 42},
		{"not a number", "abc", 7},
		{"zero", "0", 7},
		{"negative", "-1", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PHPSCOPER_TEST_INT", tt.value)
			assert.Equal(t, tt.want, envInt("PHPSCOPER_TEST_INT", 7))
		})
	}
}
