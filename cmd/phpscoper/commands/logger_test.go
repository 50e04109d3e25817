package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		quiet     bool
		wantDebug bool
		wantInfo  bool
	}{
		{"default", false, false, false, true},
		{"verbose", true, false, true, true},
		{"quiet", false, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.verbose, tt.quiet)

			logger.Debug("debug message")
			logger.Info("info message")
			logger.Error("error message")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug message")))
			assert.Equal(t, tt.wantInfo, bytes.Contains(buf.Bytes(), []byte("info message")))
			assert.Contains(t, out, "error message")
		})
	}
}

func TestZapLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, false, false).With("path", "vendor/composer/installed.json")

	logger.Warn("odd file", "size", 3)

	out := buf.String()
	assert.Contains(t, out, "odd file")
	assert.Contains(t, out, "vendor/composer/installed.json")
	assert.Contains(t, out, `"size": 3`)
}
