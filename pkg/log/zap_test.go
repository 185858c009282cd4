package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"DEBUG", zapcore.DebugLevel},
		{"debug", zapcore.DebugLevel},
		{" info ", zapcore.InfoLevel},
		{"WARNING", zapcore.WarnLevel},
		{"warn", zapcore.WarnLevel},
		{"ERROR", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { SetLevel("INFO") })

	SetLevel("ERROR")
	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))

	SetLevel("DEBUG")
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
