package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		json  bool
		debug bool
		level zapcore.Level
	}{
		{"Console info", false, false, zapcore.InfoLevel},
		{"Console debug", false, true, zapcore.DebugLevel},
		{"JSON info", true, false, zapcore.InfoLevel},
		{"JSON debug", true, true, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.json, tt.debug)
			require.NoError(t, err)
			require.NotNil(t, log)

			assert.True(t, log.Core().Enabled(tt.level))
			if tt.level == zapcore.InfoLevel {
				assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
			}
		})
	}
}
