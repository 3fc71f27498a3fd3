package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
)

func TestZapLogger_Levels(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	log := NewFromCore(obsCore, core.LogLevelInfo)

	log.Debug("hidden", nil)
	log.Info("shown", map[string]any{"unit_of_work": "u-1"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "shown", entry.Message)
	assert.Equal(t, "u-1", entry.ContextMap()["unit_of_work"])

	t.Run("SetLevel takes effect immediately", func(t *testing.T) {
		log.SetLevel(core.LogLevelDebug)
		assert.Equal(t, core.LogLevelDebug, log.GetLevel())

		log.Debug("now visible", nil)
		assert.Equal(t, 1, logs.FilterMessage("now visible").Len())

		log.SetLevel(core.LogLevelError)
		assert.Equal(t, core.LogLevelError, log.GetLevel())
		log.Warn("suppressed", nil)
		log.Error("kept", nil)
		assert.Equal(t, 0, logs.FilterMessage("suppressed").Len())
		assert.Equal(t, 1, logs.FilterMessage("kept").Len())
	})
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger()

	log.Info("ignored", map[string]any{"k": "v"})
	assert.Equal(t, core.LogLevelInfo, log.GetLevel())
	assert.NoError(t, log.Flush())
}

func TestToZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, toZapLevel(core.LogLevelDebug))
	assert.Equal(t, zapcore.InfoLevel, toZapLevel(core.LogLevelInfo))
	assert.Equal(t, zapcore.WarnLevel, toZapLevel(core.LogLevelWarn))
	assert.Equal(t, zapcore.ErrorLevel, toZapLevel(core.LogLevelError))
	assert.Equal(t, zapcore.InfoLevel, toZapLevel(core.LogLevel(42)))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, core.LogLevelDebug, ParseLevel("debug"))
	assert.Equal(t, core.LogLevelWarn, ParseLevel("WARN"))
	assert.Equal(t, core.LogLevelError, ParseLevel("error"))
	assert.Equal(t, core.LogLevelError, ParseLevel("fatal"))
	assert.Equal(t, core.LogLevelInfo, ParseLevel("verbose"))
	assert.Equal(t, core.LogLevelInfo, ParseLevel(""))
}
