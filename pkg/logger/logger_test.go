package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewConfig_Levels(t *testing.T) {
	tests := []struct {
		env, level string
		want       zapcore.Level
		encoding   string
	}{
		{env: "production", want: zapcore.InfoLevel, encoding: "json"},
		{env: "development", want: zapcore.DebugLevel, encoding: "console"},
		{env: "production", level: "warn", want: zapcore.WarnLevel, encoding: "json"},
		{env: "development", level: "nonsense", want: zapcore.DebugLevel, encoding: "console"},
	}
	for _, tt := range tests {
		cfg := newConfig(tt.env, tt.level)
		assert.Equal(t, tt.want, cfg.Level.Level(), "%s/%s", tt.env, tt.level)
		assert.Equal(t, tt.encoding, cfg.Encoding)
	}
}

func TestZapLogger_ErrorCarriesErrField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := (&zapLogger{logger: zap.New(core)}).With(zap.String("request_id", "r1"))

	l.Error("render failed", errors.New("boom"), zap.String("section", "home"))
	l.Error("no cause", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, "boom", fields["error"])
	assert.Equal(t, "home", fields["section"])
	assert.Equal(t, "r1", fields["request_id"])
	assert.NotContains(t, entries[1].ContextMap(), "error")
}
