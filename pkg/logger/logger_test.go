package logger_test

import (
	"testing"

	"github.com/funkybooboo/alle-sub000/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, logger.ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, logger.ParseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, logger.ParseLevel(" error "))
	assert.Equal(t, zapcore.InfoLevel, logger.ParseLevel("nonsense"))
	assert.Equal(t, zapcore.InfoLevel, logger.ParseLevel(""))
}

func TestNewWithCore_FiltersBelowMinimumLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var log logger.Logger = logger.NewWithCore(core, "warn")

	log.Debug("dropped")
	log.Info("dropped too")
	log.Warn("kept", zap.String("k", "v"))
	log.Error("kept as well")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "kept", entries[0].Message)
	assert.Equal(t, "v", entries[0].ContextMap()["k"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestNew_BuildsLogger(t *testing.T) {
	log, err := logger.New("debug")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}
