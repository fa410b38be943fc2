package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewZapLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos.log")
	log := NewZapLogger(&ZapLoggerConfig{
		Encoding:          "json",
		Level:             "info",
		DisableStacktrace: true,
		FilePath:          path,
	})
	log.Info("sale finalized", zap.Int64("sale_id", 7))
	log.Debug("filtered out")
	_ = log.Sync()

	assert.FileExists(t, path)
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	log := NewZapLogger(&ZapLoggerConfig{Encoding: "console", Level: "loud"})
	require.NotNil(t, log)
}

func TestFromZapKeepsFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := FromZap(zap.New(core)).With(zap.String("session_id", "s-1"))

	log.Warn("stock rejected", zap.String("code", "A1"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "stock rejected", entry.Message)
	assert.Equal(t, "s-1", entry.ContextMap()["session_id"])
	assert.Equal(t, "A1", entry.ContextMap()["code"])
}
