package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"art-atlas/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(config.LoggerConfig{Level: "info", Env: "production"}, &buf)
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("Catalog ready", zap.Int("items", 3))
	require.NoError(t, l.Sync())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "Catalog ready", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 3, entry["items"])
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(config.LoggerConfig{Level: "warn"}, &buf)
	require.NoError(t, err)

	l.Info("quiet")
	assert.Empty(t, buf.String())
	l.Warn("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(config.LoggerConfig{Level: "chatty"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestGet_BeforeInitialize(t *testing.T) {
	log = nil
	assert.NotNil(t, Get())
	assert.NoError(t, Sync())
}
