package infrastructure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathrly.app/internal/ports"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("INFO"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestSlogLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerAdapter(&buf, "info")

	logger.Debug("hidden")
	logger.Info("Weather lookup completed", ports.F("city", "Rome"), ports.F("source", "live"))
	logger.Error("boom", ports.F("error", fmt.Errorf("upstream down")))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var info map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &info))
	assert.Equal(t, "INFO", info["level"])
	assert.Equal(t, "Weather lookup completed", info["msg"])
	assert.Equal(t, "Rome", info["city"])
	assert.Equal(t, "live", info["source"])

	var errorEntry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &errorEntry))
	assert.Equal(t, "upstream down", errorEntry["error"])
	assert.NotNil(t, logger.Slog())
}
