package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ecotrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestNewZapLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	zl, err := NewZapLogger(ZapConfig{Level: "loud"}, nil)
	require.NoError(t, err)
	defer zl.Close()

	assert.True(t, zl.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, zl.Core().Enabled(zapcore.DebugLevel))
}

func TestNewZapLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ecotrack.log")

	zl, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path}, nil)
	require.NoError(t, err)

	zl.Debug("synced", String("merchant_id", "19"))
	require.NoError(t, zl.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"synced"`)
	assert.Contains(t, string(data), `"merchant_id":"19"`)
	assert.Equal(t, path, zl.GetFilePath())
}

func TestInitZapLoggerFromConfig(t *testing.T) {
	cfg := &models.Config{Logger: models.LoggerConfig{Level: "warn"}}

	zl, err := InitZapLoggerFromConfig(cfg, nil)
	require.NoError(t, err)
	defer zl.Close()

	assert.True(t, zl.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, zl.Core().Enabled(zapcore.InfoLevel))
}

func TestLogHTTPRequest_LevelByStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		err    error
		level  string
		msg    string
	}{
		{"ok", http.StatusOK, nil, "info", "Request processed"},
		{"client error", http.StatusMethodNotAllowed, nil, "warn", "Client error"},
		{"server error", http.StatusInternalServerError, errors.New("boom"), "error", "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			zl := NewWriterLogger(&buf, zapcore.DebugLevel)

			zl.LogHTTPRequest(nil, http.MethodGet, "/api/finance", "127.0.0.1", "req-1", tt.status, 5*time.Millisecond, tt.err)

			entries := decodeLines(t, &buf)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0]["level"])
			assert.Equal(t, tt.msg, entries[0]["message"])
			assert.Equal(t, "ecotrack", entries[0]["service"])
			assert.Equal(t, "/api/finance", entries[0]["path"])
			assert.Equal(t, "req-1", entries[0]["request_id"])
		})
	}
}

func TestGlobalHelpers_UseGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := GetGlobalLogger()
	SetGlobalLogger(NewWriterLogger(&buf, zapcore.DebugLevel))
	t.Cleanup(func() { SetGlobalLogger(prev) })

	Info("hello", Int("count", 3), Bool("ok", true))
	Error("failed", Err(errors.New("db down")))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "hello", entries[0]["message"])
	assert.Equal(t, float64(3), entries[0]["count"])
	assert.Equal(t, "db down", entries[1]["error"])
}

func TestZapEchoMiddleware_LogsRenderedStatus(t *testing.T) {
	var buf bytes.Buffer
	zl := NewWriterLogger(&buf, zapcore.DebugLevel)

	e := echo.New()
	e.Use(ZapEchoMiddleware(zl))
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom?x=1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, float64(http.StatusBadGateway), entries[0]["status"])
	assert.Equal(t, "/boom?x=1", entries[0]["path"])
}
