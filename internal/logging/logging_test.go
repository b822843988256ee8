package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" INFO ":  zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.WarnLevel,
		"":        zapcore.WarnLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in, zapcore.WarnLevel), "%q", in)
	}
}

func TestConsoleJSON(t *testing.T) {
	var buf bytes.Buffer
	log, closeLog := New(Options{Level: "info", Console: &buf})

	log.Debug("hidden")
	log.Info("video mode set", zap.Uint32("width", 640))
	require.NoError(t, closeLog())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "video mode set", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, float64(640), entry["width"])
}

func TestDevelopmentConsole(t *testing.T) {
	var buf bytes.Buffer
	log, closeLog := New(Options{Level: "debug", Development: true, Console: &buf})
	log.Debug("subsystem initialized")
	require.NoError(t, closeLog())
	assert.Contains(t, buf.String(), "subsystem initialized")
	assert.Contains(t, buf.String(), "DEBUG")
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "demo.log")
	var buf bytes.Buffer
	log, closeLog := New(Options{Level: "warn", FilePath: path, Console: &buf})

	log.Info("dropped")
	log.Warn("surface freed after video shutdown")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "surface freed after video shutdown")
	assert.NotContains(t, string(data), "dropped")
}

func TestFileWriterDefaults(t *testing.T) {
	lj := FileWriter("x.log", Options{MaxBackups: 9})
	assert.Equal(t, DefaultMaxSizeMB, lj.MaxSize)
	assert.Equal(t, 9, lj.MaxBackups)
	assert.Equal(t, DefaultMaxAgeDays, lj.MaxAge)
}
