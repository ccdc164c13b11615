package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixWriter(t *testing.T) {
	var out bytes.Buffer
	pw := NewPrefixWriter("> ", &out)

	n, err := pw.Write([]byte("one\ntw"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, "> one\n", out.String())

	_, err = pw.Write([]byte("o\nthree"))
	require.NoError(t, err)
	assert.Equal(t, "> one\n> two\n", out.String())

	require.NoError(t, pw.Flush())
	assert.Equal(t, "> one\n> two\n> three", out.String())

	require.NoError(t, pw.Flush())
	assert.Equal(t, "> one\n> two\n> three", out.String())
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestPrefixWriterErrors(t *testing.T) {
	closed := errors.New("log file closed")
	pw := NewPrefixWriter("> ", failingWriter{err: closed})

	n, err := pw.Write([]byte("partial"))
	require.NoError(t, err, "nothing is forwarded until a newline")
	assert.Equal(t, 7, n)

	n, err = pw.Write([]byte(" line\n"))
	assert.ErrorIs(t, err, closed)
	assert.Zero(t, n)

	_, err = pw.Write([]byte("tail"))
	require.NoError(t, err)
	assert.ErrorIs(t, pw.Flush(), closed)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in    string
		level string
		json  bool
	}{
		{"debug", "debug", false},
		{"off", "off", false},
		{"json", "info", true},
		{"json:trace", "trace", true},
		{"JSON:warn", "warn", true},
		{"json:", "info", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			level, jsonFormat := ParseLevel(tt.in)
			assert.Equal(t, tt.level, level)
			assert.Equal(t, tt.json, jsonFormat)
		})
	}
}

func TestResolveLevel(t *testing.T) {
	t.Setenv(EnvLauncherLogLevel, "")
	t.Setenv(EnvLogLevel, "")

	level, source := ResolveLevel("", "")
	assert.Equal(t, DefaultLevel, level)
	assert.Equal(t, "default", source)

	t.Setenv(EnvLogLevel, "info")
	level, source = ResolveLevel("", "")
	assert.Equal(t, "info", level)
	assert.Equal(t, EnvLogLevel, source)

	t.Setenv(EnvLauncherLogLevel, "debug")
	level, source = ResolveLevel("", "")
	assert.Equal(t, "debug", level)
	assert.Equal(t, EnvLauncherLogLevel, source)

	level, source = ResolveLevel("trace", "--log-level")
	assert.Equal(t, "trace", level)
	assert.Equal(t, "--log-level", source)
}

func TestNewLogger(t *testing.T) {
	t.Setenv(EnvJSONLog, "")

	t.Run("text output is prefixed", func(t *testing.T) {
		var out bytes.Buffer
		logger := NewLogger("radie-test", "debug", &out)
		logger.Debug("resolved layout", "runtime", "/opt/radie/runtime")

		line := out.String()
		assert.True(t, strings.HasPrefix(line, Prefix()), line)
		assert.Contains(t, line, "radie-test: resolved layout")
		assert.Contains(t, line, "runtime=/opt/radie/runtime")
	})

	t.Run("off is silent", func(t *testing.T) {
		var out bytes.Buffer
		logger := NewLogger("radie-test", "off", &out)
		logger.Error("not shown")
		assert.Empty(t, out.String())
	})

	t.Run("json output", func(t *testing.T) {
		var out bytes.Buffer
		logger := NewLogger("radie-test", "json:info", &out)
		logger.Info("loaded", "symbol", "Py_Main")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
		assert.Equal(t, "loaded", entry["@message"])
		assert.Equal(t, "Py_Main", entry["symbol"])
	})
}

func TestOpenOutput(t *testing.T) {
	t.Run("windowed without log path discards", func(t *testing.T) {
		t.Setenv(EnvLogPath, "")
		w, closeFn := OpenOutput(true)
		assert.Equal(t, io.Discard, w)
		assert.NoError(t, closeFn())
	})

	t.Run("console without log path uses stderr", func(t *testing.T) {
		t.Setenv(EnvLogPath, "")
		w, _ := OpenOutput(false)
		assert.Equal(t, os.Stderr, w)
	})

	t.Run("log path appends", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "launcher.log")
		require.NoError(t, os.WriteFile(path, []byte("earlier\n"), 0o644))
		t.Setenv(EnvLogPath, path)

		w, closeFn := OpenOutput(true)
		_, err := io.WriteString(w, "later\n")
		require.NoError(t, err)
		require.NoError(t, closeFn())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "earlier\nlater\n", string(data))
	})
}
