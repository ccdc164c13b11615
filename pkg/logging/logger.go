package logging

import (
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"
)

// Environment variables controlling launcher diagnostics.
const (
	EnvLauncherLogLevel = "RADIE_LAUNCHER_LOG_LEVEL"
	EnvLogLevel         = "RADIE_LOG_LEVEL"
	EnvLogPath          = "RADIE_LOG_PATH"
	EnvJSONLog          = "RADIE_JSON_LOG"
)

// DefaultLevel keeps the launcher silent unless asked otherwise.
const DefaultLevel = "off"

// NewLogger creates a new hclog logger with standard settings.
// level may carry a "json:" prefix to select JSON output.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	actualLevel, jsonFormat := ParseLevel(level)
	if os.Getenv(EnvJSONLog) == "1" {
		jsonFormat = true
	}

	color := hclog.ColorOff
	if !jsonFormat && isTerminal(output) {
		color = hclog.ForceColor
	}

	if !jsonFormat {
		output = NewPrefixWriter(Prefix(), output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(actualLevel),
		JSONFormat: jsonFormat,
		Output:     output,
		Color:      color,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// ResolveLevel picks the log level: an explicit level wins, then
// RADIE_LAUNCHER_LOG_LEVEL, then RADIE_LOG_LEVEL, then DefaultLevel.
// The second result names where the level came from.
func ResolveLevel(explicit, explicitSource string) (string, string) {
	if explicit != "" {
		return explicit, explicitSource
	}
	if level := os.Getenv(EnvLauncherLogLevel); level != "" {
		return level, EnvLauncherLogLevel
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		return level, EnvLogLevel
	}
	return DefaultLevel, "default"
}

// ParseLevel splits "json:debug" into ("debug", true). A bare "json" means info.
func ParseLevel(level string) (string, bool) {
	if !strings.HasPrefix(strings.ToLower(level), "json") {
		return level, false
	}
	if _, after, ok := strings.Cut(level, ":"); ok && after != "" {
		return after, true
	}
	return "info", true
}

// OpenOutput returns the log destination. RADIE_LOG_PATH appends to a file;
// otherwise stderr, or nothing at all for windowed builds that have no console.
// The returned close function is never nil.
func OpenOutput(windowed bool) (io.Writer, func() error) {
	if path := os.Getenv(EnvLogPath); path != "" {
		if file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			return file, file.Close
		}
	}
	if windowed {
		return io.Discard, func() error { return nil }
	}
	return os.Stderr, func() error { return nil }
}

// Prefix is the marker written before every non-JSON log line.
func Prefix() string {
	if runtime.GOOS == "windows" {
		return "[radie] "
	}
	return "🐍 "
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
