package launcher

import (
	"os"
	"runtime/debug"
	"time"
)

// Version is replaced at link time by release builds.
var Version = "0.1.0"

// BuildTimestamp reports when the launcher was built: the VCS commit time
// when embedded, otherwise the modification time of the binary reported by
// executable.
func BuildTimestamp(executable func() (string, error)) string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	if exePath, err := executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return "unknown"
}
