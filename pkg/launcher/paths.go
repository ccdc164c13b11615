package launcher

import (
	"path/filepath"

	"github.com/dvincentwest/radie/internal/buildcfg"
)

// Layout holds every path the launcher derives from its own location.
// All of them are inside BaseDir.
type Layout struct {
	SelfPath    string
	BaseDir     string
	RuntimeDir  string
	AppsDir     string
	LibraryPath string
	// EnvFile is empty when the build disables the env file.
	EnvFile string
}

// Derive appends a relative suffix to base. An empty suffix yields base.
// Nothing is checked on disk.
func Derive(base, suffix string) string {
	return filepath.Join(base, suffix)
}

// DeriveLayout computes the layout for a launcher at selfPath.
func DeriveLayout(selfPath string, cfg buildcfg.Config) Layout {
	base := filepath.Dir(selfPath)
	runtimeDir := Derive(base, cfg.RuntimeSubdir)

	layout := Layout{
		SelfPath:    selfPath,
		BaseDir:     base,
		RuntimeDir:  runtimeDir,
		AppsDir:     Derive(base, cfg.AppsSubdir),
		LibraryPath: Derive(runtimeDir, cfg.LibraryName),
	}
	if cfg.EnvFile != "" {
		layout.EnvFile = Derive(base, cfg.EnvFile)
	}
	return layout
}
