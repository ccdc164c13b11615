// Package buildcfg resolves the launcher's build-time configuration.
//
// Packaging choices are made before the launcher runs: build tags select the
// entry form (wingui) and the runtime layout (rootrun), and string values can be
// replaced at link time:
//
//	go build -ldflags "-X github.com/dvincentwest/radie/internal/buildcfg.launchArgs='-m radie.qt.viewer'"
//
// Load turns those inputs into one immutable Config; nothing else in the
// launcher branches on build tags.
package buildcfg

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dvincentwest/radie/pkg/utils/shellparse"
)

// Link-time overridable values. runtimeSubdir, libraryName, mainSymbol and
// windowed are declared in the tag-selected files.
var (
	appsSubdir     = "apps"
	pathSymbol     = "Py_SetPath"
	launchArgs     = "-m radie.qt.viewer"
	selfArgPolicy  = string(SelfArgInsert)
	followSymlinks = "false"
	envFile        = "radie.env"
	qtPluginHint   = "true"
)

// Fixed environment variable names consulted by the runtime.
const (
	HomeVar       = "PYTHONHOME"
	ModulePathVar = "PYTHONPATH"
	SearchPathVar = "PATH"
)

// SelfArgPolicy controls where the static launcher places its own path.
type SelfArgPolicy string

const (
	// SelfArgInsert keeps argv[0] and inserts the self path at index 1.
	SelfArgInsert SelfArgPolicy = "insert"
	// SelfArgReplace overwrites argv[0] with the self path.
	SelfArgReplace SelfArgPolicy = "replace"
)

// Config is the resolved build-time configuration.
type Config struct {
	RuntimeSubdir string
	AppsSubdir    string
	LibraryName   string

	MainSymbol string
	// PathSymbol is resolved and reported but never called. Calling it would
	// replace the runtime's own search path calculation.
	PathSymbol string

	ModeSwitch  string
	Application string

	HomeVar       string
	ModulePathVar string
	SearchPathVar string

	Windowed       bool
	SelfArgPolicy  SelfArgPolicy
	FollowSymlinks bool
	EnvFile        string
	QtPluginHint   bool
}

// Error reports an invalid build-time value.
type Error struct {
	Field string
	Value string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid build configuration %s=%q: %v", e.Field, e.Value, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Load builds the Config from the compiled-in values and validates it.
func Load() (Config, error) {
	cfg := Config{
		RuntimeSubdir: runtimeSubdir,
		AppsSubdir:    appsSubdir,
		LibraryName:   libraryName,
		MainSymbol:    mainSymbol,
		PathSymbol:    pathSymbol,
		HomeVar:       HomeVar,
		ModulePathVar: ModulePathVar,
		SearchPathVar: SearchPathVar,
		Windowed:      windowed,
		SelfArgPolicy: SelfArgPolicy(strings.ToLower(selfArgPolicy)),
		EnvFile:       envFile,
	}

	words, err := shellparse.SplitExact(launchArgs, 2)
	if err != nil {
		return cfg, &Error{Field: "launchArgs", Value: launchArgs, Err: err}
	}
	cfg.ModeSwitch, cfg.Application = words[0], words[1]

	for _, b := range []struct {
		name  string
		value string
		dst   *bool
	}{
		{"followSymlinks", followSymlinks, &cfg.FollowSymlinks},
		{"qtPluginHint", qtPluginHint, &cfg.QtPluginHint},
	} {
		v, err := strconv.ParseBool(b.value)
		if err != nil {
			return cfg, &Error{Field: b.name, Value: b.value, Err: err}
		}
		*b.dst = v
	}

	return cfg, cfg.Validate()
}

// Validate checks that every derived path stays under the launcher directory
// and that the runtime contract names are present.
func (c Config) Validate() error {
	for _, d := range []struct{ field, value string }{
		{"runtimeSubdir", c.RuntimeSubdir},
		{"appsSubdir", c.AppsSubdir},
	} {
		if d.value != "" && !filepath.IsLocal(d.value) {
			return &Error{Field: d.field, Value: d.value, Err: ErrNotLocal}
		}
	}

	if c.LibraryName == "" || !filepath.IsLocal(c.LibraryName) {
		return &Error{Field: "libraryName", Value: c.LibraryName, Err: ErrNotLocal}
	}
	if c.EnvFile != "" && !filepath.IsLocal(c.EnvFile) {
		return &Error{Field: "envFile", Value: c.EnvFile, Err: ErrNotLocal}
	}
	if c.MainSymbol == "" {
		return &Error{Field: "mainSymbol", Err: ErrEmpty}
	}

	switch c.SelfArgPolicy {
	case SelfArgInsert, SelfArgReplace:
	default:
		return &Error{Field: "selfArgPolicy", Value: string(c.SelfArgPolicy), Err: ErrUnknownPolicy}
	}
	return nil
}
