package launcher

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/dvincentwest/radie/internal/buildcfg"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

var errStubMissing = errors.New("stub: no such export")

// stubLibrary exports whatever entries and path setters it is given.
type stubLibrary struct {
	path    string
	entries map[string]EntryPoint
	paths   map[string]PathConfigurer
}

func (s *stubLibrary) Path() string { return s.path }

func (s *stubLibrary) Entry(name string) (EntryPoint, error) {
	if e, ok := s.entries[name]; ok {
		return e, nil
	}
	return nil, &SymbolError{Library: s.path, Symbol: name, Err: errStubMissing}
}

func (s *stubLibrary) PathConfig(name string) (PathConfigurer, error) {
	if p, ok := s.paths[name]; ok {
		return p, nil
	}
	return nil, &SymbolError{Library: s.path, Symbol: name, Err: errStubMissing}
}

// harness records every operating system interaction of a Launcher.
type harness struct {
	*Launcher

	events  []string
	env     map[string]string
	argv    []string
	setPath []string
}

func testConfig(t *testing.T) buildcfg.Config {
	t.Helper()
	cfg, err := buildcfg.Load()
	require.NoError(t, err)
	cfg.RuntimeSubdir = "runtime"
	cfg.AppsSubdir = "apps"
	cfg.LibraryName = "python36.dll"
	cfg.MainSymbol = "Py_Main"
	cfg.PathSymbol = "Py_SetPath"
	cfg.EnvFile = ""
	cfg.QtPluginHint = false
	return cfg
}

func testLogger(t *testing.T) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   t.Name(),
		Level:  hclog.Trace,
		Output: hclog.DefaultOutput,
	})
}

// newHarness returns a launcher at <tmp>/radie/radie.exe whose runtime
// library exports a main entry returning status.
func newHarness(t *testing.T, status int) *harness {
	t.Helper()

	h := &harness{env: map[string]string{"PATH": "/usr/bin"}}
	self := filepath.Join(t.TempDir(), "radie", "radie.exe")

	lib := &stubLibrary{
		entries: map[string]EntryPoint{
			"Py_Main": EntryFunc(func(argv []string) int {
				h.events = append(h.events, "main")
				h.argv = argv
				return status
			}),
		},
		paths: map[string]PathConfigurer{
			"Py_SetPath": PathFunc(func(p string) {
				h.events = append(h.events, "setpath")
				h.setPath = append(h.setPath, p)
			}),
		},
	}

	h.Launcher = &Launcher{
		Config:     testConfig(t),
		Logger:     testLogger(t),
		Executable: func() (string, error) { return self, nil },
		LookupEnv: func(k string) (string, bool) {
			v, ok := h.env[k]
			return v, ok
		},
		Setenv: func(k, v string) error {
			h.events = append(h.events, "setenv "+k)
			h.env[k] = v
			return nil
		},
		Loader: LoaderFunc(func(path string) (Library, error) {
			h.events = append(h.events, "load")
			lib.path = path
			return lib, nil
		}),
	}
	return h
}

func (h *harness) selfPath() string {
	p, _ := h.Executable()
	return p
}
