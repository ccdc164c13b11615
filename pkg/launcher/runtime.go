package launcher

import (
	"github.com/dvincentwest/radie/internal/buildcfg"
	"github.com/hashicorp/go-hclog"
)

// EntryPoint is the runtime's "run the interpreter with these arguments"
// function. argv[0] is the program name.
type EntryPoint interface {
	Main(argv []string) int
}

// EntryFunc adapts a Go function to EntryPoint.
type EntryFunc func(argv []string) int

func (f EntryFunc) Main(argv []string) int { return f(argv) }

// PathConfigurer is the runtime's optional module search path setter.
type PathConfigurer interface {
	SetPath(path string)
}

// PathFunc adapts a Go function to PathConfigurer.
type PathFunc func(path string)

func (f PathFunc) SetPath(path string) { f(path) }

// Library is a loaded runtime image.
type Library interface {
	Path() string
	Entry(name string) (EntryPoint, error)
	PathConfig(name string) (PathConfigurer, error)
}

// Loader opens a runtime library.
type Loader interface {
	Load(path string) (Library, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(path string) (Library, error)

func (f LoaderFunc) Load(path string) (Library, error) { return f(path) }

// NativeLoader loads libraries through the platform's dynamic linker.
var NativeLoader Loader = LoaderFunc(openLibrary)

// Runtime is the resolved entry point set. SetPath is nil when the library
// does not export the path-configuration symbol.
type Runtime struct {
	Main    EntryPoint
	SetPath PathConfigurer
}

// ResolveRuntime looks up the symbols named by cfg. The main entry point is
// mandatory; the path-configuration function is optional.
func ResolveRuntime(lib Library, cfg buildcfg.Config, logger hclog.Logger) (*Runtime, error) {
	entry, err := lib.Entry(cfg.MainSymbol)
	if err != nil {
		return nil, err
	}
	logger.Debug("🔗 Resolved entry point", "symbol", cfg.MainSymbol)

	rt := &Runtime{Main: entry}
	if cfg.PathSymbol == "" {
		return rt, nil
	}

	setPath, err := lib.PathConfig(cfg.PathSymbol)
	if err != nil {
		logger.Debug("Optional path symbol unavailable", "symbol", cfg.PathSymbol, "error", err)
		return rt, nil
	}
	logger.Debug("🔗 Resolved path configuration", "symbol", cfg.PathSymbol)
	rt.SetPath = setPath
	return rt, nil
}
