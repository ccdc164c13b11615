package launcher

import (
	"errors"
	"fmt"

	"github.com/dvincentwest/radie/internal/buildcfg"
)

var (
	ErrEmptyExecutable     = errors.New("operating system reported an empty executable path")
	ErrUnsupportedPlatform = errors.New("dynamic loading is not supported on this platform")
	ErrNilSymbol           = errors.New("symbol resolved to a nil address")
	ErrNotLinked           = errors.New("no runtime entry point was linked into this launcher")
)

// SelfPathError means the launcher could not find its own executable.
type SelfPathError struct {
	Err error
}

func (e *SelfPathError) Error() string {
	return fmt.Sprintf("cannot determine launcher path: %v", e.Err)
}

func (e *SelfPathError) Unwrap() error { return e.Err }

// LoadError means the runtime library could not be loaded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load runtime library %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SymbolError means a named export was absent from the runtime library.
type SymbolError struct {
	Library string
	Symbol  string
	Err     error
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("symbol %s not found in %s: %v", e.Symbol, e.Library, e.Err)
}

func (e *SymbolError) Unwrap() error { return e.Err }

// ExitCodeFor maps a launcher failure to its process exit status.
func ExitCodeFor(err error) int {
	var (
		selfErr *SelfPathError
		loadErr *LoadError
		symErr  *SymbolError
		cfgErr  *buildcfg.Error
	)

	switch {
	case err == nil:
		return 0
	case errors.As(err, &selfErr):
		return ExitSelfPathError
	case errors.As(err, &cfgErr):
		return ExitConfigError
	case errors.As(err, &symErr):
		return ExitSymbolError
	case errors.As(err, &loadErr), errors.Is(err, ErrNotLinked):
		return ExitLoadError
	default:
		return ExitIOError
	}
}
