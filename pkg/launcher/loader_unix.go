//go:build darwin || freebsd || linux

package launcher

import (
	"runtime"

	"github.com/ebitengine/purego"
)

type dlLibrary struct {
	path   string
	handle uintptr
}

func openLibrary(path string) (Library, error) {
	// RTLD_GLOBAL so extension modules the runtime loads later can bind
	// against its symbols.
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return &dlLibrary{path: path, handle: handle}, nil
}

func (l *dlLibrary) Path() string { return l.path }

func (l *dlLibrary) symbol(name string) (uintptr, error) {
	addr, err := purego.Dlsym(l.handle, name)
	if err != nil {
		return 0, &SymbolError{Library: l.path, Symbol: name, Err: err}
	}
	if addr == 0 {
		return 0, &SymbolError{Library: l.path, Symbol: name, Err: ErrNilSymbol}
	}
	return addr, nil
}

// Entry binds int name(int argc, char **argv).
func (l *dlLibrary) Entry(name string) (EntryPoint, error) {
	addr, err := l.symbol(name)
	if err != nil {
		return nil, err
	}
	var fn func(argc int32, argv **byte) int32
	purego.RegisterFunc(&fn, addr)
	return bytesMain(fn), nil
}

// PathConfig binds void name(const wchar_t *path).
func (l *dlLibrary) PathConfig(name string) (PathConfigurer, error) {
	addr, err := l.symbol(name)
	if err != nil {
		return nil, err
	}
	var fn func(path *int32)
	purego.RegisterFunc(&fn, addr)
	return wideSetPath(fn), nil
}

type bytesMain func(argc int32, argv **byte) int32

func (f bytesMain) Main(argv []string) int {
	cargv := cStringArray(argv)
	status := f(int32(len(argv)), &cargv[0])
	runtime.KeepAlive(cargv)
	return int(status)
}

type wideSetPath func(path *int32)

func (f wideSetPath) SetPath(path string) {
	w := utf32String(path)
	f(&w[0])
	runtime.KeepAlive(w)
}
