package launcher

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

type dllLibrary struct {
	path string
	dll  *windows.DLL
}

func openLibrary(path string) (Library, error) {
	dll, err := windows.LoadDLL(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return &dllLibrary{path: path, dll: dll}, nil
}

func (l *dllLibrary) Path() string { return l.path }

func (l *dllLibrary) proc(name string) (*windows.Proc, error) {
	proc, err := l.dll.FindProc(name)
	if err != nil {
		return nil, &SymbolError{Library: l.path, Symbol: name, Err: err}
	}
	return proc, nil
}

// Entry binds int name(int argc, wchar_t **argv).
func (l *dllLibrary) Entry(name string) (EntryPoint, error) {
	proc, err := l.proc(name)
	if err != nil {
		return nil, err
	}
	return wideMain{proc: proc}, nil
}

// PathConfig binds void name(const wchar_t *path).
func (l *dllLibrary) PathConfig(name string) (PathConfigurer, error) {
	proc, err := l.proc(name)
	if err != nil {
		return nil, err
	}
	return wideSetPath{proc: proc}, nil
}

type wideMain struct {
	proc *windows.Proc
}

func (m wideMain) Main(argv []string) int {
	wargv := utf16StringArray(argv)
	r1, _, _ := m.proc.Call(uintptr(len(argv)), uintptr(unsafe.Pointer(&wargv[0])))
	runtime.KeepAlive(wargv)
	return int(int32(r1))
}

type wideSetPath struct {
	proc *windows.Proc
}

func (s wideSetPath) SetPath(path string) {
	w := utf16String(path)
	s.proc.Call(uintptr(unsafe.Pointer(&w[0])))
	runtime.KeepAlive(w)
}
