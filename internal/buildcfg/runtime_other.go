//go:build !windows && !darwin

package buildcfg

var (
	libraryName = "libpython3.so"
	mainSymbol  = "Py_BytesMain"
)
