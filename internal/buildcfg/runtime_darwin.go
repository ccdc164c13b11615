package buildcfg

var (
	libraryName = "libpython3.dylib"
	mainSymbol  = "Py_BytesMain"
)
