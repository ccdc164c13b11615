package buildcfg

var (
	libraryName = "python36.dll"
	// Py_Main takes a wchar_t argv, which is UTF-16 on Windows.
	mainSymbol = "Py_Main"
)
