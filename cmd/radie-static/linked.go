//go:build cgo && pylinked

package main

/*
#cgo pkg-config: python3-embed
#include <stdlib.h>
#include <Python.h>
*/
import "C"

import "unsafe"

func init() {
	entry = cpythonMain{}
}

// cpythonMain calls Py_BytesMain from the linked runtime.
type cpythonMain struct{}

func (cpythonMain) Main(argv []string) int {
	cargv := make([]*C.char, len(argv)+1)
	for i, s := range argv {
		cargv[i] = C.CString(s)
	}
	defer func() {
		for _, p := range cargv[:len(argv)] {
			C.free(unsafe.Pointer(p))
		}
	}()

	return int(C.Py_BytesMain(C.int(len(argv)), &cargv[0]))
}
