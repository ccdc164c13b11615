// Command radie-static runs a runtime linked into the launcher itself and
// hands it the launcher's own path, so an application archive appended to
// the binary runs as the program.
//
// Link the runtime with cgo:
//
//	CGO_ENABLED=1 go build -tags pylinked ./cmd/radie-static
package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/dvincentwest/radie/pkg/launcher"
)

// entry is set by the file that links the runtime. It stays nil otherwise.
var entry launcher.EntryPoint

func init() {
	runtime.LockOSThread()
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "PANIC: %v\n", r)
			debug.PrintStack()
			os.Exit(launcher.ExitPanic)
		}
	}()

	os.Exit(launcher.MainStatic(os.Args, entry))
}
