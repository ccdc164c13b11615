// Command radie-launcher starts the bundled application on the embedded
// Python runtime that ships next to it.
//
// Build the windowed form with:
//
//	go build -tags wingui -ldflags -H=windowsgui ./cmd/radie-launcher
//
// and a launcher whose runtime sits beside it (instead of in runtime/) with
// -tags rootrun.
package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/dvincentwest/radie/pkg/launcher"
)

func init() {
	// The runtime, and any GUI toolkit it starts, must run on the main thread.
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

	os.Exit(launcher.Main(os.Args))
}
