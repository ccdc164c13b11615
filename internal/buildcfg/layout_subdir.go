//go:build !rootrun

package buildcfg

// The runtime lives in a subdirectory next to the launcher.
var runtimeSubdir = "runtime"
