//go:build rootrun

package buildcfg

// The runtime is co-located with the launcher.
var runtimeSubdir = ""
