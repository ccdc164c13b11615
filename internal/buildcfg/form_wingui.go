//go:build wingui

package buildcfg

// Windowed builds have no console; link with -H=windowsgui.
const windowed = true
