//go:build !wingui

package buildcfg

const windowed = false
