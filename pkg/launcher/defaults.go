// Package launcher bootstraps an embedded Python runtime: it finds the
// launcher's own directory, derives the runtime and application directories
// from it, prepares the process environment, loads the runtime library and
// hands a spliced argument vector to the runtime's main entry point.
package launcher

// Exit codes for launcher failures. Any other status is the runtime's own.
const (
	ExitSelfPathError = 1
	ExitPanic         = 101
	ExitLoadError     = 102
	ExitSymbolError   = 103
	ExitInvalidArgs   = 105
	ExitIOError       = 106
	ExitConfigError   = 107
)

const (
	// EnvLauncherCLI switches the launcher into its diagnostic command mode.
	EnvLauncherCLI = "RADIE_LAUNCHER_CLI"

	// QtPluginPathVar is set from the runtime's qt.conf when present.
	QtPluginPathVar = "QT_PLUGIN_PATH"

	qtConfName    = "qt.conf"
	qtPluginsName = "plugins"
)

// Override sources, reported by the CLI env command.
const (
	SourceEnvFile = "env-file"
	SourceQtConf  = "qt.conf"
	SourceLayout  = "layout"
)
