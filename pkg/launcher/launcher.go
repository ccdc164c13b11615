package launcher

import (
	"os"
	"strings"

	"github.com/dvincentwest/radie/internal/buildcfg"
	"github.com/dvincentwest/radie/pkg/logging"
	"github.com/hashicorp/go-hclog"
)

// Launcher runs the bootstrap pipeline. The function fields default to the
// real operating system calls; tests replace them.
type Launcher struct {
	Config buildcfg.Config
	Logger hclog.Logger

	Executable func() (string, error)
	LookupEnv  func(key string) (string, bool)
	Setenv     func(key, value string) error
	Loader     Loader
}

// New returns a Launcher wired to the operating system.
func New(cfg buildcfg.Config, logger hclog.Logger) *Launcher {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Launcher{
		Config:     cfg,
		Logger:     logger,
		Executable: os.Executable,
		LookupEnv:  os.LookupEnv,
		Setenv:     os.Setenv,
		Loader:     NativeLoader,
	}
}

// Layout resolves the launcher's own path and derives the runtime layout.
func (l *Launcher) Layout() (Layout, error) {
	self, err := ResolveSelfPath(l.Executable, l.Config.FollowSymlinks)
	if err != nil {
		return Layout{}, err
	}
	layout := DeriveLayout(self, l.Config)
	l.Logger.Debug("📁 Launcher layout",
		"self", layout.SelfPath,
		"runtime", layout.RuntimeDir,
		"apps", layout.AppsDir,
		"library", layout.LibraryPath)
	return layout, nil
}

// Configure commits the planned environment. Assignment failures are logged
// and otherwise ignored.
func (l *Launcher) Configure(layout Layout) []Override {
	overrides := PlanEnvironment(layout, l.Config, l.LookupEnv, l.Logger)
	if err := Apply(overrides, l.Setenv); err != nil {
		l.Logger.Warn("⚠️ Some environment variables could not be set", "error", err)
	}
	if l.Logger.IsTrace() {
		for _, o := range overrides {
			l.Logger.Trace("🌍 Environment", "key", o.Key, "value", o.Value, "source", o.Source)
		}
	}
	return overrides
}

// Resolve loads the runtime library and binds its entry points.
func (l *Launcher) Resolve(layout Layout) (*Runtime, error) {
	l.Logger.Debug("📚 Loading runtime library", "path", layout.LibraryPath)
	lib, err := l.Loader.Load(layout.LibraryPath)
	if err != nil {
		return nil, err
	}
	return ResolveRuntime(lib, l.Config, l.Logger)
}

// Run bootstraps the runtime and calls its entry point with args (the
// launcher's own argv, program name included). It returns the entry point's
// status unchanged, or a launcher exit code if bootstrapping fails.
func (l *Launcher) Run(args []string) int {
	status, err := l.run(args)
	if err != nil {
		l.Logger.Error("❌ Launch failed", "error", err)
		return ExitCodeFor(err)
	}
	return status
}

func (l *Launcher) run(args []string) (int, error) {
	layout, err := l.Layout()
	if err != nil {
		return 0, err
	}

	// The runtime reads these during its own initialization, so they must be
	// in place before the library is loaded.
	l.Configure(layout)

	rt, err := l.Resolve(layout)
	if err != nil {
		return 0, err
	}

	argv := DynamicArgs(args, l.Config.ModeSwitch, l.Config.Application)
	l.Logger.Info("🚀 Starting runtime", "argv", argv)
	return rt.Main.Main(argv), nil
}

// RunStatic calls a runtime entry point linked into the launcher, passing the
// launcher's own path as the application payload.
func (l *Launcher) RunStatic(args []string, entry EntryPoint) int {
	if entry == nil {
		l.Logger.Error("❌ Launch failed", "error", ErrNotLinked)
		return ExitCodeFor(ErrNotLinked)
	}

	self, err := ResolveSelfPath(l.Executable, l.Config.FollowSymlinks)
	if err != nil {
		l.Logger.Error("❌ Launch failed", "error", err)
		return ExitCodeFor(err)
	}

	argv := StaticArgs(args, self, l.Config.SelfArgPolicy)
	l.Logger.Info("🚀 Starting linked runtime", "argv", argv)
	return entry.Main(argv)
}

// Main is the dynamic launcher's process entry. It returns the exit status.
func Main(args []string) int {
	cfg, cfgErr := buildcfg.Load()

	output, closeOutput := logging.OpenOutput(cfg.Windowed)
	defer closeOutput()
	level, source := logging.ResolveLevel("", "")
	logger := logging.NewLogger("radie-launcher", level, output)

	if cfgErr != nil {
		logger.Error("❌ Invalid build configuration", "error", cfgErr)
		return ExitCodeFor(cfgErr)
	}
	logger.Debug("Log level", "level", level, "source", source)

	l := New(cfg, logger)
	if isEnvTrue(EnvLauncherCLI) {
		return RunCLI(l, args, os.Stdout, os.Stderr, output)
	}
	return l.Run(args)
}

// MainStatic is the static launcher's process entry.
func MainStatic(args []string, entry EntryPoint) int {
	cfg, cfgErr := buildcfg.Load()

	output, closeOutput := logging.OpenOutput(cfg.Windowed)
	defer closeOutput()
	level, _ := logging.ResolveLevel("", "")
	logger := logging.NewLogger("radie-static", level, output)

	if cfgErr != nil {
		logger.Error("❌ Invalid build configuration", "error", cfgErr)
		return ExitCodeFor(cfgErr)
	}

	return New(cfg, logger).RunStatic(args, entry)
}

// isEnvTrue checks if an environment variable is set to a true value.
func isEnvTrue(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "t", "true", "on", "yes", "y":
		return true
	}
	return false
}
