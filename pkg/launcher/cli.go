package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/dvincentwest/radie/pkg/logging"
	"github.com/dvincentwest/radie/pkg/utils/shellparse"
	"github.com/spf13/cobra"
)

// exitError carries a specific exit status out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// RunCLI runs the diagnostic command mode selected by RADIE_LAUNCHER_CLI.
// args is the launcher's full argv. With no command it behaves like info.
// logOutput receives the logger rebuilt by --log-level.
func RunCLI(l *Launcher, args []string, stdout, stderr, logOutput io.Writer) int {
	program := ""
	if len(args) > 0 {
		program = args[0]
		args = args[1:]
	}

	status := 0
	root := newRootCommand(l, program, logOutput, &status)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		return ExitInvalidArgs
	}
	return status
}

func newRootCommand(l *Launcher, program string, logOutput io.Writer, status *int) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "radie-launcher",
		Short:         "Inspect and run the embedded runtime launcher",
		Long:          "Diagnostic mode, enabled with " + EnvLauncherCLI + "=1.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logLevel != "" {
				l.Logger = logging.NewLogger("radie-launcher", logLevel, logOutput)
				l.Logger.Debug("Log level", "level", logLevel, "source", "--log-level")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return showInfo(l, cmd.OutOrStdout())
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error, json:<level>)")

	root.AddCommand(
		&cobra.Command{
			Use:   "info",
			Short: "Show the launcher layout (default)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showInfo(l, cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "env",
			Short: "Show the environment the runtime would receive",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showEnv(l, cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:                "argv [args...]",
			Short:              "Show the argument vector passed to the runtime",
			DisableFlagParsing: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				argv := DynamicArgs(append([]string{program}, args...), l.Config.ModeSwitch, l.Config.Application)
				fmt.Fprintln(cmd.OutOrStdout(), shellparse.Join(argv))
				return nil
			},
		},
		&cobra.Command{
			Use:   "verify",
			Short: "Load the runtime library and resolve its entry points without running it",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return verifyRuntime(l, cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:                "run [args...]",
			Short:              "Launch the application with the given arguments",
			DisableFlagParsing: true,
			Run: func(cmd *cobra.Command, args []string) {
				*status = l.Run(append([]string{program}, args...))
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show launcher version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "radie-launcher %s\n", Version)
				fmt.Fprintf(cmd.OutOrStdout(), "Built: %s\n", BuildTimestamp(l.Executable))
			},
		},
	)
	return root
}

func showInfo(l *Launcher, out io.Writer) error {
	layout, err := l.Layout()
	if err != nil {
		return &exitError{code: ExitCodeFor(err), err: err}
	}

	library := layout.LibraryPath + " (missing)"
	if info, err := os.Stat(layout.LibraryPath); err == nil {
		library = fmt.Sprintf("%s (%s)", layout.LibraryPath, humanize.Bytes(uint64(info.Size())))
	}

	envFile := layout.EnvFile
	if envFile == "" {
		envFile = "(disabled)"
	}

	fmt.Fprintf(out, "Launcher:     %s\n", layout.SelfPath)
	fmt.Fprintf(out, "Runtime dir:  %s\n", layout.RuntimeDir)
	fmt.Fprintf(out, "Apps dir:     %s\n", layout.AppsDir)
	fmt.Fprintf(out, "Library:      %s\n", library)
	fmt.Fprintf(out, "Entry point:  %s\n", l.Config.MainSymbol)
	fmt.Fprintf(out, "Path symbol:  %s (resolved only)\n", l.Config.PathSymbol)
	fmt.Fprintf(out, "Launch args:  %s\n", shellparse.Join([]string{l.Config.ModeSwitch, l.Config.Application}))
	fmt.Fprintf(out, "Env file:     %s\n", envFile)
	fmt.Fprintf(out, "Windowed:     %t\n", l.Config.Windowed)
	return nil
}

func showEnv(l *Launcher, out io.Writer) error {
	layout, err := l.Layout()
	if err != nil {
		return &exitError{code: ExitCodeFor(err), err: err}
	}
	for _, o := range PlanEnvironment(layout, l.Config, l.LookupEnv, l.Logger) {
		fmt.Fprintf(out, "%s\t# %s\n", shellparse.Join([]string{o.String()}), o.Source)
	}
	return nil
}

func verifyRuntime(l *Launcher, out io.Writer) error {
	layout, err := l.Layout()
	if err != nil {
		return &exitError{code: ExitCodeFor(err), err: err}
	}
	l.Configure(layout)

	fmt.Fprintf(out, "Verifying runtime %s...\n", layout.LibraryPath)
	rt, err := l.Resolve(layout)
	if err != nil {
		fmt.Fprintf(out, "✗ %v\n", err)
		return &exitError{code: ExitCodeFor(err), err: err}
	}

	fmt.Fprintln(out, "✓ Runtime library loaded")
	fmt.Fprintf(out, "✓ Entry point %s resolved\n", l.Config.MainSymbol)
	if rt.SetPath != nil {
		fmt.Fprintf(out, "✓ Path configuration %s resolved\n", l.Config.PathSymbol)
	} else {
		fmt.Fprintf(out, "- Path configuration %s not exported (optional)\n", l.Config.PathSymbol)
	}
	fmt.Fprintln(out, "\n✓ Runtime verification passed")
	return nil
}
