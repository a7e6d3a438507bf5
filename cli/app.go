// Package cli provides the gridwalk command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// globalOptions holds flags shared by every subcommand. Empty values leave
// the configuration file (or its defaults) in charge.
type globalOptions struct {
	configPath  string
	logLevel    string
	logFormat   string
	profileMode string
	profileDir  string
	metricsFile string
}

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer
	global globalOptions
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	app.root = &cobra.Command{
		Use:   "gridwalk",
		Short: "Deterministic grid-walk simulator with loop detection",
		Long: `gridwalk walks an agent across a character grid. The agent steps forward
until an obstacle forces a right turn, and stops when it leaves the grid or
repeats a position and heading.

It answers two questions about a map:
  1. How many distinct cells does the agent visit before leaving?
  2. On how many cells would one extra obstacle trap it in a loop?`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := app.root.PersistentFlags()
	pf.StringVarP(&app.global.configPath, "config", "c", "", "Path to YAML configuration file")
	pf.StringVar(&app.global.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	pf.StringVar(&app.global.logFormat, "log-format", "", "Log format: console or json")
	pf.StringVar(&app.global.profileMode, "profile", "", "Profile the run: cpu, mem, block, mutex, trace")
	pf.StringVar(&app.global.profileDir, "profile-dir", "", "Directory for profile output")
	pf.StringVar(&app.global.metricsFile, "metrics-textfile", "", "Write trial metrics to this file in Prometheus text format")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newSolveCmd(),
		app.newWalkCmd(),
		app.newSearchCmd(),
		app.newRenderCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// WithInput sets the reader used when the grid comes from stdin.
func (a *App) WithInput(stdin io.Reader) *App {
	a.root.SetIn(stdin)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// newVersionCmd creates the version command.
func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "gridwalk version %s\n", Version)
			fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
			fmt.Fprintf(a.stdout, "  Build date: %s\n", BuildDate)
		},
	}
}
