// Package cli wires the command line onto the controller and the terminal UI.
package cli

import (
	"errors"
	"io"
	"os"

	"github.com/lumipallolabs/hashseek/internal/config"
	"github.com/lumipallolabs/hashseek/internal/core"
	"github.com/lumipallolabs/hashseek/internal/logging"
	"github.com/lumipallolabs/hashseek/internal/model"
	"github.com/lumipallolabs/hashseek/internal/scanner"
	"github.com/lumipallolabs/hashseek/internal/stats"
	"github.com/lumipallolabs/hashseek/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrInterrupted is returned when the user aborts a running search
var ErrInterrupted = errors.New("interrupted")

// app carries the state shared by all subcommands of one invocation
type app struct {
	cfg   config.Config
	sinks *logging.Sinks
	ctrl  *core.Controller
	stats *stats.Manager

	scannerOpts []scanner.Option
	prompter    ui.Prompter
}

// NewRootCmd builds the hashseek command tree. Without a subcommand the
// interactive menu is shown.
func NewRootCmd(version string) *cobra.Command {
	return newRootCmd(version, &app{cfg: config.FromEnv(), prompter: ui.PromptuiPrompter{}})
}

func newRootCmd(version string, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hashseek",
		Short:         "Hash files and find files matching a digest",
		Long:          "hashseek computes MD5 or SHA256 digests and walks directory trees looking for files whose content matches a digest.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfg.LogDir, "log-dir", a.cfg.LogDir, "Directory for the log files (default: working directory, env "+config.EnvLogDir+")")
	flags.BoolVar(&a.cfg.Debug, "debug", a.cfg.Debug, "Write "+logging.DebugFile+" (env "+logging.DebugEnv+")")
	flags.BoolVar(&a.cfg.Plain, "plain", a.cfg.Plain, "Print progress as plain text instead of the interactive display")
	flags.BoolVar(&a.cfg.NoColor, "no-color", a.cfg.NoColor, "Disable colored output (env "+config.EnvNoColor+")")
	flags.StringVar(&a.cfg.StatsFile, "stats-file", a.cfg.StatsFile, "Keep usage totals in this JSON file across runs (env "+config.EnvStatsFile+")")

	cmd.AddCommand(
		newHashCmd(a),
		newSearchCmd(a),
		newStatsCmd(a),
	)
	return cmd
}

func (a *app) open() error {
	if a.cfg.NoColor {
		ui.DisableColor()
	}
	sinks, err := logging.Open(a.cfg.LoggingOptions())
	if err != nil {
		return err
	}
	a.sinks = sinks
	a.ctrl = core.NewController(sinks, a.scannerOpts...)

	a.stats = stats.NewManager(a.cfg.StatsFile)
	if err := a.stats.Load(); err != nil {
		sinks.Debug.Warn().Err(err).Str("path", a.stats.Path()).Msg("Could not load stats")
	}
	return nil
}

func (a *app) close() error {
	var errs []error
	if a.stats != nil {
		if err := a.stats.Close(); err != nil {
			a.sinks.Debug.Warn().Err(err).Str("path", a.stats.Path()).Msg("Could not save stats")
		}
	}
	if a.sinks != nil {
		errs = append(errs, a.sinks.Close())
	}
	return errors.Join(errs...)
}

func (a *app) runMenu(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	menu := ui.NewMenu(a.prompter, ui.MenuActions{
		Hash: func(path, algorithm string) error {
			return a.hash(out, path, algorithm)
		},
		Search: func(req model.ScanRequest) error {
			return a.search(cmd.Context(), out, req)
		},
		LastRoot: a.stats.LastRoot,
	}, out)
	return menu.Run()
}

// interactive reports whether the animated display should be used on w
func (a *app) interactive(w io.Writer) bool {
	if a.cfg.Plain {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
