package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lumipallolabs/hashseek/internal/core"
	"github.com/lumipallolabs/hashseek/internal/digest"
	"github.com/lumipallolabs/hashseek/internal/model"
	"github.com/lumipallolabs/hashseek/internal/ui"
	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		root           string
		algorithm      string
		skipRestricted bool
	)

	cmd := &cobra.Command{
		Use:   "search <digest>",
		Short: "Find files whose content matches a digest",
		Long: `Walk a directory tree and report every regular file whose digest equals
the given one. The algorithm is inferred from the digest length (32 hex
characters for MD5, 64 for SHA256) unless --algorithm is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := model.ScanRequest{
				Root:           root,
				Target:         args[0],
				SkipRestricted: skipRestricted,
			}
			if algorithm != "" {
				algo, err := digest.ParseAlgorithm(algorithm)
				if err != nil {
					return err
				}
				req.Algorithm = algo
			}
			return a.search(cmd.Context(), cmd.OutOrStdout(), req)
		},
	}

	cmd.Flags().StringVarP(&root, "root", "r", "", "Directory to search (default: working directory)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Hash algorithm: sha256 or md5 (default: inferred)")
	cmd.Flags().BoolVarP(&skipRestricted, "skip-restricted", "s", false, "Skip protected system directories")
	return cmd
}

func (a *app) search(ctx context.Context, w io.Writer, req model.ScanRequest) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if a.interactive(w) {
		return a.searchInteractive(ctx, w, req)
	}
	return a.searchPlain(ctx, w, req)
}

func (a *app) searchPlain(ctx context.Context, w io.Writer, req model.ScanRequest) error {
	res, err := a.ctrl.Search(ctx, req, ui.NewPlainObserver(w))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(w)
			return ErrInterrupted
		}
		return err
	}
	a.stats.RecordSearch(res)
	ui.RenderReport(w, res, core.Describe(res.Matches))
	return nil
}

func (a *app) searchInteractive(ctx context.Context, w io.Writer, req model.ScanRequest) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eventCh, err := a.ctrl.StartSearch(ctx, req)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(ui.NewSearchApp(a.ctrl, eventCh), tea.WithOutput(w)).Run()
	if err != nil {
		cancel()
		drain(eventCh)
		return err
	}

	app := final.(ui.SearchApp)
	if app.Interrupted() {
		cancel()
		drain(eventCh)
		return ErrInterrupted
	}
	if app.Err() != nil {
		return app.Err()
	}
	res := app.Result()
	if res == nil {
		return nil
	}
	a.stats.RecordSearch(res)
	ui.RenderReport(w, res, core.Describe(res.Matches))
	return nil
}

// drain discards events until the scan goroutine closes the channel
func drain(eventCh <-chan core.Event) {
	for range eventCh {
	}
}
