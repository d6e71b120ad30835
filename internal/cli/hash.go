package cli

import (
	"io"

	"github.com/lumipallolabs/hashseek/internal/ui"
	"github.com/spf13/cobra"
)

func newHashCmd(a *app) *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "hash <file>",
		Short: "Compute the digest of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.hash(cmd.OutOrStdout(), args[0], algorithm)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "sha256", "Hash algorithm: sha256 or md5")
	return cmd
}

func (a *app) hash(w io.Writer, path, algorithm string) error {
	sum, algo, err := a.ctrl.HashFile(path, algorithm)
	if err != nil {
		return err
	}
	a.stats.RecordHash()
	ui.RenderHash(w, path, algo, sum)
	return nil
}
