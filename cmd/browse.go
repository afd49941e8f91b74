package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"portfolio-gallery/pkg/tui"
	"portfolio-gallery/pkg/viewstate"
)

// newBrowseCmd creates a new command for browsing the portfolio in the terminal
func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the galleries in the terminal",
		Long: `Browse the galleries in an interactive terminal view. Switch galleries with the
arrow keys or number keys, open an image with enter and page through the lightbox
with h and l.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Log output would draw over the alternate screen.
			a.logger = zap.NewNop()

			c, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			return tui.Run(viewstate.New(c), a.cfg.Brand, tui.WithLogger(a.logger))
		},
	}
}
