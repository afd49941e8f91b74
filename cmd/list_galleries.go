package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"portfolio-gallery/pkg/models"
)

// newListGalleriesCmd creates a new command for listing galleries
func newListGalleriesCmd(a *app) *cobra.Command {
	var match string

	cmd := &cobra.Command{
		Use:   "list-galleries",
		Short: "List all galleries",
		Long:  `List all galleries in navigation order with their kind and the number of images in each.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			galleries, err := service.FilterGalleries(match)
			if err != nil {
				return err
			}
			listGalleries(cmd.OutOrStdout(), galleries)
			return nil
		},
	}
	cmd.Flags().StringVarP(&match, "match", "m", "", "Only list galleries whose id or title matches this glob")
	return cmd
}

// listGalleries displays the galleries and their image counts
func listGalleries(w io.Writer, galleries []models.Gallery) {
	fmt.Fprintln(w, "Galleries:")
	fmt.Fprintln(w, "==========")

	for _, gallery := range galleries {
		fmt.Fprintf(w, "%s (%s)\n", gallery.Title, gallery.ID)
		fmt.Fprintf(w, "  Kind: %s\n", gallery.Kind)
		fmt.Fprintf(w, "  Images: %d\n", len(gallery.Images))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total: %d galleries\n", len(galleries))
}
