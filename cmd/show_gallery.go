package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"portfolio-gallery/pkg/imageurl"
	"portfolio-gallery/pkg/models"
	"portfolio-gallery/pkg/services"
)

// newShowGalleryCmd creates a new command for showing gallery details
func newShowGalleryCmd(a *app) *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "show-gallery [id]",
		Short: "Show images in a specific gallery",
		Long:  `Show detailed information about a gallery identified by its id, including the request URL of every image.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := imageurl.ProfileByName(profileName)
			if err != nil {
				return err
			}
			service, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			return showGallery(cmd.OutOrStdout(), service, args[0], profile)
		},
	}
	cmd.Flags().StringVar(&profileName, "profile", imageurl.Preview.Name, "Image quality profile: preview or full")
	return cmd
}

// showGallery displays details about a specific gallery
func showGallery(w io.Writer, service *services.Service, id string, profile imageurl.Profile) error {
	gallery, err := service.GetGallery(id)
	if err != nil {
		if errors.Is(err, services.ErrGalleryNotFound) {
			if suggestions := service.Suggest(id); len(suggestions) > 0 {
				return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(suggestions, ", "))
			}
		}
		return err
	}

	fmt.Fprintf(w, "Gallery: %s\n", gallery.Title)
	fmt.Fprintf(w, "ID: %s\n", gallery.ID)
	fmt.Fprintf(w, "Kind: %s\n", gallery.Kind)

	switch gallery.Kind {
	case models.KindBiography:
		fmt.Fprintln(w, "================")
		fmt.Fprintln(w, gallery.Heading)
		fmt.Fprintln(w, gallery.Body)
	case models.KindContact:
		fmt.Fprintln(w, "================")
		fmt.Fprintln(w, gallery.Heading)
		fmt.Fprintln(w, "Fields: name, email, message")
	case models.KindMedia:
		fmt.Fprintf(w, "Images: %d\n", len(gallery.Images))
		fmt.Fprintln(w, "================")
		for i, ref := range gallery.Images {
			fmt.Fprintf(w, "%d. %s\n", i+1, imageurl.Build(ref, profile))
		}
	}
	return nil
}
