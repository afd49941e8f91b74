package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"portfolio-gallery/pkg/models"
)

// newExportCmd creates a new command for exporting gallery data
func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export [format]",
		Short: "Export gallery data",
		Long:  `Export the gallery catalog in the specified format. Supported formats: json, yaml.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := "json"
			if len(args) > 0 {
				format = args[0]
			}
			c, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			return exportData(cmd.OutOrStdout(), c, format)
		},
	}
}

// exportedGallery is the export shape of a gallery; kind is written by name
type exportedGallery struct {
	ID      string   `json:"id" yaml:"id"`
	Title   string   `json:"title" yaml:"title"`
	Kind    string   `json:"kind" yaml:"kind"`
	Images  []string `json:"images" yaml:"images"`
	Heading string   `json:"heading,omitempty" yaml:"heading,omitempty"`
	Body    string   `json:"body,omitempty" yaml:"body,omitempty"`
}

// exportData writes the catalog in the specified format
func exportData(w io.Writer, c *models.Catalog, format string) error {
	out := struct {
		Galleries []exportedGallery `json:"galleries" yaml:"galleries"`
	}{Galleries: make([]exportedGallery, 0, len(c.Galleries))}

	for _, g := range c.Galleries {
		out.Galleries = append(out.Galleries, exportedGallery{
			ID:      g.ID,
			Title:   g.Title,
			Kind:    g.Kind.String(),
			Images:  g.Images,
			Heading: g.Heading,
			Body:    g.Body,
		})
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported export format: %s (supported formats: json, yaml)", format)
	}
}
