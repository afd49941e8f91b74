// Package presenter turns a view state into the page model shared by the web
// and terminal surfaces.
package presenter

import (
	"fmt"

	"portfolio-gallery/pkg/imageurl"
	"portfolio-gallery/pkg/models"
	"portfolio-gallery/pkg/viewstate"
)

// Options carries the page inputs that are not part of the view state
type Options struct {
	Brand       string
	Year        int
	ContactSent bool
}

// Build renders state into a page model
func Build(state viewstate.State, catalog *models.Catalog, opts Options) models.Page {
	page := models.Page{
		Brand:   opts.Brand,
		Nav:     Nav(catalog, state.Selected.ID),
		Gallery: state.Selected,
		Footer:  Footer(opts.Brand, opts.Year),
	}

	switch state.Selected.Kind {
	case models.KindBiography:
		page.IsBio = true
	case models.KindContact:
		page.IsContact = true
		page.Contact = models.ContactForm{Heading: state.Selected.Heading, Sent: opts.ContactSent}
	case models.KindMedia:
		page.IsMedia = true
		page.Previews = Previews(state.Selected)
	}

	if state.Open {
		page.Lightbox = Lightbox(state.Selected, state.OpenIndex)
	}
	return page
}

// Nav returns one entry per catalog gallery, in catalog order
func Nav(catalog *models.Catalog, selectedID string) []models.NavEntry {
	entries := make([]models.NavEntry, 0, len(catalog.Galleries))
	for _, g := range catalog.Galleries {
		entries = append(entries, models.NavEntry{
			ID:     g.ID,
			Title:  g.Title,
			Active: g.ID == selectedID,
		})
	}
	return entries
}

// Previews returns the inline images of a media gallery
func Previews(g models.Gallery) []models.ImagePreview {
	previews := make([]models.ImagePreview, 0, len(g.Images))
	for i, ref := range g.Images {
		previews = append(previews, models.ImagePreview{
			Index: i,
			URL:   imageurl.Build(ref, imageurl.Preview),
			Alt:   altText(g, i),
		})
	}
	return previews
}

// Lightbox returns the overlay for image index of g. An index outside g's
// images yields an overlay marked Missing, with no image.
func Lightbox(g models.Gallery, index int) *models.Lightbox {
	lb := &models.Lightbox{Index: index, Alt: altText(g, index)}
	if index < 0 || index >= len(g.Images) {
		lb.Missing = true
		return lb
	}
	lb.URL = imageurl.Build(g.Images[index], imageurl.Full)
	return lb
}

// Footer returns the three legal text blocks
func Footer(brand string, year int) []models.FooterBlock {
	return []models.FooterBlock{
		{
			Heading: "Legal Notice",
			Lines: []string{
				fmt.Sprintf("© %d %s. All rights reserved.", year, brand),
				"All images and artworks on this website are protected by copyright law.",
			},
		},
		{
			Heading: "Privacy Policy",
			Lines: []string{
				"This website respects your privacy and ensures the protection of any personal information shared.",
				"No cookies are used for tracking purposes.",
			},
		},
		{
			Heading: "Terms of Use",
			Lines: []string{
				"Unauthorized use or reproduction of any content from this website is strictly prohibited.",
				"For licensing inquiries, please contact us.",
			},
		},
	}
}

func altText(g models.Gallery, index int) string {
	return fmt.Sprintf("%s %d", g.Title, index+1)
}
