// Package viewstate holds the selected gallery and the lightbox position for
// one viewer, and the transitions triggered by that viewer's gestures.
//
// A Controller is not safe for concurrent use; callers serialise gestures.
package viewstate

import (
	"errors"
	"fmt"

	"portfolio-gallery/pkg/models"
)

// ErrIndexOutOfRange is returned by Open for an index outside the selected gallery
var ErrIndexOutOfRange = errors.New("image index out of range")

// ErrUnknownGallery is returned by SelectGalleryByID for an id not in the catalog
var ErrUnknownGallery = errors.New("unknown gallery")

// State is a copy of the controller's state at one point in time
type State struct {
	Selected  models.Gallery
	OpenIndex int
	Open      bool
}

// Controller owns the view state of a single viewer
type Controller struct {
	catalog   *models.Catalog
	selected  models.Gallery
	openIndex int
	open      bool
}

// New creates a controller with the first catalog entry selected and the lightbox closed
func New(catalog *models.Catalog) *Controller {
	return &Controller{
		catalog:  catalog,
		selected: catalog.Default(),
	}
}

// Catalog returns the catalog the controller selects from
func (c *Controller) Catalog() *models.Catalog {
	return c.catalog
}

// Selected returns the selected gallery
func (c *Controller) Selected() models.Gallery {
	return c.selected
}

// OpenIndex returns the open image index; ok is false when the lightbox is closed
func (c *Controller) OpenIndex() (index int, ok bool) {
	return c.openIndex, c.open
}

// Snapshot returns a copy of the current state
func (c *Controller) Snapshot() State {
	return State{Selected: c.selected, OpenIndex: c.openIndex, Open: c.open}
}

// SelectGallery makes g the selected gallery.
// The lightbox is left as it is: an open index now refers to g's images even
// when g has fewer of them.
func (c *Controller) SelectGallery(g models.Gallery) {
	c.selected = g
}

// SelectGalleryByID looks id up in the catalog and selects it
func (c *Controller) SelectGalleryByID(id string) error {
	g, ok := c.catalog.Find(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownGallery, id)
	}
	c.SelectGallery(g)
	return nil
}

// Open shows image index of the selected gallery in the lightbox
func (c *Controller) Open(index int) error {
	if index < 0 || index >= len(c.selected.Images) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(c.selected.Images))
	}
	c.openIndex = index
	c.open = true
	return nil
}

// Close hides the lightbox
func (c *Controller) Close() {
	c.open = false
	c.openIndex = 0
}

// Previous moves the lightbox one image back, wrapping from the first to the last
func (c *Controller) Previous() {
	n := len(c.selected.Images)
	if !c.open || n == 0 {
		return
	}
	if c.openIndex == 0 {
		c.openIndex = n - 1
	} else {
		c.openIndex--
	}
}

// Next moves the lightbox one image forward, wrapping from the last to the first
func (c *Controller) Next() {
	n := len(c.selected.Images)
	if !c.open || n == 0 {
		return
	}
	if c.openIndex == n-1 {
		c.openIndex = 0
	} else {
		c.openIndex++
	}
}

// LightboxImage returns the image reference shown in the lightbox.
// ok is false when the lightbox is closed or the open index does not point
// into the selected gallery.
func (c *Controller) LightboxImage() (ref string, ok bool) {
	if !c.open || c.openIndex < 0 || c.openIndex >= len(c.selected.Images) {
		return "", false
	}
	return c.selected.Images[c.openIndex], true
}
