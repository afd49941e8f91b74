package models

// GalleryKind selects how a gallery's content is rendered
type GalleryKind int

const (
	// KindMedia galleries render their images as clickable previews
	KindMedia GalleryKind = iota
	// KindBiography galleries render static descriptive text
	KindBiography
	// KindContact galleries render the contact form
	KindContact
)

// String returns the lowercase name used in YAML and JSON
func (k GalleryKind) String() string {
	switch k {
	case KindMedia:
		return "media"
	case KindBiography:
		return "biography"
	case KindContact:
		return "contact"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (k GalleryKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Gallery is a named, ordered collection of zero or more images
type Gallery struct {
	ID      string      `json:"id" yaml:"id"`
	Title   string      `json:"title" yaml:"title"`
	Kind    GalleryKind `json:"kind" yaml:"-"`
	Images  []string    `json:"images" yaml:"images"`
	Heading string      `json:"heading,omitempty" yaml:"heading,omitempty"`
	Body    string      `json:"body,omitempty" yaml:"body,omitempty"`
}

// Catalog is the full static ordered list of galleries
type Catalog struct {
	Galleries []Gallery `json:"galleries" yaml:"galleries"`
}

// Default returns the gallery selected at startup
func (c *Catalog) Default() Gallery {
	return c.Galleries[0]
}

// Find returns the gallery with the given id
func (c *Catalog) Find(id string) (Gallery, bool) {
	for _, g := range c.Galleries {
		if g.ID == id {
			return g, true
		}
	}
	return Gallery{}, false
}

// IDs returns every gallery id in catalog order
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.Galleries))
	for _, g := range c.Galleries {
		ids = append(ids, g.ID)
	}
	return ids
}

// NavEntry is one tab of the navigation bar
type NavEntry struct {
	ID     string
	Title  string
	Active bool
	// Action is the form target selecting this entry on the web surface
	Action string
}

// ImagePreview is one clickable image in a media gallery
type ImagePreview struct {
	Index  int
	URL    string
	Alt    string
	Action string
}

// Lightbox holds what the overlay displays
type Lightbox struct {
	Index int
	URL   string
	Alt   string
	// Missing is set when the open index does not point into the selected gallery
	Missing bool
}

// FooterBlock is one of the static legal text blocks
type FooterBlock struct {
	Heading string
	Lines   []string
}

// ContactForm describes the contact form fields
type ContactForm struct {
	Heading string
	Sent    bool
}

// Page represents the data rendered for the single page view
type Page struct {
	Brand     string
	Nav       []NavEntry
	Gallery   Gallery
	IsMedia   bool
	IsBio     bool
	IsContact bool
	Previews  []ImagePreview
	Contact   ContactForm
	Footer    []FooterBlock
	Lightbox  *Lightbox
}
