// Package catalog loads and validates the static gallery catalog.
//
// The catalog is read once at startup, optionally enriched with images from a
// storage bucket, and never mutated afterwards.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"portfolio-gallery/pkg/models"
)

//go:embed default.yaml
var defaultCatalog []byte

var (
	// ErrEmptyCatalog is returned when a catalog has no galleries
	ErrEmptyCatalog = errors.New("catalog has no galleries")
	// ErrMissingID is returned when a gallery has an empty id
	ErrMissingID = errors.New("gallery id is empty")
	// ErrDuplicateID is returned when two galleries share an id
	ErrDuplicateID = errors.New("duplicate gallery id")
	// ErrUnknownKind is returned for an unrecognised kind value
	ErrUnknownKind = errors.New("unknown gallery kind")
)

type galleryFile struct {
	ID      string   `yaml:"id"`
	Title   string   `yaml:"title"`
	Kind    string   `yaml:"kind"`
	Images  []string `yaml:"images"`
	Heading string   `yaml:"heading"`
	Body    string   `yaml:"body"`
}

type catalogFile struct {
	Galleries []galleryFile `yaml:"galleries"`
}

// Default returns the built-in catalog
func Default() (*models.Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from path, or the built-in catalog when path is empty
func Load(path string) (*models.Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog
func Parse(data []byte) (*models.Catalog, error) {
	var raw catalogFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &models.Catalog{Galleries: make([]models.Gallery, 0, len(raw.Galleries))}
	for _, g := range raw.Galleries {
		kind, err := resolveKind(g.ID, g.Kind)
		if err != nil {
			return nil, err
		}
		title := g.Title
		if title == "" {
			title = strings.ToUpper(g.ID)
		}
		images := g.Images
		if images == nil {
			images = []string{}
		}
		c.Galleries = append(c.Galleries, models.Gallery{
			ID:      g.ID,
			Title:   title,
			Kind:    kind,
			Images:  images,
			Heading: g.Heading,
			Body:    strings.TrimSpace(g.Body),
		})
	}

	if err := Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the catalog is non-empty and every id is present and unique
func Validate(c *models.Catalog) error {
	if c == nil || len(c.Galleries) == 0 {
		return ErrEmptyCatalog
	}
	seen := make(map[string]struct{}, len(c.Galleries))
	for i, g := range c.Galleries {
		if g.ID == "" {
			return fmt.Errorf("gallery %d: %w", i, ErrMissingID)
		}
		if _, ok := seen[g.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, g.ID)
		}
		seen[g.ID] = struct{}{}
	}
	return nil
}

// resolveKind maps an explicit kind, or failing that the well-known ids, to a GalleryKind
func resolveKind(id, kind string) (models.GalleryKind, error) {
	switch strings.ToLower(kind) {
	case "media":
		return models.KindMedia, nil
	case "biography", "bio":
		return models.KindBiography, nil
	case "contact":
		return models.KindContact, nil
	case "":
	default:
		return models.KindMedia, fmt.Errorf("gallery %s: %w: %q", id, ErrUnknownKind, kind)
	}

	switch id {
	case "bio":
		return models.KindBiography, nil
	case "contact":
		return models.KindContact, nil
	default:
		return models.KindMedia, nil
	}
}
