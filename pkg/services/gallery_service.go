package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/gobwas/glob"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"portfolio-gallery/pkg/models"
)

// ErrGalleryNotFound is returned when no gallery has the requested id
var ErrGalleryNotFound = errors.New("gallery not found")

// Service handles operations related to the catalog and viewer sessions
type Service struct {
	catalog  *models.Catalog
	sessions *cache.Cache
	logger   *zap.Logger
}

// NewService creates a service over an already validated catalog.
// Sessions idle for longer than sessionTTL are dropped.
func NewService(catalog *models.Catalog, sessionTTL time.Duration, logger *zap.Logger) *Service {
	return &Service{
		catalog:  catalog,
		sessions: cache.New(sessionTTL, 2*sessionTTL),
		logger:   logger,
	}
}

// Catalog returns the catalog
func (s *Service) Catalog() *models.Catalog {
	return s.catalog
}

// GetGalleries returns all galleries in catalog order
func (s *Service) GetGalleries() []models.Gallery {
	return s.catalog.Galleries
}

// GetGallery returns a gallery by its id
func (s *Service) GetGallery(id string) (models.Gallery, error) {
	g, ok := s.catalog.Find(id)
	if !ok {
		return models.Gallery{}, fmt.Errorf("%w: %s", ErrGalleryNotFound, id)
	}
	return g, nil
}

// FilterGalleries returns the galleries whose id or title matches the glob pattern
func (s *Service) FilterGalleries(pattern string) ([]models.Gallery, error) {
	if pattern == "" {
		return s.GetGalleries(), nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	var matched []models.Gallery
	for _, gallery := range s.catalog.Galleries {
		if g.Match(gallery.ID) || g.Match(gallery.Title) {
			matched = append(matched, gallery)
		}
	}
	return matched, nil
}

// Suggest returns gallery ids close to id, nearest first
func (s *Service) Suggest(id string) []string {
	type candidate struct {
		id   string
		dist int
	}

	limit := len(id) / 2
	if limit < 2 {
		limit = 2
	}

	var candidates []candidate
	for _, g := range s.catalog.Galleries {
		d := levenshtein.ComputeDistance(id, g.ID)
		if d <= limit {
			candidates = append(candidates, candidate{id: g.ID, dist: d})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.id)
	}
	return ids
}
