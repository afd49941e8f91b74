package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"portfolio-gallery/pkg/models"
)

// Allowed image extensions
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// BucketSource lists gallery images stored in a Cloud Storage bucket laid out as
// <gallery-id>/<file>.
type BucketSource struct {
	client       *storage.Client
	bucketName   string
	signedURLTTL time.Duration
	logger       *zap.Logger
}

// NewBucketSource creates a storage client for the named bucket
func NewBucketSource(ctx context.Context, bucketName string, signedURLTTL time.Duration, logger *zap.Logger, opts ...option.ClientOption) (*BucketSource, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &BucketSource{
		client:       client,
		bucketName:   bucketName,
		signedURLTTL: signedURLTTL,
		logger:       logger,
	}, nil
}

// Close releases the storage client
func (b *BucketSource) Close() error {
	return b.client.Close()
}

// Enrich returns a copy of c where every media gallery that has objects in the
// bucket uses signed URLs of those objects as its images. Galleries without
// objects keep their configured images.
func (b *BucketSource) Enrich(ctx context.Context, c *models.Catalog) (*models.Catalog, error) {
	b.logger.Info("Listing bucket images", zap.String("bucket", b.bucketName))

	bucket := b.client.Bucket(b.bucketName)
	it := bucket.Objects(ctx, nil)

	var names []string
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list bucket %s: %w", b.bucketName, err)
		}
		names = append(names, attrs.Name)
	}

	grouped := groupImageObjects(names)
	expires := time.Now().Add(b.signedURLTTL)

	enriched := &models.Catalog{Galleries: make([]models.Gallery, len(c.Galleries))}
	copy(enriched.Galleries, c.Galleries)

	sign := func(name string) (string, error) {
		return bucket.SignedURL(name, &storage.SignedURLOptions{
			Expires: expires,
			Method:  "GET",
		})
	}
	for i, g := range enriched.Galleries {
		enriched.Galleries[i] = b.enrichGallery(g, grouped[g.ID], sign)
	}

	return enriched, nil
}

// enrichGallery replaces the images of a media gallery with signed URLs of its
// objects. The configured images stay when no object could be signed.
func (b *BucketSource) enrichGallery(g models.Gallery, objects []string, sign func(string) (string, error)) models.Gallery {
	if len(objects) == 0 || g.Kind != models.KindMedia {
		return g
	}

	images := make([]string, 0, len(objects))
	for _, name := range objects {
		signedURL, err := sign(name)
		if err != nil {
			b.logger.Warn("Error creating signed URL", zap.String("object", name), zap.Error(err))
			continue
		}
		images = append(images, signedURL)
	}
	if len(images) == 0 {
		b.logger.Error("No bucket image could be signed, keeping configured images",
			zap.String("gallery", g.ID),
			zap.Int("objects", len(objects)))
		return g
	}

	g.Images = images
	b.logger.Info("Gallery enriched from bucket",
		zap.String("gallery", g.ID),
		zap.Int("images", len(images)))
	return g
}

// groupImageObjects groups image object names by their top-level prefix and
// sorts each group naturally
func groupImageObjects(names []string) map[string][]string {
	grouped := make(map[string][]string)
	for _, name := range names {
		parts := strings.Split(name, "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		if !isImage(parts[1]) {
			continue
		}
		grouped[parts[0]] = append(grouped[parts[0]], name)
	}
	for _, objects := range grouped {
		sort.Slice(objects, func(i, j int) bool {
			return naturalLess(objects[i], objects[j])
		})
	}
	return grouped
}

func isImage(filename string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
