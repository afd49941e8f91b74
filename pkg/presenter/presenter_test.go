package presenter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-gallery/pkg/models"
	"portfolio-gallery/pkg/viewstate"
)

func testCatalog() *models.Catalog {
	return &models.Catalog{Galleries: []models.Gallery{
		{ID: "photography", Title: "PHOTOGRAPHY", Kind: models.KindMedia, Images: []string{"https://img/a", "https://img/b", "https://img/c"}},
		{ID: "bio", Title: "BIO", Kind: models.KindBiography, Images: []string{}, Heading: "About", Body: "text"},
		{ID: "contact", Title: "CONTACT", Kind: models.KindContact, Images: []string{}, Heading: "Get in Touch"},
	}}
}

func TestNavOneEntryPerGalleryInOrder(t *testing.T) {
	cat := testCatalog()

	want := []models.NavEntry{
		{ID: "photography", Title: "PHOTOGRAPHY"},
		{ID: "bio", Title: "BIO", Active: true},
		{ID: "contact", Title: "CONTACT"},
	}
	if diff := cmp.Diff(want, Nav(cat, "bio")); diff != "" {
		t.Errorf("nav mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMediaPage(t *testing.T) {
	cat := testCatalog()
	c := viewstate.New(cat)

	page := Build(c.Snapshot(), cat, Options{Brand: "SHATOM", Year: 2026})

	assert.True(t, page.IsMedia)
	assert.False(t, page.IsBio)
	assert.False(t, page.IsContact)
	assert.Nil(t, page.Lightbox)
	require.Len(t, page.Previews, 3)
	assert.Equal(t, models.ImagePreview{
		Index: 1,
		URL:   "https://img/b?auto=format&fit=crop&q=80&w=2000",
		Alt:   "PHOTOGRAPHY 2",
	}, page.Previews[1])
	require.Len(t, page.Footer, 3)
	assert.Equal(t, "© 2026 SHATOM. All rights reserved.", page.Footer[0].Lines[0])
}

func TestBuildWithLightbox(t *testing.T) {
	cat := testCatalog()
	c := viewstate.New(cat)
	require.NoError(t, c.Open(2))

	page := Build(c.Snapshot(), cat, Options{})

	require.NotNil(t, page.Lightbox)
	assert.Equal(t, &models.Lightbox{
		Index: 2,
		URL:   "https://img/c?auto=format&fit=crop&q=90&w=2000",
		Alt:   "PHOTOGRAPHY 3",
	}, page.Lightbox)
}

func TestBuildBioAndContact(t *testing.T) {
	cat := testCatalog()
	c := viewstate.New(cat)

	require.NoError(t, c.SelectGalleryByID("bio"))
	page := Build(c.Snapshot(), cat, Options{})
	assert.True(t, page.IsBio)
	assert.Empty(t, page.Previews)
	assert.Equal(t, "text", page.Gallery.Body)

	require.NoError(t, c.SelectGalleryByID("contact"))
	page = Build(c.Snapshot(), cat, Options{ContactSent: true})
	assert.True(t, page.IsContact)
	assert.Equal(t, models.ContactForm{Heading: "Get in Touch", Sent: true}, page.Contact)
}

func TestBuildStaleLightboxAfterGallerySwitch(t *testing.T) {
	cat := testCatalog()
	c := viewstate.New(cat)
	require.NoError(t, c.Open(2))
	require.NoError(t, c.SelectGalleryByID("bio"))

	page := Build(c.Snapshot(), cat, Options{})

	require.NotNil(t, page.Lightbox)
	assert.True(t, page.Lightbox.Missing)
	assert.Empty(t, page.Lightbox.URL)
	assert.True(t, page.IsBio)
}
