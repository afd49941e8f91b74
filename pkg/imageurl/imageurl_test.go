package imageurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	base := "https://images.unsplash.com/photo-1682687220742-aba19b51f36d"

	assert.Equal(t, base+"?auto=format&fit=crop&q=80&w=2000", Build(base, Preview))
	assert.Equal(t, base+"?auto=format&fit=crop&q=90&w=2000", Build(base, Full))
}

func TestBuildIsDeterministic(t *testing.T) {
	base := "https://example.com/a.jpg?z=1&b=2"
	first := Build(base, Full)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Build(base, Full))
	}
	assert.Equal(t, "https://example.com/a.jpg?auto=format&b=2&fit=crop&q=90&w=2000&z=1", first)
}

func TestBuildOverridesProfileKeys(t *testing.T) {
	got := Build("https://example.com/a.jpg?q=10&w=5", Preview)
	assert.Equal(t, "https://example.com/a.jpg?auto=format&fit=crop&q=80&w=2000", got)
}

func TestBuildEmptyProfile(t *testing.T) {
	assert.Equal(t, "relative/a.jpg", Build("relative/a.jpg", Profile{}))
}

func TestProfileByName(t *testing.T) {
	p, err := ProfileByName("FULL")
	require.NoError(t, err)
	assert.Equal(t, Full, p)

	p, err = ProfileByName("preview")
	require.NoError(t, err)
	assert.Equal(t, Preview, p)

	_, err = ProfileByName("thumbnail")
	assert.Error(t, err)
}
