// Package imageurl builds image request URLs for a named display quality
package imageurl

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Profile is a set of display-quality parameters understood by the image service
type Profile struct {
	Name    string
	Format  string
	Fit     string
	Width   int
	Quality int
}

var (
	// Preview is used for inline gallery images
	Preview = Profile{Name: "preview", Format: "format", Fit: "crop", Width: 2000, Quality: 80}
	// Full is used for the lightbox
	Full = Profile{Name: "full", Format: "format", Fit: "crop", Width: 2000, Quality: 90}
)

// ProfileByName returns the profile called name
func ProfileByName(name string) (Profile, error) {
	switch strings.ToLower(name) {
	case Preview.Name:
		return Preview, nil
	case Full.Name:
		return Full, nil
	default:
		return Profile{}, fmt.Errorf("unknown image profile %q", name)
	}
}

// Values returns the query parameters for p
func (p Profile) Values() url.Values {
	v := url.Values{}
	if p.Format != "" {
		v.Set("auto", p.Format)
	}
	if p.Fit != "" {
		v.Set("fit", p.Fit)
	}
	if p.Width > 0 {
		v.Set("w", strconv.Itoa(p.Width))
	}
	if p.Quality > 0 {
		v.Set("q", strconv.Itoa(p.Quality))
	}
	return v
}

// Build appends p's parameters to base. Parameters already present in base
// are kept unless p sets the same key. Output parameter order is sorted, so
// the same input always yields the same URL.
func Build(base string, p Profile) string {
	params := p.Values()
	if len(params) == 0 {
		return base
	}

	u, err := url.Parse(base)
	if err != nil {
		sep := "?"
		if strings.Contains(base, "?") {
			sep = "&"
		}
		return base + sep + params.Encode()
	}

	q := u.Query()
	for k, vs := range params {
		q[k] = vs
	}
	u.RawQuery = q.Encode()
	return u.String()
}
