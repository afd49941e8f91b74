package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio-gallery/pkg/catalog"
	"portfolio-gallery/pkg/models"
	"portfolio-gallery/pkg/services"
)

// recordingRenderer keeps the last page instead of executing a template
type recordingRenderer struct {
	last models.Page
	err  error
}

func (r *recordingRenderer) Render(w io.Writer, name string, data any) error {
	if r.err != nil {
		return r.err
	}
	r.last = data.(models.Page)
	_, err := io.WriteString(w, "rendered "+name)
	return err
}

type testClient struct {
	t        *testing.T
	handler  http.Handler
	renderer *recordingRenderer
	cookie   *http.Cookie
}

func newTestClient(t *testing.T) *testClient {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)

	renderer := &recordingRenderer{}
	h := New(services.NewService(c, time.Minute, zap.NewNop()), renderer, "SHATOM", zap.NewNop())
	h.now = func() time.Time { return time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC) }

	return &testClient{t: t, handler: h.Routes(t.TempDir()), renderer: renderer}
}

func (c *testClient) do(method, target string, body io.Reader) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == SessionCookie {
			c.cookie = ck
		}
	}
	return rec
}

func (c *testClient) page() models.Page {
	c.t.Helper()
	rec := c.do(http.MethodGet, "/", nil)
	require.Equal(c.t, http.StatusOK, rec.Code)
	return c.renderer.last
}

func (c *testClient) post(target string) *httptest.ResponseRecorder {
	c.t.Helper()
	return c.do(http.MethodPost, target, nil)
}

func requireRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, location, rec.Header().Get("Location"))
}

func TestPageHandlerDefaultState(t *testing.T) {
	c := newTestClient(t)

	page := c.page()

	require.NotNil(t, c.cookie)
	assert.True(t, c.cookie.HttpOnly)
	assert.Equal(t, "SHATOM", page.Brand)
	assert.Equal(t, "photography", page.Gallery.ID)
	assert.True(t, page.IsMedia)
	assert.Nil(t, page.Lightbox)
	require.Len(t, page.Nav, 4)
	assert.True(t, page.Nav[0].Active)
	assert.Equal(t, "/select/photography", page.Nav[0].Action)
	require.Len(t, page.Previews, 3)
	assert.Equal(t, "/open/2", page.Previews[2].Action)
	assert.Equal(t, "© 2026 SHATOM. All rights reserved.", page.Footer[0].Lines[0])
}

func TestLightboxScenario(t *testing.T) {
	c := newTestClient(t)
	c.page()

	requireRedirect(t, c.post("/open/1"), "/")
	page := c.page()
	require.NotNil(t, page.Lightbox)
	assert.Equal(t, 1, page.Lightbox.Index)
	assert.Contains(t, page.Lightbox.URL, "q=90")

	requireRedirect(t, c.post("/lightbox/next"), "/")
	assert.Equal(t, 2, c.page().Lightbox.Index)

	requireRedirect(t, c.post("/lightbox/next"), "/")
	assert.Equal(t, 0, c.page().Lightbox.Index)

	requireRedirect(t, c.post("/lightbox/prev"), "/")
	assert.Equal(t, 2, c.page().Lightbox.Index)

	requireRedirect(t, c.post("/lightbox/close"), "/")
	assert.Nil(t, c.page().Lightbox)
}

func TestSelectKeepsLightboxOpen(t *testing.T) {
	c := newTestClient(t)
	c.page()

	requireRedirect(t, c.post("/open/2"), "/")
	requireRedirect(t, c.post("/select/bio"), "/")

	page := c.page()
	assert.True(t, page.IsBio)
	assert.True(t, page.Nav[2].Active)
	require.NotNil(t, page.Lightbox)
	assert.Equal(t, 2, page.Lightbox.Index)
	assert.True(t, page.Lightbox.Missing)
}

func TestGestureErrors(t *testing.T) {
	c := newTestClient(t)
	c.page()

	assert.Equal(t, http.StatusNotFound, c.post("/select/sculpture").Code)
	assert.Equal(t, http.StatusBadRequest, c.post("/open/3").Code)
	assert.Equal(t, http.StatusBadRequest, c.post("/open/first").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, c.do(http.MethodGet, "/lightbox/next", nil).Code)

	page := c.page()
	assert.Equal(t, "photography", page.Gallery.ID)
	assert.Nil(t, page.Lightbox)
}

func TestSelectUnknownGallerySuggests(t *testing.T) {
	c := newTestClient(t)
	c.page()

	rec := c.post("/select/photgraphy")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown gallery")
	assert.Contains(t, rec.Body.String(), "did you mean photography?")
	assert.Equal(t, "photography", c.page().Gallery.ID)
}

func TestNavigationWithoutOpenLightbox(t *testing.T) {
	c := newTestClient(t)
	c.page()

	requireRedirect(t, c.post("/lightbox/next"), "/")
	requireRedirect(t, c.post("/lightbox/prev"), "/")
	assert.Nil(t, c.page().Lightbox)
}

func TestContactHandler(t *testing.T) {
	c := newTestClient(t)
	c.page()
	requireRedirect(t, c.post("/select/contact"), "/")

	form := strings.NewReader("name=Ada&email=ada%40example.com&message=hello")
	requireRedirect(t, c.do(http.MethodPost, "/contact", form), "/?sent=1")

	rec := c.do(http.MethodGet, "/?sent=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := c.renderer.last
	assert.True(t, page.IsContact)
	assert.Equal(t, models.ContactForm{Heading: "Get in Touch", Sent: true}, page.Contact)
}

func TestPageHandlerRenderError(t *testing.T) {
	c := newTestClient(t)
	c.renderer.err = errors.New("bad template")

	rec := c.do(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestFeedHandler(t *testing.T) {
	c := newTestClient(t)

	rec := c.do(http.MethodGet, "/feed", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var feed struct {
		Galleries []struct {
			ID     string   `json:"id"`
			Kind   string   `json:"kind"`
			Images []string `json:"images"`
		} `json:"galleries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	require.Len(t, feed.Galleries, 4)
	assert.Equal(t, "photography", feed.Galleries[0].ID)
	assert.Equal(t, "media", feed.Galleries[0].Kind)
	assert.Equal(t, "biography", feed.Galleries[2].Kind)
	assert.Empty(t, feed.Galleries[3].Images)
}

func TestHealthHandler(t *testing.T) {
	c := newTestClient(t)
	rec := c.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestUnknownPath(t *testing.T) {
	c := newTestClient(t)
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/gallery/old-link", nil).Code)
}
