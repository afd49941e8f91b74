package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"portfolio-gallery/pkg/models"
	"portfolio-gallery/pkg/presenter"
	"portfolio-gallery/pkg/services"
	"portfolio-gallery/pkg/viewstate"
)

// SessionCookie is the name of the cookie carrying the viewer's session id
const SessionCookie = "portfolio_session"

// IndexView is the name of the single page view
const IndexView = "index"

// Handlers serves the portfolio page and applies viewer gestures
type Handlers struct {
	service  *services.Service
	renderer Renderer
	brand    string
	now      func() time.Time
	logger   *zap.Logger
}

// New creates the HTTP handlers
func New(service *services.Service, renderer Renderer, brand string, logger *zap.Logger) *Handlers {
	return &Handlers{
		service:  service,
		renderer: renderer,
		brand:    brand,
		now:      time.Now,
		logger:   logger,
	}
}

// Routes returns the router for the whole site
func (h *Handlers) Routes(publicDir string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.PageHandler)
	mux.HandleFunc("GET /feed", h.FeedHandler)
	mux.HandleFunc("GET /healthz", h.HealthHandler)
	mux.HandleFunc("POST /select/{id}", h.SelectHandler)
	mux.HandleFunc("POST /open/{index}", h.OpenHandler)
	mux.HandleFunc("POST /lightbox/close", h.gesture("close", func(c *viewstate.Controller) error {
		c.Close()
		return nil
	}))
	mux.HandleFunc("POST /lightbox/prev", h.gesture("previous", func(c *viewstate.Controller) error {
		c.Previous()
		return nil
	}))
	mux.HandleFunc("POST /lightbox/next", h.gesture("next", func(c *viewstate.Controller) error {
		c.Next()
		return nil
	}))
	mux.HandleFunc("POST /contact", h.ContactHandler)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(publicDir))))
	return h.logRequests(mux)
}

// PageHandler renders the page for the caller's session
func (h *Handlers) PageHandler(w http.ResponseWriter, r *http.Request) {
	opts := presenter.Options{
		Brand:       h.brand,
		Year:        h.now().Year(),
		ContactSent: r.URL.Query().Get("sent") == "1",
	}

	var page models.Page
	id, _ := h.service.WithSession(sessionID(r), func(c *viewstate.Controller) error {
		page = presenter.Build(c.Snapshot(), c.Catalog(), opts)
		return nil
	})
	setSessionCookie(w, id)
	withActions(&page)

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, IndexView, page); err != nil {
		h.logger.Error("Template execution error", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// withActions points the page's clickable elements at their gesture routes
func withActions(page *models.Page) {
	for i := range page.Nav {
		page.Nav[i].Action = "/select/" + url.PathEscape(page.Nav[i].ID)
	}
	for i := range page.Previews {
		page.Previews[i].Action = "/open/" + strconv.Itoa(page.Previews[i].Index)
	}
}

// SelectHandler switches the selected gallery
func (h *Handlers) SelectHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	h.gesture("select", func(c *viewstate.Controller) error {
		err := c.SelectGalleryByID(id)
		if errors.Is(err, viewstate.ErrUnknownGallery) {
			if suggestions := h.service.Suggest(id); len(suggestions) > 0 {
				return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(suggestions, ", "))
			}
		}
		return err
	})(w, r)
}

// OpenHandler opens the lightbox on an image of the selected gallery
func (h *Handlers) OpenHandler(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "Invalid image index", http.StatusBadRequest)
		return
	}
	h.gesture("open", func(c *viewstate.Controller) error {
		return c.Open(index)
	})(w, r)
}

// ContactHandler accepts the contact form. Submissions are not delivered anywhere.
func (h *Handlers) ContactHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	h.logger.Info("Contact form submitted",
		zap.Int("name_len", len(r.PostForm.Get("name"))),
		zap.Int("email_len", len(r.PostForm.Get("email"))),
		zap.Int("message_len", len(r.PostForm.Get("message"))))

	id, _ := h.service.WithSession(sessionID(r), func(*viewstate.Controller) error { return nil })
	setSessionCookie(w, id)
	http.Redirect(w, r, "/?sent=1", http.StatusSeeOther)
}

// FeedHandler returns the catalog as JSON
func (h *Handlers) FeedHandler(w http.ResponseWriter, _ *http.Request) {
	data, err := json.Marshal(h.service.Catalog())
	if err != nil {
		h.logger.Error("Error marshaling feed", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

// HealthHandler reports liveness
func (h *Handlers) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// gesture applies fn to the caller's view state and redirects back to the page
func (h *Handlers) gesture(name string, fn func(*viewstate.Controller) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := h.service.WithSession(sessionID(r), fn)
		setSessionCookie(w, id)
		if err != nil {
			status := statusFor(err)
			h.logger.Info("Gesture rejected",
				zap.String("gesture", name),
				zap.Int("status", status),
				zap.Error(err))
			http.Error(w, err.Error(), status)
			return
		}
		h.logger.Debug("Gesture applied", zap.String("gesture", name), zap.String("session", id))
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, viewstate.ErrUnknownGallery):
		return http.StatusNotFound
	case errors.Is(err, viewstate.ErrIndexOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func sessionID(r *http.Request) string {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

func setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (h *Handlers) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.logger.Debug("Request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}
