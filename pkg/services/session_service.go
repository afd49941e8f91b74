package services

import (
	"sync"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"portfolio-gallery/pkg/viewstate"
)

// session pairs a viewer's controller with the lock that serialises its gestures
type session struct {
	mu         sync.Mutex
	controller *viewstate.Controller
}

// WithSession runs fn against the view state of session id, creating a fresh
// session when id is empty, unknown or expired. It returns the id of the session
// fn ran against. Gestures on the same session run one at a time.
func (s *Service) WithSession(id string, fn func(*viewstate.Controller) error) (string, error) {
	id, sess := s.session(id)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	err := fn(sess.controller)

	// Touch to extend the idle timeout.
	s.sessions.Set(id, sess, cache.DefaultExpiration)
	return id, err
}

// SessionCount returns the number of live sessions
func (s *Service) SessionCount() int {
	return s.sessions.ItemCount()
}

func (s *Service) session(id string) (string, *session) {
	if id != "" {
		if cached, found := s.sessions.Get(id); found {
			return id, cached.(*session)
		}
	}

	id = uuid.NewString()
	sess := &session{controller: viewstate.New(s.catalog)}
	// Add fails only on an id collision.
	if err := s.sessions.Add(id, sess, cache.DefaultExpiration); err != nil {
		s.logger.Warn("Session id collision", zap.String("session", id), zap.Error(err))
	}
	s.logger.Debug("Created session", zap.String("session", id))
	return id, sess
}
