// Package session provides the per-client binding between a cookie-carried
// session ID and the access token issued at login.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Malex1718/expressBookReviews/internal/domain"
)

// ErrNotFound reports a missing or expired session.
var ErrNotFound = errors.New("session not found")

// Store manages token bindings. Create mints a fresh session ID; Destroy
// invalidates the binding (the underlying signed token stays valid until
// its own expiry, the gate just can no longer find it).
type Store interface {
	Create(ctx context.Context, username, token string, ttl time.Duration) (*domain.Session, error)
	Get(ctx context.Context, id string) (*domain.Session, error)
	Destroy(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// memoryStore is the default backend: a mutex-guarded map with lazy expiry.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

// NewMemoryStore returns an empty in-process session store.
func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[string]*domain.Session)}
}

func (s *memoryStore) Create(_ context.Context, username, token string, ttl time.Duration) (*domain.Session, error) {
	sess := &domain.Session{
		ID:        uuid.NewString(),
		Username:  username,
		Token:     token,
		ExpiresAt: time.Now().Add(ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess, nil
}

func (s *memoryStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(sess.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	return sess, nil
}

func (s *memoryStore) Destroy(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Ping(_ context.Context) error {
	return nil
}
