package repository

import (
	"sync"

	"github.com/Malex1718/expressBookReviews/internal/domain"
)

// UserRepository defines access to the registered-user directory.
type UserRepository interface {
	Add(user domain.User) error
	Exists(username string) bool
	Authenticate(username, password string) bool
	Count() int
}

// userRepository keeps the directory as an append-only slice behind a
// single RWMutex. There is no index; membership and authentication are
// linear scans, which is fine at this scale.
type userRepository struct {
	mu    sync.RWMutex
	users []domain.User
}

// NewUserRepository returns an empty in-memory directory.
func NewUserRepository() UserRepository {
	return &userRepository{}
}

// Add appends the user, rejecting duplicates. The existence check and the
// append happen under one lock so concurrent registrations of the same
// name cannot both succeed.
func (r *userRepository) Add(user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return ErrUserExists
		}
	}
	r.users = append(r.users, user)
	return nil
}

// Exists reports whether the username is registered (case-sensitive).
func (r *userRepository) Exists(username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return true
		}
	}
	return false
}

// Authenticate reports whether the exact (username, password) pair exists.
func (r *userRepository) Authenticate(username, password string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username && u.Password == password {
			return true
		}
	}
	return false
}

// Count returns the directory size.
func (r *userRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
