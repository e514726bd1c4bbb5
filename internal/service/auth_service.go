package service

import (
	"context"
	"time"

	"github.com/Malex1718/expressBookReviews/internal/auth"
	"github.com/Malex1718/expressBookReviews/internal/config"
	"github.com/Malex1718/expressBookReviews/internal/domain"
	"github.com/Malex1718/expressBookReviews/internal/events"
	"github.com/Malex1718/expressBookReviews/internal/repository"
	"github.com/Malex1718/expressBookReviews/internal/session"
	apperrors "github.com/Malex1718/expressBookReviews/pkg/util"
)

// AuthService coordinates registration, login and session lifecycle.
type AuthService struct {
	users      repository.UserRepository
	sessions   session.Store
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo     repository.UserRepository
	SessionStore session.Store
	Dispatcher   events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		sessions:   deps.SessionStore,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		dispatcher: deps.Dispatcher,
	}
}

// Register creates a new account after validating the credentials.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return apperrors.NewInvalidInput("username and password required")
	}
	if !auth.IsValidUsername(username) {
		return apperrors.NewInvalidUsername(username)
	}
	if !auth.IsStrongEnoughPassword(password) {
		return apperrors.NewWeakPassword()
	}

	if err := s.users.Add(domain.User{Username: username, Password: password}); err != nil {
		if err == repository.ErrUserExists {
			return apperrors.NewUserExists(username)
		}
		return apperrors.MapError(err)
	}

	s.publish(ctx, events.EventUserRegistered, username, nil)
	return nil
}

// Login authenticates the pair, mints a one-hour token and binds it to a
// fresh session. The returned session ID goes into the client cookie.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	if username == "" || password == "" {
		return nil, apperrors.NewInvalidInput("username and password required")
	}
	if !s.users.Authenticate(username, password) {
		return nil, apperrors.NewInvalidLogin()
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(username, password)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	sess, err := s.sessions.Create(ctx, username, token, time.Until(expiresAt))
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventUserLoggedIn, username, nil)
	return sess, nil
}

// Logout destroys the session's token binding.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return apperrors.NewNotLoggedIn()
	}
	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// UserExists reports whether the username is registered.
func (s *AuthService) UserExists(username string) bool {
	return s.users.Exists(username)
}

// TokenManager exposes the underlying token manager for the gate middleware.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, username string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:      eventType,
		Username:  username,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
