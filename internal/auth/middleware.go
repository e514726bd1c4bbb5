package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Malex1718/expressBookReviews/internal/domain"
	"github.com/Malex1718/expressBookReviews/internal/session"
	apperrors "github.com/Malex1718/expressBookReviews/pkg/util"
)

const identityKey = "auth_identity"

// SessionGate verifies the caller's session-bound token before allowing
// access to protected routes.
type SessionGate struct {
	tokens     *TokenManager
	sessions   session.Store
	cookieName string
}

// NewSessionGate constructs the gate middleware.
func NewSessionGate(tokens *TokenManager, sessions session.Store, cookieName string) *SessionGate {
	return &SessionGate{tokens: tokens, sessions: sessions, cookieName: cookieName}
}

// Handle enforces authentication: the session cookie must resolve to a
// live binding and the bound token must still verify. On success the
// identity embedded in the token is attached to the request.
func (g *SessionGate) Handle(c *fiber.Ctx) error {
	sessionID := c.Cookies(g.cookieName)
	if sessionID == "" {
		return apperrors.NewNotLoggedIn()
	}

	sess, err := g.sessions.Get(c.UserContext(), sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return apperrors.NewNotLoggedIn()
		}
		return apperrors.MapError(err)
	}

	claims, err := g.tokens.ParseToken(sess.Token)
	if err != nil {
		return apperrors.NewTokenInvalid(err)
	}

	c.Locals(identityKey, domain.Identity{Username: claims.Username})
	return c.Next()
}

// IdentityFromContext retrieves the authenticated identity set by Handle.
func IdentityFromContext(c *fiber.Ctx) (domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return domain.Identity{}, false
	}
	identity, ok := val.(domain.Identity)
	return identity, ok
}
