package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Malex1718/expressBookReviews/internal/api/dto"
	"github.com/Malex1718/expressBookReviews/internal/service"
	apperrors "github.com/Malex1718/expressBookReviews/pkg/util"
)

// UsersHandler exposes registration and session endpoints.
type UsersHandler struct {
	auth       *service.AuthService
	cookieName string
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService, cookieName string) *UsersHandler {
	return &UsersHandler{auth: authService, cookieName: cookieName}
}

// Register handles POST /register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidInput("invalid payload")
	}

	if err := h.auth.Register(c.UserContext(), req.Username, req.Password); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "User successfully registered. Now you can login",
	})
}

// Login handles POST /login. On success the session ID is set as a cookie
// and the signed token is echoed in the body.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidInput("invalid payload")
	}

	sess, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    sess.ID,
		Expires:  sess.ExpiresAt,
		HTTPOnly: true,
	})

	return c.JSON(dto.AuthResponse{
		Message:   "User successfully logged in",
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt,
	})
}

// Logout handles POST /auth/logout (session-gated).
func (h *UsersHandler) Logout(c *fiber.Ctx) error {
	sessionID := c.Cookies(h.cookieName)
	if err := h.auth.Logout(c.UserContext(), sessionID); err != nil {
		return err
	}

	c.ClearCookie(h.cookieName)
	return c.JSON(fiber.Map{"message": "User logged out successfully"})
}
