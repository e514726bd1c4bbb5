package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Malex1718/expressBookReviews/internal/api/dto"
	"github.com/Malex1718/expressBookReviews/internal/auth"
	"github.com/Malex1718/expressBookReviews/internal/service"
	apperrors "github.com/Malex1718/expressBookReviews/pkg/util"
)

// ReviewsHandler exposes the session-gated review mutation endpoints.
type ReviewsHandler struct {
	reviews *service.ReviewService
}

// NewReviewsHandler constructs handler.
func NewReviewsHandler(reviewService *service.ReviewService) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviewService}
}

// Upsert handles PUT /auth/review/:isbn?review=<text>. The review text
// arrives as a query parameter.
func (h *ReviewsHandler) Upsert(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewNotLoggedIn()
	}

	isbn := c.Params("isbn")
	text := c.Query("review")

	updated, err := h.reviews.UpsertReview(c.UserContext(), isbn, identity, text)
	if err != nil {
		return err
	}

	verb := "added"
	if updated {
		verb = "updated"
	}
	return c.JSON(dto.ReviewMutationResponse{
		Message: fmt.Sprintf("Review for book with ISBN %s %s successfully by user %s", isbn, verb, identity.Username),
		Review:  text,
	})
}

// Delete handles DELETE /auth/review/:isbn.
func (h *ReviewsHandler) Delete(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewNotLoggedIn()
	}

	isbn := c.Params("isbn")
	if err := h.reviews.DeleteReview(c.UserContext(), isbn, identity); err != nil {
		return err
	}

	return c.JSON(dto.ReviewMutationResponse{
		Message: fmt.Sprintf("Review for ISBN %s posted by user %s deleted successfully", isbn, identity.Username),
	})
}

// ListMine handles GET /auth/reviews. No reviews at all is reported as
// not found, matching the route's historical behavior.
func (h *ReviewsHandler) ListMine(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewNotLoggedIn()
	}

	reviews := h.reviews.ListReviewsByUser(identity)
	if len(reviews) == 0 {
		return apperrors.NewNotFound("reviews for user", map[string]any{"username": identity.Username})
	}

	return c.JSON(dto.UserReviewsResponse{
		Username: identity.Username,
		Reviews:  reviews,
	})
}
