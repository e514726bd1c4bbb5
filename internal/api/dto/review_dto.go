package dto

import "github.com/Malex1718/expressBookReviews/internal/domain"

// ReviewMutationResponse reports the outcome of an upsert or delete.
type ReviewMutationResponse struct {
	Message string `json:"message"`
	Review  string `json:"review,omitempty"`
}

// UserReviewsResponse lists everything one user has reviewed.
type UserReviewsResponse struct {
	Username string                       `json:"username"`
	Reviews  map[string]domain.UserReview `json:"reviews"`
}
