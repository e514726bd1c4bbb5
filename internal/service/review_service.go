package service

import (
	"context"
	"time"

	"github.com/Malex1718/expressBookReviews/internal/domain"
	"github.com/Malex1718/expressBookReviews/internal/events"
	"github.com/Malex1718/expressBookReviews/internal/repository"
	apperrors "github.com/Malex1718/expressBookReviews/pkg/util"
)

// ReviewService performs authenticated create/update/delete of a single
// user's review on a single book.
type ReviewService struct {
	catalog    repository.CatalogRepository
	dispatcher events.Dispatcher
}

// NewReviewService constructs the service.
func NewReviewService(catalog repository.CatalogRepository, dispatcher events.Dispatcher) *ReviewService {
	return &ReviewService{catalog: catalog, dispatcher: dispatcher}
}

// UpsertReview sets identity's review on the book, reporting whether an
// existing entry was overwritten.
func (s *ReviewService) UpsertReview(ctx context.Context, isbn string, identity domain.Identity, text string) (updated bool, err error) {
	if text == "" {
		return false, apperrors.NewMissingReview()
	}

	updated, ok := s.catalog.SetReview(isbn, identity.Username, text)
	if !ok {
		return false, apperrors.NewNotFound("book", map[string]any{"isbn": isbn})
	}

	s.publish(ctx, events.EventReviewUpserted, identity.Username, events.ReviewUpsertedPayload{
		ISBN:    isbn,
		Updated: updated,
		Preview: preview(text),
	})
	return updated, nil
}

// DeleteReview removes exactly identity's entry on the book.
func (s *ReviewService) DeleteReview(ctx context.Context, isbn string, identity domain.Identity) error {
	switch err := s.catalog.DeleteReview(isbn, identity.Username); err {
	case nil:
	case repository.ErrBookNotFound:
		return apperrors.NewNotFound("book", map[string]any{"isbn": isbn})
	case repository.ErrNoReviews:
		return apperrors.NewNoReviewsOnBook(isbn)
	case repository.ErrReviewNotFound:
		return apperrors.NewReviewNotFound(isbn, identity.Username)
	default:
		return apperrors.MapError(err)
	}

	s.publish(ctx, events.EventReviewDeleted, identity.Username, events.ReviewDeletedPayload{ISBN: isbn})
	return nil
}

// ListReviewsByUser collects every book where identity left a review.
// An empty result is not an error here.
func (s *ReviewService) ListReviewsByUser(identity domain.Identity) map[string]domain.UserReview {
	return s.catalog.ReviewsByUser(identity.Username)
}

func (s *ReviewService) publish(ctx context.Context, eventType events.EventType, username string, payload interface{}) {
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

// preview truncates on a rune boundary so multi-byte text stays valid.
func preview(text string) string {
	const max = 80
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
