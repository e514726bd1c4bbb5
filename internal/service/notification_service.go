package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Malex1718/expressBookReviews/internal/events"
)

// NotificationService logs domain events as they happen. It stands in for
// whatever downstream consumer would care about review activity.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserEvent)
	n.dispatcher.Subscribe(events.EventUserLoggedIn, n.handleUserEvent)
	n.dispatcher.Subscribe(events.EventReviewUpserted, n.handleReviewEvent)
	n.dispatcher.Subscribe(events.EventReviewDeleted, n.handleReviewEvent)
}

func (n *NotificationService) handleUserEvent(_ context.Context, event events.Event) error {
	n.logger.Info("user event",
		zap.String("event_type", string(event.Type)),
		zap.String("username", event.Username))
	return nil
}

func (n *NotificationService) handleReviewEvent(_ context.Context, event events.Event) error {
	n.logger.Info("review event",
		zap.String("event_type", string(event.Type)),
		zap.String("username", event.Username),
		zap.Any("payload", event.Payload))
	return nil
}
