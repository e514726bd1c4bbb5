package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventUserLoggedIn   EventType = "user_logged_in"
	EventReviewUpserted EventType = "review_upserted"
	EventReviewDeleted  EventType = "review_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	Type      EventType   `json:"type"`
	Username  string      `json:"username"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ReviewUpsertedPayload payload.
type ReviewUpsertedPayload struct {
	ISBN    string `json:"isbn"`
	Updated bool   `json:"updated"`
	Preview string `json:"preview"`
}

// ReviewDeletedPayload payload.
type ReviewDeletedPayload struct {
	ISBN string `json:"isbn"`
}
