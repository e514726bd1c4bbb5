package domain

import "time"

// Identity is the authenticated username attached to a request after the
// session gate succeeds. It is threaded explicitly through service calls
// rather than looked up from ambient state.
type Identity struct {
	Username string
}

// Session is the per-client binding between a session ID (carried in a
// cookie) and the access token issued at login.
type Session struct {
	ID        string
	Username  string
	Token     string
	ExpiresAt time.Time
}
