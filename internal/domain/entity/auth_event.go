package entity

import "time"

// AuthEventType names the outcome carried by an AuthEvent.
type AuthEventType string

const (
	// AuthEventLoginSucceeded is emitted after a token has been issued.
	AuthEventLoginSucceeded AuthEventType = "auth.login.succeeded"
	// AuthEventLoginFailed is emitted when a login attempt is denied.
	AuthEventLoginFailed AuthEventType = "auth.login.failed"
)

// String returns the string representation of the AuthEventType.
func (t AuthEventType) String() string {
	return string(t)
}

// AuthEvent records the outcome of an authentication attempt.
// It never carries a password or a token.
type AuthEvent struct {
	ID         string        `json:"id"`
	RequestID  string        `json:"request_id,omitempty"` // For distributed tracing
	Type       AuthEventType `json:"type"`
	Subject    string        `json:"subject"`
	Reason     string        `json:"reason,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}
