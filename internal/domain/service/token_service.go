package service

import (
	"time"

	"taskmanager/internal/domain/entity"
)

// TokenService issues and verifies signed access tokens.
// Both operations are pure over their inputs and the signing secret.
type TokenService interface {
	// IssueToken signs a token for subject that is valid from now for Lifetime.
	IssueToken(subject string, now time.Time) (string, error)

	// VerifyToken checks structure, then signature, then expiry, in that order.
	// Failures are ErrMalformedToken, ErrInvalidSignature or ErrTokenExpired.
	VerifyToken(token string, now time.Time) (*entity.Claims, error)

	// Lifetime returns the validity window applied to issued tokens.
	Lifetime() time.Duration
}
