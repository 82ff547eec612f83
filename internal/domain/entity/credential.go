// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential pairs a login identifier with the salted hash of its password.
// The raw password never reaches this type.
type Credential struct {
	ID           uuid.UUID // Surrogate key of the credential record.
	Username     string    // Login identifier; the email address in practice.
	PasswordHash string    // bcrypt hash with the salt and cost embedded.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Claims is the decoded form of a verified access token.
type Claims struct {
	Subject   string    // Identifier the token was issued to.
	IssuedAt  time.Time // Instant of issuance, second precision.
	ExpiresAt time.Time // First instant at which the token is no longer valid.
}

// ValidAt reports whether the claims are still inside their validity window.
// The window is half open: a token is expired exactly at ExpiresAt.
func (c *Claims) ValidAt(now time.Time) bool {
	return now.Before(c.ExpiresAt)
}
