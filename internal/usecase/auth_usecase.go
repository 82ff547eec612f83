// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"taskmanager/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// EnsureCredentialInput describes a credential that must exist.
type EnsureCredentialInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the signed token after a successful login.
type LoginOutput struct {
	Token     string
	TokenType string
	Subject   string
	ExpiresAt time.Time
}

// AuthUsecase is the inbound authentication contract used by the delivery layer.
type AuthUsecase interface {
	// Login exchanges a username and password for a signed token.
	// An unknown username and a wrong password fail identically.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Authenticate verifies a bearer token and confirms its subject still exists.
	Authenticate(ctx context.Context, token string) (*entity.Claims, error)
}

// CredentialUsecase manages stored credentials.
type CredentialUsecase interface {
	// EnsureCredential creates the credential when the username is not yet taken.
	// It reports whether a record was created.
	EnsureCredential(ctx context.Context, input *EnsureCredentialInput) (bool, error)
}
