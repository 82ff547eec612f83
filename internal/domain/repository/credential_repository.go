// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"taskmanager/internal/domain/entity"
	"taskmanager/internal/errors"
)

// ErrCredentialNotFound is returned when no credential matches the identifier.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository is the user-lookup collaborator of the authentication core.
type CredentialRepository interface {
	// FindByUsername returns the credential stored for username or ErrCredentialNotFound.
	FindByUsername(ctx context.Context, username string) (*entity.Credential, error)

	// Create persists a new credential. The hash must already be computed.
	Create(ctx context.Context, credential *entity.Credential) error
}
