package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "taskmanager/internal/delivery/context"
	"taskmanager/internal/domain/entity"
	domainerrors "taskmanager/internal/domain/errors"
	"taskmanager/internal/domain/repository"
	"taskmanager/internal/domain/service"
	"taskmanager/internal/errors"
	"taskmanager/internal/usecase"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	credentials repository.CredentialRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(
	credentials repository.CredentialRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.CredentialUsecase {
	return &credentialService{
		credentials: credentials,
		hasher:      hasher,
		logger:      logger,
	}
}

// EnsureCredential hashes and stores the credential unless the username already exists.
// Existing credentials are left untouched, their password is never overwritten.
func (srv *credentialService) EnsureCredential(ctx context.Context, input *usecase.EnsureCredentialInput) (bool, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if input == nil || strings.TrimSpace(input.Username) == "" {
		return false, domainerrors.ErrInvalidCredential.WrapMessage("username is required")
	}

	_, err := srv.credentials.FindByUsername(ctx, input.Username)
	if err == nil {
		logger.Debug("Credential already present", slog.String("username", input.Username))

		return false, nil
	}
	if !errors.Is(err, repository.ErrCredentialNotFound) {
		return false, errors.Wrap(err, "failed to look up credential")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return false, errors.Wrap(err, "failed to hash password")
	}

	credential := &entity.Credential{
		Username:     input.Username,
		PasswordHash: hash,
	}
	if err := srv.credentials.Create(ctx, credential); err != nil {
		// Lost a race with another instance seeding the same account.
		if errors.Is(err, domainerrors.ErrCredentialAlreadyExists) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to create credential")
	}

	logger.Info("Credential created", slog.String("username", credential.Username))

	return true, nil
}
