package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"taskmanager/internal/domain/entity"
	domainerrors "taskmanager/internal/domain/errors"
	"taskmanager/internal/domain/repository"
	mockRepo "taskmanager/internal/mocks/repository"
	mockSvc "taskmanager/internal/mocks/service"
	"taskmanager/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCredentialService(t *testing.T) (usecase.CredentialUsecase, *mockRepo.MockCredentialRepository, *mockSvc.MockPasswordHasher) {
	credentials := mockRepo.NewMockCredentialRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewCredentialService(credentials, hasher, logger), credentials, hasher
}

func TestCredentialService_EnsureCredential_Creates(t *testing.T) {
	svc, credentials, hasher := createTestCredentialService(t)
	ctx := context.Background()

	credentials.EXPECT().FindByUsername(ctx, "hexlet@example.com").Return(nil, repository.ErrCredentialNotFound)
	hasher.EXPECT().Hash("admin-password").Return("$2a$10$hash", nil)
	credentials.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Credential) bool {
			return c.Username == "hexlet@example.com" && c.PasswordHash == "$2a$10$hash"
		})).
		Return(nil)

	created, err := svc.EnsureCredential(ctx, &usecase.EnsureCredentialInput{
		Username: "hexlet@example.com",
		Password: "admin-password",
	})
	require.NoError(t, err)
	assert.True(t, created)
}

func TestCredentialService_EnsureCredential_AlreadyExists(t *testing.T) {
	svc, credentials, _ := createTestCredentialService(t)
	ctx := context.Background()

	credentials.EXPECT().FindByUsername(ctx, "hexlet@example.com").Return(&entity.Credential{Username: "hexlet@example.com"}, nil)

	created, err := svc.EnsureCredential(ctx, &usecase.EnsureCredentialInput{Username: "hexlet@example.com", Password: "x"})
	require.NoError(t, err)
	assert.False(t, created)
}

func TestCredentialService_EnsureCredential_LostRace(t *testing.T) {
	svc, credentials, hasher := createTestCredentialService(t)
	ctx := context.Background()

	credentials.EXPECT().FindByUsername(ctx, "hexlet@example.com").Return(nil, repository.ErrCredentialNotFound)
	hasher.EXPECT().Hash("pw").Return("$2a$10$hash", nil)
	credentials.EXPECT().Create(ctx, mock.Anything).
		Return(domainerrors.ErrCredentialAlreadyExists.WrapMessage("username already registered"))

	created, err := svc.EnsureCredential(ctx, &usecase.EnsureCredentialInput{Username: "hexlet@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.False(t, created)
}

func TestCredentialService_EnsureCredential_Errors(t *testing.T) {
	t.Run("blank username", func(t *testing.T) {
		svc, _, _ := createTestCredentialService(t)

		_, err := svc.EnsureCredential(context.Background(), &usecase.EnsureCredentialInput{Username: ""})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredential))
	})

	t.Run("hash rejects password", func(t *testing.T) {
		svc, credentials, hasher := createTestCredentialService(t)
		ctx := context.Background()

		credentials.EXPECT().FindByUsername(ctx, "a@example.com").Return(nil, repository.ErrCredentialNotFound)
		hasher.EXPECT().Hash("").Return("", domainerrors.ErrInvalidCredential.WrapMessage("password is empty"))

		_, err := svc.EnsureCredential(ctx, &usecase.EnsureCredentialInput{Username: "a@example.com"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredential))
	})

	t.Run("lookup fails", func(t *testing.T) {
		svc, credentials, _ := createTestCredentialService(t)
		ctx := context.Background()

		credentials.EXPECT().FindByUsername(ctx, "a@example.com").Return(nil, errors.New("timeout"))

		_, err := svc.EnsureCredential(ctx, &usecase.EnsureCredentialInput{Username: "a@example.com", Password: "pw"})
		assert.ErrorContains(t, err, "timeout")
	})
}
