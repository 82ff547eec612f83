package postgres

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"taskmanager/internal/domain/entity"
	domainerrors "taskmanager/internal/domain/errors"
	"taskmanager/internal/domain/repository"
	"taskmanager/internal/errors"
	"taskmanager/internal/infra/persistence/model"
)

// credentialRepository implements repository.CredentialRepository on GORM.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// FindByUsername reads from the primary so a credential created moments ago
// is visible to the login that follows it.
func (repo *credentialRepository) FindByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	var row model.CredentialModel

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("username = ?", username).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find credential")
	}

	return toCredentialDomain(&row), nil
}

// Create persists a new credential record and fills in generated values.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	if strings.TrimSpace(credential.Username) == "" || credential.PasswordHash == "" {
		return domainerrors.ErrInvalidCredential.WrapMessage("username and password hash are required")
	}

	row := fromCredentialDomain(credential)
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCredentialAlreadyExists.WrapMessage("username already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidCredential.WrapMessage("missing required credential information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.ID = row.ID
	credential.CreatedAt = row.CreatedAt
	credential.UpdatedAt = row.UpdatedAt

	return nil
}

func toCredentialDomain(row *model.CredentialModel) *entity.Credential {
	return &entity.Credential{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func fromCredentialDomain(credential *entity.Credential) *model.CredentialModel {
	return &model.CredentialModel{
		ID:           credential.ID,
		Username:     credential.Username,
		PasswordHash: credential.PasswordHash,
		CreatedAt:    credential.CreatedAt,
		UpdatedAt:    credential.UpdatedAt,
	}
}
