package postgres

import (
	"context"

	"tavolo/internal/domain/entity"
	"tavolo/internal/domain/repository"
	"tavolo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// administratorRepository implements the repository.AdministratorRepository interface.
type administratorRepository struct {
	db *gorm.DB
}

// NewAdministratorRepository is the constructor for administratorRepository.
func NewAdministratorRepository(db *gorm.DB) repository.AdministratorRepository {
	return &administratorRepository{
		db: db,
	}
}

// FindByID retrieves a single administrator by their unique ID.
func (repo *administratorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Administrator, error) {
	var adminM model.AdministratorModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdministratorNotFound
		}

		return nil, errors.Wrap(err, "failed to find administrator by ID")
	}

	return toAdministratorDomain(&adminM), nil
}

// FindByEmail retrieves a single administrator by their email address.
func (repo *administratorRepository) FindByEmail(ctx context.Context, email string) (*entity.Administrator, error) {
	var adminM model.AdministratorModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdministratorNotFound
		}

		return nil, errors.Wrap(err, "failed to find administrator by email")
	}

	return toAdministratorDomain(&adminM), nil
}

// Create persists a new administrator.
func (repo *administratorRepository) Create(ctx context.Context, admin *entity.Administrator) error {
	adminM := fromAdministratorDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		return errors.Wrap(err, "failed to create administrator")
	}

	admin.ID = adminM.ID
	admin.CreatedAt = adminM.CreatedAt
	admin.UpdatedAt = adminM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toAdministratorDomain(data *model.AdministratorModel) *entity.Administrator {
	if data == nil {
		return nil
	}

	return &entity.Administrator{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAdministratorDomain(data *entity.Administrator) *model.AdministratorModel {
	if data == nil {
		return nil
	}

	return &model.AdministratorModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
