package postgres

import (
	"context"

	"tavolo/internal/domain/entity"
	"tavolo/internal/domain/repository"
	"tavolo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// companyRepository implements the repository.CompanyRepository interface.
// The companies table holds a single row.
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository is the constructor for companyRepository.
func NewCompanyRepository(db *gorm.DB) repository.CompanyRepository {
	return &companyRepository{
		db: db,
	}
}

// Get retrieves the company record.
func (repo *companyRepository) Get(ctx context.Context) (*entity.Company, error) {
	var companyM model.CompanyModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		First(&companyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to get company")
	}

	return toCompanyDomain(&companyM), nil
}

// Update modifies the company record, creating it on first write.
func (repo *companyRepository) Update(ctx context.Context, company *entity.Company) error {
	var existing model.CompanyModel
	err := repo.db.WithContext(ctx).Order("created_at ASC").First(&existing).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		companyM := fromCompanyDomain(company)
		if err := repo.db.WithContext(ctx).Create(companyM).Error; err != nil {
			return errors.Wrap(err, "failed to create company")
		}
		company.ID = companyM.ID

		return nil
	case err != nil:
		return errors.Wrap(err, "failed to get company")
	}

	company.ID = existing.ID
	if err := repo.db.WithContext(ctx).
		Model(&model.CompanyModel{}).
		Where("id = ?", existing.ID).
		Select("Name", "PostalCode", "Address", "Representative", "EstablishedAt",
			"Capital", "Business", "EmployeeCount").
		Updates(fromCompanyDomain(company)).Error; err != nil {
		return errors.Wrap(err, "failed to update company")
	}

	return nil
}

// termRepository implements the repository.TermRepository interface.
// The terms table holds a single row.
type termRepository struct {
	db *gorm.DB
}

// NewTermRepository is the constructor for termRepository.
func NewTermRepository(db *gorm.DB) repository.TermRepository {
	return &termRepository{
		db: db,
	}
}

// Get retrieves the terms record.
func (repo *termRepository) Get(ctx context.Context) (*entity.Term, error) {
	var termM model.TermModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		First(&termM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTermNotFound
		}

		return nil, errors.Wrap(err, "failed to get terms")
	}

	return toTermDomain(&termM), nil
}

// Update modifies the terms record, creating it on first write.
func (repo *termRepository) Update(ctx context.Context, term *entity.Term) error {
	var existing model.TermModel
	err := repo.db.WithContext(ctx).Order("created_at ASC").First(&existing).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		termM := &model.TermModel{Content: term.Content}
		if err := repo.db.WithContext(ctx).Create(termM).Error; err != nil {
			return errors.Wrap(err, "failed to create terms")
		}
		term.ID = termM.ID

		return nil
	case err != nil:
		return errors.Wrap(err, "failed to get terms")
	}

	term.ID = existing.ID
	if err := repo.db.WithContext(ctx).
		Model(&model.TermModel{}).
		Where("id = ?", existing.ID).
		Update("content", term.Content).Error; err != nil {
		return errors.Wrap(err, "failed to update terms")
	}

	return nil
}

// --- Mapper Functions ---

func toCompanyDomain(data *model.CompanyModel) *entity.Company {
	if data == nil {
		return nil
	}

	return &entity.Company{
		ID:             data.ID,
		Name:           data.Name,
		PostalCode:     data.PostalCode,
		Address:        data.Address,
		Representative: data.Representative,
		EstablishedAt:  data.EstablishedAt,
		Capital:        data.Capital,
		Business:       data.Business,
		EmployeeCount:  data.EmployeeCount,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromCompanyDomain(data *entity.Company) *model.CompanyModel {
	if data == nil {
		return nil
	}

	return &model.CompanyModel{
		ID:             data.ID,
		Name:           data.Name,
		PostalCode:     data.PostalCode,
		Address:        data.Address,
		Representative: data.Representative,
		EstablishedAt:  data.EstablishedAt,
		Capital:        data.Capital,
		Business:       data.Business,
		EmployeeCount:  data.EmployeeCount,
	}
}

func toTermDomain(data *model.TermModel) *entity.Term {
	if data == nil {
		return nil
	}

	return &entity.Term{
		ID:        data.ID,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
