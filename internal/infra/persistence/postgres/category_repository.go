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

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// FindAll lists every category ordered by name.
func (repo *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find categories")
	}

	return toCategoryDomains(categoryModels), nil
}

// FindByID retrieves a category by its unique ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return toCategoryDomain(&categoryM), nil
}

// FindByIDs retrieves the categories for the given IDs.
func (repo *categoryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Category, error) {
	if len(ids) == 0 {
		return []*entity.Category{}, nil
	}

	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find categories by IDs")
	}

	return toCategoryDomains(categoryModels), nil
}

// Search lists categories filtered by a keyword on the name, paginated.
func (repo *categoryRepository) Search(ctx context.Context, keyword string, page int) (*repository.Page[*entity.Category], error) {
	page = repository.NormalizePage(page)

	query := repo.db.WithContext(ctx).Model(&model.CategoryModel{})
	if keyword != "" {
		query = query.Where("name LIKE ?", "%"+keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count categories")
	}

	var categoryModels []*model.CategoryModel
	if err := query.
		Order("created_at DESC").
		Limit(repository.DefaultPageSize).
		Offset((page - 1) * repository.DefaultPageSize).
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search categories")
	}

	return &repository.Page[*entity.Category]{
		Items:   toCategoryDomains(categoryModels),
		Total:   total,
		Page:    page,
		PerPage: repository.DefaultPageSize,
	}, nil
}

// Create persists a new category.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		return errors.Wrap(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// Update modifies an existing category.
func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Update("name", category.Name)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update category")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// Delete removes a category permanently.
func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CategoryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete category")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// regularHolidayRepository implements the repository.RegularHolidayRepository interface.
type regularHolidayRepository struct {
	db *gorm.DB
}

// NewRegularHolidayRepository is the constructor for regularHolidayRepository.
func NewRegularHolidayRepository(db *gorm.DB) repository.RegularHolidayRepository {
	return &regularHolidayRepository{
		db: db,
	}
}

// FindAll lists every regular holiday.
func (repo *regularHolidayRepository) FindAll(ctx context.Context) ([]*entity.RegularHoliday, error) {
	var holidayModels []*model.RegularHolidayModel

	if err := repo.db.WithContext(ctx).
		Order("day_index ASC").
		Find(&holidayModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find regular holidays")
	}

	holidays := make([]*entity.RegularHoliday, 0, len(holidayModels))
	for _, holidayM := range holidayModels {
		holidays = append(holidays, toRegularHolidayDomain(holidayM))
	}

	return holidays, nil
}

// FindByIDs retrieves the regular holidays for the given IDs.
func (repo *regularHolidayRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.RegularHoliday, error) {
	if len(ids) == 0 {
		return []*entity.RegularHoliday{}, nil
	}

	var holidayModels []*model.RegularHolidayModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&holidayModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find regular holidays by IDs")
	}

	holidays := make([]*entity.RegularHoliday, 0, len(holidayModels))
	for _, holidayM := range holidayModels {
		holidays = append(holidays, toRegularHolidayDomain(holidayM))
	}

	return holidays, nil
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toCategoryDomains(data []*model.CategoryModel) []*entity.Category {
	categories := make([]*entity.Category, 0, len(data))
	for _, categoryM := range data {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toRegularHolidayDomain(data *model.RegularHolidayModel) *entity.RegularHoliday {
	if data == nil {
		return nil
	}

	return &entity.RegularHoliday{
		ID:        data.ID,
		Day:       data.Day,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
