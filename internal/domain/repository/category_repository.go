package repository

import (
	"context"

	"tavolo/internal/domain/entity"
	"tavolo/internal/errors"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines persistence for restaurant categories.
type CategoryRepository interface {
	// FindAll lists every category ordered by name.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves a category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByIDs retrieves the categories for the given IDs.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Category, error)

	// Search lists categories filtered by a keyword on the name, paginated.
	Search(ctx context.Context, keyword string, page int) (*Page[*entity.Category], error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update modifies an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}

// RegularHolidayRepository defines lookups for the fixed weekly-holiday table.
type RegularHolidayRepository interface {
	// FindAll lists every regular holiday.
	FindAll(ctx context.Context) ([]*entity.RegularHoliday, error)

	// FindByIDs retrieves the regular holidays for the given IDs.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.RegularHoliday, error)
}
