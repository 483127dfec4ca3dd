package repository

import (
	"context"

	"tavolo/internal/domain/entity"
	"tavolo/internal/errors"

	"github.com/google/uuid"
)

// ErrRestaurantNotFound is returned when a restaurant is not found.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantSort enumerates the supported directory orderings, each with a
// fixed direction.
type RestaurantSort string

const (
	// SortNewest orders by creation time, newest first. Directory default.
	SortNewest RestaurantSort = "created_at desc"
	// SortPriceAsc orders by lowest price, cheapest first.
	SortPriceAsc RestaurantSort = "lowest_price asc"
	// SortRatingDesc orders by average review score, best first.
	SortRatingDesc RestaurantSort = "rating desc"
	// SortPopularDesc orders by reservation count, busiest first.
	SortPopularDesc RestaurantSort = "popular desc"
)

// IsValid checks if the sort is a supported value.
func (s RestaurantSort) IsValid() bool {
	switch s {
	case SortNewest, SortPriceAsc, SortRatingDesc, SortPopularDesc:
		return true
	default:
		return false
	}
}

// RestaurantQuery describes one directory page request. The three filters are
// mutually exclusive with a fixed precedence: keyword over category over
// price. The query builder applies only the highest-precedence filter set.
type RestaurantQuery struct {
	Keyword    string
	CategoryID *uuid.UUID
	MaxPrice   *int
	Sort       RestaurantSort
	Page       int
}

// RestaurantRepository defines persistence and directory queries for restaurants.
type RestaurantRepository interface {
	// Search runs the composable directory query: at most one filter, one
	// sort, fixed page size.
	Search(ctx context.Context, query RestaurantQuery) (*Page[*entity.Restaurant], error)

	// FindByID retrieves a restaurant with its categories and regular
	// holidays preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// FindNewest returns the most recently listed restaurants, capped at limit.
	FindNewest(ctx context.Context, limit int) ([]*entity.Restaurant, error)

	// Create persists a new restaurant together with its category and
	// regular-holiday associations.
	Create(ctx context.Context, restaurant *entity.Restaurant) error

	// Update modifies a restaurant and replaces its associations.
	Update(ctx context.Context, restaurant *entity.Restaurant) error

	// Delete removes a restaurant permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of restaurants.
	Count(ctx context.Context) (int64, error)
}
