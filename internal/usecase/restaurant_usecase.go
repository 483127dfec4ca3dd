// Package usecase defines the application-layer interfaces and their
// input/output types. Handlers depend on these interfaces, never on the
// implementations in impl.
package usecase

import (
	"context"

	"tavolo/internal/domain/entity"
	"tavolo/internal/domain/repository"

	"github.com/google/uuid"
)

// DirectoryQuery is one directory page request as it arrives from the
// browsing surface. Filters are mutually exclusive: keyword wins over
// category, category wins over price.
type DirectoryQuery struct {
	Keyword    string
	CategoryID *uuid.UUID
	MaxPrice   *int
	Sort       string
	Page       int
}

// HomePage aggregates the content of the landing page.
type HomePage struct {
	NewestRestaurants []*entity.Restaurant
	Categories        []*entity.Category
}

// RestaurantDetail is a restaurant plus its first page of reviews.
type RestaurantDetail struct {
	Restaurant *entity.Restaurant
	Reviews    *repository.Page[*entity.Review]
}

// RestaurantUsecase defines the public browsing surface of the directory.
// Every operation here is reachable without authentication.
type RestaurantUsecase interface {
	// Browse runs the directory query and returns one page of restaurants.
	Browse(ctx context.Context, query DirectoryQuery) (*repository.Page[*entity.Restaurant], error)

	// Get retrieves a restaurant detail page with its first page of reviews.
	Get(ctx context.Context, id uuid.UUID) (*RestaurantDetail, error)

	// Home returns the landing page content.
	Home(ctx context.Context) (*HomePage, error)

	// Company returns the operator's corporate profile.
	Company(ctx context.Context) (*entity.Company, error)

	// Terms returns the current terms of service.
	Terms(ctx context.Context) (*entity.Term, error)
}
