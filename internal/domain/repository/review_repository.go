package repository

import (
	"context"

	"tavolo/internal/domain/entity"
	"tavolo/internal/errors"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines persistence for restaurant reviews.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByRestaurant lists a restaurant's reviews newest first, with the
	// authoring member preloaded. Fixed page size.
	FindByRestaurant(ctx context.Context, restaurantID uuid.UUID, page int) (*Page[*entity.Review], error)

	// Update modifies an existing review.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
