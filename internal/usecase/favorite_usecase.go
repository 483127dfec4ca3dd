package usecase

import (
	"context"

	"tavolo/internal/domain/entity"
	"tavolo/internal/domain/repository"

	"github.com/google/uuid"
)

// FavoriteUsecase lets subscribed members keep a list of restaurants.
type FavoriteUsecase interface {
	// List returns the member's favorited restaurants, most recent first.
	List(ctx context.Context, memberID uuid.UUID, page int) (*repository.Page[*entity.Restaurant], error)

	// Add favorites the restaurant for the member. Favoriting twice is a
	// no-op.
	Add(ctx context.Context, memberID, restaurantID uuid.UUID) error

	// Remove unfavorites the restaurant for the member.
	Remove(ctx context.Context, memberID, restaurantID uuid.UUID) error

	// IsFavorited reports whether the member has favorited the restaurant.
	IsFavorited(ctx context.Context, memberID, restaurantID uuid.UUID) (bool, error)
}
