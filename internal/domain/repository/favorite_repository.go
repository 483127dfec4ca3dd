package repository

import (
	"context"

	"tavolo/internal/domain/entity"
	"tavolo/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrFavoriteNotFound is returned when the (member, restaurant) pair is not favorited.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when the pair is already favorited.
	// The pair carries a composite uniqueness constraint at the DB level.
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository persists the many-to-many "favorited by" association
// between members and restaurants.
type FavoriteRepository interface {
	// Add records that the member favorited the restaurant.
	Add(ctx context.Context, memberID, restaurantID uuid.UUID) error

	// Remove deletes the favorite pair.
	Remove(ctx context.Context, memberID, restaurantID uuid.UUID) error

	// Exists reports whether the member has favorited the restaurant.
	Exists(ctx context.Context, memberID, restaurantID uuid.UUID) (bool, error)

	// FindRestaurantsByMember lists the member's favorited restaurants,
	// most recently favorited first. Fixed page size.
	FindRestaurantsByMember(ctx context.Context, memberID uuid.UUID, page int) (*Page[*entity.Restaurant], error)
}
