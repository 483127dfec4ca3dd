package impl

import (
	"context"

	"tavolo/internal/domain/entity"
	domainerrors "tavolo/internal/domain/errors"
	"tavolo/internal/domain/repository"
	"tavolo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type favoriteService struct {
	favoriteRepo   repository.FavoriteRepository
	restaurantRepo repository.RestaurantRepository
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo   repository.FavoriteRepository
	RestaurantRepo repository.RestaurantRepository
}

// NewFavoriteService creates a new favorite service instance.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo:   params.FavoriteRepo,
		restaurantRepo: params.RestaurantRepo,
	}
}

// List returns the member's favorited restaurants, most recent first.
func (s *favoriteService) List(ctx context.Context, memberID uuid.UUID, page int) (*repository.Page[*entity.Restaurant], error) {
	return s.favoriteRepo.FindRestaurantsByMember(ctx, memberID, page)
}

// Add favorites the restaurant for the member. Favoriting an already
// favorited restaurant is a no-op, not an error.
func (s *favoriteService) Add(ctx context.Context, memberID, restaurantID uuid.UUID) error {
	if _, err := s.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("restaurant not found")
		}

		return err
	}

	if err := s.favoriteRepo.Add(ctx, memberID, restaurantID); err != nil {
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			return nil
		}

		return err
	}

	return nil
}

// Remove unfavorites the restaurant for the member.
func (s *favoriteService) Remove(ctx context.Context, memberID, restaurantID uuid.UUID) error {
	if err := s.favoriteRepo.Remove(ctx, memberID, restaurantID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("favorite not found")
		}

		return err
	}

	return nil
}

// IsFavorited reports whether the member has favorited the restaurant.
func (s *favoriteService) IsFavorited(ctx context.Context, memberID, restaurantID uuid.UUID) (bool, error) {
	return s.favoriteRepo.Exists(ctx, memberID, restaurantID)
}
