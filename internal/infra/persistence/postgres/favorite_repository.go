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

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// Add records that the member favorited the restaurant.
func (repo *favoriteRepository) Add(ctx context.Context, memberID, restaurantID uuid.UUID) error {
	favoriteM := &model.FavoriteModel{
		MemberID:     memberID,
		RestaurantID: restaurantID,
	}

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}

		return errors.Wrap(err, "failed to add favorite")
	}

	return nil
}

// Remove deletes the favorite pair.
func (repo *favoriteRepository) Remove(ctx context.Context, memberID, restaurantID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("member_id = ? AND restaurant_id = ?", memberID, restaurantID).
		Delete(&model.FavoriteModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// Exists reports whether the member has favorited the restaurant.
func (repo *favoriteRepository) Exists(ctx context.Context, memberID, restaurantID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("member_id = ? AND restaurant_id = ?", memberID, restaurantID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	return count > 0, nil
}

// FindRestaurantsByMember lists the member's favorited restaurants, most
// recently favorited first.
func (repo *favoriteRepository) FindRestaurantsByMember(ctx context.Context, memberID uuid.UUID, page int) (*repository.Page[*entity.Restaurant], error) {
	page = repository.NormalizePage(page)

	query := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("member_id = ?", memberID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count favorites")
	}

	var favoriteModels []*model.FavoriteModel
	if err := query.
		Preload("Restaurant").
		Preload("Restaurant.Categories").
		Order("created_at DESC").
		Limit(repository.DefaultPageSize).
		Offset((page - 1) * repository.DefaultPageSize).
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by member")
	}

	restaurants := make([]*entity.Restaurant, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		if favoriteM.Restaurant == nil {
			continue
		}
		restaurants = append(restaurants, toRestaurantDomain(favoriteM.Restaurant))
	}

	return &repository.Page[*entity.Restaurant]{
		Items:   restaurants,
		Total:   total,
		Page:    page,
		PerPage: repository.DefaultPageSize,
	}, nil
}
