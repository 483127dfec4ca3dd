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

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{
		db: db,
	}
}

// Search runs the directory query. The filters are mutually exclusive with a
// fixed precedence (keyword, then category, then price); only the
// highest-precedence filter present is applied.
func (repo *restaurantRepository) Search(ctx context.Context, query repository.RestaurantQuery) (*repository.Page[*entity.Restaurant], error) {
	page := repository.NormalizePage(query.Page)
	sort := query.Sort
	if !sort.IsValid() {
		sort = repository.SortNewest
	}

	base := repo.db.WithContext(ctx).Model(&model.RestaurantModel{})
	base = applyDirectoryFilter(base, query)

	var total int64
	if err := base.Session(&gorm.Session{}).
		Distinct("restaurants.id").
		Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count restaurants")
	}

	base = applyDirectorySort(base, sort)

	var restaurantModels []*model.RestaurantModel
	if err := base.
		Preload("Categories").
		Limit(repository.DefaultPageSize).
		Offset((page - 1) * repository.DefaultPageSize).
		Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return &repository.Page[*entity.Restaurant]{
		Items:   restaurants,
		Total:   total,
		Page:    page,
		PerPage: repository.DefaultPageSize,
	}, nil
}

func applyDirectoryFilter(query *gorm.DB, q repository.RestaurantQuery) *gorm.DB {
	switch {
	case q.Keyword != "":
		pattern := "%" + q.Keyword + "%"

		return query.
			Joins("LEFT JOIN category_restaurant ON category_restaurant.restaurant_model_id = restaurants.id").
			Joins("LEFT JOIN categories ON categories.id = category_restaurant.category_model_id").
			Where("restaurants.name LIKE ? OR restaurants.address LIKE ? OR categories.name LIKE ?",
				pattern, pattern, pattern).
			Group("restaurants.id")
	case q.CategoryID != nil:
		return query.
			Joins("JOIN category_restaurant ON category_restaurant.restaurant_model_id = restaurants.id").
			Where("category_restaurant.category_model_id = ?", *q.CategoryID)
	case q.MaxPrice != nil:
		return query.Where("restaurants.lowest_price <= ?", *q.MaxPrice)
	default:
		return query
	}
}

func applyDirectorySort(query *gorm.DB, sort repository.RestaurantSort) *gorm.DB {
	switch sort {
	case repository.SortPriceAsc:
		return query.Order("restaurants.lowest_price ASC")
	case repository.SortRatingDesc:
		// Restaurants with no reviews sort last.
		return query.Order(
			"(SELECT COALESCE(AVG(reviews.score), 0) FROM reviews WHERE reviews.restaurant_id = restaurants.id) DESC")
	case repository.SortPopularDesc:
		return query.Order(
			"(SELECT COUNT(*) FROM reservations WHERE reservations.restaurant_id = restaurants.id) DESC")
	default:
		return query.Order("restaurants.created_at DESC")
	}
}

// FindByID retrieves a restaurant with its categories and regular holidays preloaded.
func (repo *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Preload("Categories").
		Preload("RegularHolidays").
		Where("id = ?", id).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by ID")
	}

	restaurant := toRestaurantDomain(&restaurantM)

	// Aggregates for the detail page.
	var avg struct{ Avg float64 }
	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(score), 0) AS avg").
		Where("restaurant_id = ?", id).
		Scan(&avg).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute average score")
	}
	restaurant.AverageScore = avg.Avg

	return restaurant, nil
}

// FindNewest returns the most recently listed restaurants, capped at limit.
func (repo *restaurantRepository) FindNewest(ctx context.Context, limit int) ([]*entity.Restaurant, error) {
	var restaurantModels []*model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find newest restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

// Create persists a new restaurant together with its associations.
func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Create(restaurantM).Error; err != nil {
		return errors.Wrap(err, "failed to create restaurant")
	}

	restaurant.ID = restaurantM.ID
	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

// Update modifies a restaurant and replaces its associations.
func (repo *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	db := repo.db.WithContext(ctx)

	result := db.Model(&model.RestaurantModel{}).
		Where("id = ?", restaurant.ID).
		Select("Name", "ImagePath", "Description", "LowestPrice", "HighestPrice",
			"PostalCode", "Address", "OpeningTime", "ClosingTime", "SeatingCapacity").
		Updates(restaurantM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update restaurant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	target := &model.RestaurantModel{ID: restaurant.ID}
	if err := db.Model(target).Association("Categories").Replace(restaurantM.Categories); err != nil {
		return errors.Wrap(err, "failed to replace restaurant categories")
	}
	if err := db.Model(target).Association("RegularHolidays").Replace(restaurantM.RegularHolidays); err != nil {
		return errors.Wrap(err, "failed to replace restaurant regular holidays")
	}

	return nil
}

// Delete removes a restaurant permanently.
func (repo *restaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RestaurantModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete restaurant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

// Count returns the total number of restaurants.
func (repo *restaurantRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count restaurants")
	}

	return total, nil
}

// --- Mapper Functions ---

// toRestaurantDomain converts a GORM RestaurantModel to a domain Restaurant entity.
func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	categories := make([]*entity.Category, 0, len(data.Categories))
	for _, categoryM := range data.Categories {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	holidays := make([]*entity.RegularHoliday, 0, len(data.RegularHolidays))
	for _, holidayM := range data.RegularHolidays {
		holidays = append(holidays, toRegularHolidayDomain(holidayM))
	}

	return &entity.Restaurant{
		ID:              data.ID,
		Name:            data.Name,
		ImagePath:       data.ImagePath,
		Description:     data.Description,
		LowestPrice:     data.LowestPrice,
		HighestPrice:    data.HighestPrice,
		PostalCode:      data.PostalCode,
		Address:         data.Address,
		OpeningTime:     data.OpeningTime,
		ClosingTime:     data.ClosingTime,
		SeatingCapacity: data.SeatingCapacity,
		Categories:      categories,
		RegularHolidays: holidays,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromRestaurantDomain converts a domain Restaurant entity to a GORM RestaurantModel.
func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	if data == nil {
		return nil
	}

	categories := make([]*model.CategoryModel, 0, len(data.Categories))
	for _, category := range data.Categories {
		categories = append(categories, &model.CategoryModel{ID: category.ID})
	}

	holidays := make([]*model.RegularHolidayModel, 0, len(data.RegularHolidays))
	for _, holiday := range data.RegularHolidays {
		holidays = append(holidays, &model.RegularHolidayModel{ID: holiday.ID})
	}

	return &model.RestaurantModel{
		ID:              data.ID,
		Name:            data.Name,
		ImagePath:       data.ImagePath,
		Description:     data.Description,
		LowestPrice:     data.LowestPrice,
		HighestPrice:    data.HighestPrice,
		PostalCode:      data.PostalCode,
		Address:         data.Address,
		OpeningTime:     data.OpeningTime,
		ClosingTime:     data.ClosingTime,
		SeatingCapacity: data.SeatingCapacity,
		Categories:      categories,
		RegularHolidays: holidays,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
