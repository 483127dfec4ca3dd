package impl

import (
	"context"
	"testing"

	"tavolo/internal/domain/entity"
	"tavolo/internal/domain/repository"
	"tavolo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRestaurantService(
	restaurantRepo *mockRestaurantRepository,
	reviewRepo *mockReviewRepository,
	categoryRepo *mockCategoryRepository,
	companyRepo *mockCompanyRepository,
	termRepo *mockTermRepository,
) usecase.RestaurantUsecase {
	return NewRestaurantService(RestaurantServiceParams{
		RestaurantRepo: restaurantRepo,
		ReviewRepo:     reviewRepo,
		CategoryRepo:   categoryRepo,
		CompanyRepo:    companyRepo,
		TermRepo:       termRepo,
	})
}

func TestRestaurantService_Browse_SortMapping(t *testing.T) {
	tests := []struct {
		key  string
		want repository.RestaurantSort
	}{
		{key: "", want: repository.SortNewest},
		{key: "price_asc", want: repository.SortPriceAsc},
		{key: "rating", want: repository.SortRatingDesc},
		{key: "popular", want: repository.SortPopularDesc},
		{key: "garbage", want: repository.SortNewest},
	}

	for _, tt := range tests {
		t.Run("sort "+tt.key, func(t *testing.T) {
			restaurantRepo := new(mockRestaurantRepository)
			svc := newTestRestaurantService(restaurantRepo, new(mockReviewRepository),
				new(mockCategoryRepository), new(mockCompanyRepository), new(mockTermRepository))

			ctx := context.Background()
			empty := &repository.Page[*entity.Restaurant]{Page: 1, PerPage: repository.DefaultPageSize}

			restaurantRepo.On("Search", ctx, mock.MatchedBy(func(q repository.RestaurantQuery) bool {
				return q.Sort == tt.want
			})).Return(empty, nil)

			_, err := svc.Browse(ctx, usecase.DirectoryQuery{Sort: tt.key, Page: 1})
			require.NoError(t, err)
			restaurantRepo.AssertExpectations(t)
		})
	}
}

func TestRestaurantService_Browse_PassesFilters(t *testing.T) {
	restaurantRepo := new(mockRestaurantRepository)
	svc := newTestRestaurantService(restaurantRepo, new(mockReviewRepository),
		new(mockCategoryRepository), new(mockCompanyRepository), new(mockTermRepository))

	ctx := context.Background()
	categoryID := uuid.New()
	maxPrice := 3000
	empty := &repository.Page[*entity.Restaurant]{Page: 1, PerPage: repository.DefaultPageSize}

	restaurantRepo.On("Search", ctx, mock.MatchedBy(func(q repository.RestaurantQuery) bool {
		return q.Keyword == "ramen" &&
			q.CategoryID != nil && *q.CategoryID == categoryID &&
			q.MaxPrice != nil && *q.MaxPrice == maxPrice
	})).Return(empty, nil)

	_, err := svc.Browse(ctx, usecase.DirectoryQuery{
		Keyword:    "ramen",
		CategoryID: &categoryID,
		MaxPrice:   &maxPrice,
		Page:       1,
	})
	require.NoError(t, err)
}

func TestRestaurantService_Get(t *testing.T) {
	restaurantRepo := new(mockRestaurantRepository)
	reviewRepo := new(mockReviewRepository)
	svc := newTestRestaurantService(restaurantRepo, reviewRepo,
		new(mockCategoryRepository), new(mockCompanyRepository), new(mockTermRepository))

	ctx := context.Background()
	restaurantID := uuid.New()

	restaurantRepo.On("FindByID", ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, Name: "Sushi Dokoro"}, nil)
	reviewRepo.On("FindByRestaurant", ctx, restaurantID, 1).
		Return(&repository.Page[*entity.Review]{Page: 1, PerPage: repository.DefaultPageSize}, nil)

	detail, err := svc.Get(ctx, restaurantID)
	require.NoError(t, err)
	assert.Equal(t, "Sushi Dokoro", detail.Restaurant.Name)
	assert.NotNil(t, detail.Reviews)
}

func TestRestaurantService_Get_NotFound(t *testing.T) {
	restaurantRepo := new(mockRestaurantRepository)
	svc := newTestRestaurantService(restaurantRepo, new(mockReviewRepository),
		new(mockCategoryRepository), new(mockCompanyRepository), new(mockTermRepository))

	ctx := context.Background()
	restaurantID := uuid.New()

	restaurantRepo.On("FindByID", ctx, restaurantID).
		Return(nil, repository.ErrRestaurantNotFound)

	_, err := svc.Get(ctx, restaurantID)
	assert.Error(t, err)
}

func TestRestaurantService_Home(t *testing.T) {
	restaurantRepo := new(mockRestaurantRepository)
	categoryRepo := new(mockCategoryRepository)
	svc := newTestRestaurantService(restaurantRepo, new(mockReviewRepository),
		categoryRepo, new(mockCompanyRepository), new(mockTermRepository))

	ctx := context.Background()

	restaurantRepo.On("FindNewest", ctx, homeNewestLimit).
		Return([]*entity.Restaurant{{ID: uuid.New()}}, nil)
	categoryRepo.On("FindAll", ctx).
		Return([]*entity.Category{{ID: uuid.New(), Name: "Sushi"}}, nil)

	home, err := svc.Home(ctx)
	require.NoError(t, err)
	assert.Len(t, home.NewestRestaurants, 1)
	assert.Len(t, home.Categories, 1)
}
