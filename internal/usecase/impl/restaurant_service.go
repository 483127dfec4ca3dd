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

// homeNewestLimit caps the landing page's newest-restaurants strip.
const homeNewestLimit = 6

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	reviewRepo     repository.ReviewRepository
	categoryRepo   repository.CategoryRepository
	companyRepo    repository.CompanyRepository
	termRepo       repository.TermRepository
}

// RestaurantServiceParams holds dependencies for RestaurantService, injected by Fx.
type RestaurantServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
	ReviewRepo     repository.ReviewRepository
	CategoryRepo   repository.CategoryRepository
	CompanyRepo    repository.CompanyRepository
	TermRepo       repository.TermRepository
}

// NewRestaurantService creates a new restaurant service instance.
func NewRestaurantService(params RestaurantServiceParams) usecase.RestaurantUsecase {
	return &restaurantService{
		restaurantRepo: params.RestaurantRepo,
		reviewRepo:     params.ReviewRepo,
		categoryRepo:   params.CategoryRepo,
		companyRepo:    params.CompanyRepo,
		termRepo:       params.TermRepo,
	}
}

// Browse runs the directory query and returns one page of restaurants.
func (s *restaurantService) Browse(ctx context.Context, query usecase.DirectoryQuery) (*repository.Page[*entity.Restaurant], error) {
	repoQuery := repository.RestaurantQuery{
		Keyword:    query.Keyword,
		CategoryID: query.CategoryID,
		MaxPrice:   query.MaxPrice,
		Sort:       directorySort(query.Sort),
		Page:       query.Page,
	}

	return s.restaurantRepo.Search(ctx, repoQuery)
}

// directorySort maps the browsing surface's sort keys onto repository sorts.
// Unknown keys fall back to the newest-first default.
func directorySort(key string) repository.RestaurantSort {
	switch key {
	case "price_asc":
		return repository.SortPriceAsc
	case "rating":
		return repository.SortRatingDesc
	case "popular":
		return repository.SortPopularDesc
	default:
		return repository.SortNewest
	}
}

// Get retrieves a restaurant detail page with its first page of reviews.
func (s *restaurantService) Get(ctx context.Context, id uuid.UUID) (*usecase.RestaurantDetail, error) {
	restaurant, err := s.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("restaurant not found")
		}

		return nil, err
	}

	reviews, err := s.reviewRepo.FindByRestaurant(ctx, id, 1)
	if err != nil {
		return nil, err
	}

	return &usecase.RestaurantDetail{
		Restaurant: restaurant,
		Reviews:    reviews,
	}, nil
}

// Home returns the landing page content.
func (s *restaurantService) Home(ctx context.Context) (*usecase.HomePage, error) {
	newest, err := s.restaurantRepo.FindNewest(ctx, homeNewestLimit)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.HomePage{
		NewestRestaurants: newest,
		Categories:        categories,
	}, nil
}

// Company returns the operator's corporate profile.
func (s *restaurantService) Company(ctx context.Context) (*entity.Company, error) {
	company, err := s.companyRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("company profile not found")
		}

		return nil, err
	}

	return company, nil
}

// Terms returns the current terms of service.
func (s *restaurantService) Terms(ctx context.Context) (*entity.Term, error) {
	term, err := s.termRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrTermNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("terms not found")
		}

		return nil, err
	}

	return term, nil
}
