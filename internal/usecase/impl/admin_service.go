package impl

import (
	"context"

	"tavolo/internal/domain/entity"
	domainerrors "tavolo/internal/domain/errors"
	"tavolo/internal/domain/repository"
	"tavolo/internal/domain/service"
	"tavolo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type adminService struct {
	adminRepo       repository.AdministratorRepository
	memberRepo      repository.MemberRepository
	restaurantRepo  repository.RestaurantRepository
	reservationRepo repository.ReservationRepository
	categoryRepo    repository.CategoryRepository
	holidayRepo     repository.RegularHolidayRepository
	companyRepo     repository.CompanyRepository
	termRepo        repository.TermRepository
	txManager       repository.TransactionManager
	hasher          service.PasswordHasher
	tokens          service.TokenService
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	AdminRepo       repository.AdministratorRepository
	MemberRepo      repository.MemberRepository
	RestaurantRepo  repository.RestaurantRepository
	ReservationRepo repository.ReservationRepository
	CategoryRepo    repository.CategoryRepository
	HolidayRepo     repository.RegularHolidayRepository
	CompanyRepo     repository.CompanyRepository
	TermRepo        repository.TermRepository
	TxManager       repository.TransactionManager
	Hasher          service.PasswordHasher
	Tokens          service.TokenService
}

// NewAdminService creates a new admin service instance.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		adminRepo:       params.AdminRepo,
		memberRepo:      params.MemberRepo,
		restaurantRepo:  params.RestaurantRepo,
		reservationRepo: params.ReservationRepo,
		categoryRepo:    params.CategoryRepo,
		holidayRepo:     params.HolidayRepo,
		companyRepo:     params.CompanyRepo,
		termRepo:        params.TermRepo,
		txManager:       params.TxManager,
		hasher:          params.Hasher,
		tokens:          params.Tokens,
	}
}

// Login verifies administrator credentials and returns an admin-scoped token.
func (s *adminService) Login(ctx context.Context, email, password string) (string, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdministratorNotFound) {
			return "", domainerrors.ErrInvalidCredentials
		}

		return "", err
	}

	if !s.hasher.Check(password, admin.PasswordHash) {
		return "", domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(admin.ID, service.ScopeAdmin)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}

	return token, nil
}

// Dashboard returns the back-office landing page counts.
func (s *adminService) Dashboard(ctx context.Context) (*usecase.DashboardCounts, error) {
	members, err := s.memberRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	restaurants, err := s.restaurantRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	reservations, err := s.reservationRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.DashboardCounts{
		Members:      members,
		Restaurants:  restaurants,
		Reservations: reservations,
	}, nil
}

// ListRestaurants pages through restaurants filtered by a keyword on the name.
func (s *adminService) ListRestaurants(ctx context.Context, keyword string, page int) (*repository.Page[*entity.Restaurant], error) {
	return s.restaurantRepo.Search(ctx, repository.RestaurantQuery{
		Keyword: keyword,
		Sort:    repository.SortNewest,
		Page:    page,
	})
}

// GetRestaurant retrieves a restaurant with its associations.
func (s *adminService) GetRestaurant(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("restaurant not found")
		}

		return nil, err
	}

	return restaurant, nil
}

// CreateRestaurant adds a restaurant to the directory. The listing and its
// category and holiday associations are written in one transaction.
func (s *adminService) CreateRestaurant(ctx context.Context, input usecase.RestaurantInput) (*entity.Restaurant, error) {
	restaurant, err := s.buildRestaurant(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewRestaurantRepository().Create(ctx, restaurant)
	}); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// UpdateRestaurant edits a restaurant and replaces its associations in one
// transaction.
func (s *adminService) UpdateRestaurant(ctx context.Context, id uuid.UUID, input usecase.RestaurantInput) (*entity.Restaurant, error) {
	restaurant, err := s.buildRestaurant(ctx, input)
	if err != nil {
		return nil, err
	}
	restaurant.ID = id

	if err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewRestaurantRepository().Update(ctx, restaurant)
	}); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("restaurant not found")
		}

		return nil, err
	}

	return restaurant, nil
}

// DeleteRestaurant removes a restaurant from the directory.
func (s *adminService) DeleteRestaurant(ctx context.Context, id uuid.UUID) error {
	if err := s.restaurantRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("restaurant not found")
		}

		return err
	}

	return nil
}

// buildRestaurant validates the input and resolves its associations.
func (s *adminService) buildRestaurant(ctx context.Context, input usecase.RestaurantInput) (*entity.Restaurant, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if input.LowestPrice <= 0 || input.HighestPrice <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("prices must be positive")
	}
	if input.LowestPrice > input.HighestPrice {
		return nil, domainerrors.ErrValidationFailed.WithDetails("lowest price must not exceed highest price")
	}
	if input.SeatingCapacity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("seating capacity must be positive")
	}

	categories, err := s.categoryRepo.FindByIDs(ctx, input.CategoryIDs)
	if err != nil {
		return nil, err
	}
	if len(categories) != len(input.CategoryIDs) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category")
	}

	holidays, err := s.holidayRepo.FindByIDs(ctx, input.RegularHolidayIDs)
	if err != nil {
		return nil, err
	}
	if len(holidays) != len(input.RegularHolidayIDs) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown regular holiday")
	}

	return &entity.Restaurant{
		Name:            input.Name,
		ImagePath:       input.ImagePath,
		Description:     input.Description,
		LowestPrice:     input.LowestPrice,
		HighestPrice:    input.HighestPrice,
		PostalCode:      input.PostalCode,
		Address:         input.Address,
		OpeningTime:     input.OpeningTime,
		ClosingTime:     input.ClosingTime,
		SeatingCapacity: input.SeatingCapacity,
		Categories:      categories,
		RegularHolidays: holidays,
	}, nil
}

// ListCategories pages through categories filtered by a keyword on the name.
func (s *adminService) ListCategories(ctx context.Context, keyword string, page int) (*repository.Page[*entity.Category], error) {
	return s.categoryRepo.Search(ctx, keyword, page)
}

// CreateCategory adds a category.
func (s *adminService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	category := &entity.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// UpdateCategory renames a category.
func (s *adminService) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*entity.Category, error) {
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	category := &entity.Category{ID: id, Name: name}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("category not found")
		}

		return nil, err
	}

	return category, nil
}

// DeleteCategory removes a category.
func (s *adminService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("category not found")
		}

		return err
	}

	return nil
}

// ListRegularHolidays lists the fixed weekly-holiday rows.
func (s *adminService) ListRegularHolidays(ctx context.Context) ([]*entity.RegularHoliday, error) {
	return s.holidayRepo.FindAll(ctx)
}

// ListMembers pages through members. Read-only by design of the back office.
func (s *adminService) ListMembers(ctx context.Context, keyword string, page int) (*repository.Page[*entity.Member], error) {
	return s.memberRepo.Search(ctx, keyword, page)
}

// GetCompany returns the corporate profile.
func (s *adminService) GetCompany(ctx context.Context) (*entity.Company, error) {
	company, err := s.companyRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("company profile not found")
		}

		return nil, err
	}

	return company, nil
}

// UpdateCompany edits the corporate profile.
func (s *adminService) UpdateCompany(ctx context.Context, input usecase.CompanyInput) (*entity.Company, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	company := &entity.Company{
		Name:           input.Name,
		PostalCode:     input.PostalCode,
		Address:        input.Address,
		Representative: input.Representative,
		EstablishedAt:  input.EstablishedAt,
		Capital:        input.Capital,
		Business:       input.Business,
		EmployeeCount:  input.EmployeeCount,
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

// GetTerms returns the terms of service.
func (s *adminService) GetTerms(ctx context.Context) (*entity.Term, error) {
	term, err := s.termRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrTermNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("terms not found")
		}

		return nil, err
	}

	return term, nil
}

// UpdateTerms replaces the terms of service text.
func (s *adminService) UpdateTerms(ctx context.Context, content string) (*entity.Term, error) {
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("content is required")
	}

	term := &entity.Term{Content: content}
	if err := s.termRepo.Update(ctx, term); err != nil {
		return nil, err
	}

	return term, nil
}
