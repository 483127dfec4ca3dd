package usecase

import (
	"context"

	"tavolo/internal/domain/entity"
	"tavolo/internal/domain/repository"

	"github.com/google/uuid"
)

// DashboardCounts summarizes the back-office landing page.
type DashboardCounts struct {
	Members      int64
	Restaurants  int64
	Reservations int64
}

// RestaurantInput carries an admin restaurant create or edit request.
type RestaurantInput struct {
	Name              string
	ImagePath         string
	Description       string
	LowestPrice       int
	HighestPrice      int
	PostalCode        string
	Address           string
	OpeningTime       string
	ClosingTime       string
	SeatingCapacity   int
	CategoryIDs       []uuid.UUID
	RegularHolidayIDs []uuid.UUID
}

// CompanyInput carries an admin edit of the corporate profile.
type CompanyInput struct {
	Name           string
	PostalCode     string
	Address        string
	Representative string
	EstablishedAt  string
	Capital        string
	Business       string
	EmployeeCount  string
}

// AdminUsecase defines the back-office surface. Every operation assumes the
// admin route guard has already admitted an administrator principal.
type AdminUsecase interface {
	// Login verifies administrator credentials and returns a session token.
	// The token is scoped to the admin surface only.
	Login(ctx context.Context, email, password string) (string, error)

	// Dashboard returns the back-office landing page counts.
	Dashboard(ctx context.Context) (*DashboardCounts, error)

	// ListRestaurants pages through restaurants, optionally filtered by a
	// keyword on the name.
	ListRestaurants(ctx context.Context, keyword string, page int) (*repository.Page[*entity.Restaurant], error)

	// GetRestaurant retrieves a restaurant with its associations.
	GetRestaurant(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// CreateRestaurant adds a restaurant to the directory.
	CreateRestaurant(ctx context.Context, input RestaurantInput) (*entity.Restaurant, error)

	// UpdateRestaurant edits a restaurant and its associations.
	UpdateRestaurant(ctx context.Context, id uuid.UUID, input RestaurantInput) (*entity.Restaurant, error)

	// DeleteRestaurant removes a restaurant from the directory.
	DeleteRestaurant(ctx context.Context, id uuid.UUID) error

	// ListCategories pages through categories, optionally filtered by a
	// keyword on the name.
	ListCategories(ctx context.Context, keyword string, page int) (*repository.Page[*entity.Category], error)

	// CreateCategory adds a category.
	CreateCategory(ctx context.Context, name string) (*entity.Category, error)

	// UpdateCategory renames a category.
	UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*entity.Category, error)

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	// ListRegularHolidays lists the fixed weekly-holiday rows.
	ListRegularHolidays(ctx context.Context) ([]*entity.RegularHoliday, error)

	// ListMembers pages through members, optionally filtered by a keyword
	// on name or kana. Read-only: the back office never mutates members.
	ListMembers(ctx context.Context, keyword string, page int) (*repository.Page[*entity.Member], error)

	// GetCompany returns the corporate profile.
	GetCompany(ctx context.Context) (*entity.Company, error)

	// UpdateCompany edits the corporate profile.
	UpdateCompany(ctx context.Context, input CompanyInput) (*entity.Company, error)

	// GetTerms returns the terms of service.
	GetTerms(ctx context.Context) (*entity.Term, error)

	// UpdateTerms replaces the terms of service text.
	UpdateTerms(ctx context.Context, content string) (*entity.Term, error)
}
