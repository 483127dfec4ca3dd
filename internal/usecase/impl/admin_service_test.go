package impl

import (
	"context"
	"testing"

	"tavolo/internal/domain/entity"
	domainerrors "tavolo/internal/domain/errors"
	"tavolo/internal/domain/repository"
	"tavolo/internal/domain/service"
	"tavolo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceMocks struct {
	adminRepo       *mockAdministratorRepository
	memberRepo      *mockMemberRepository
	restaurantRepo  *mockRestaurantRepository
	reservationRepo *mockReservationRepository
	categoryRepo    *mockCategoryRepository
	holidayRepo     *mockRegularHolidayRepository
	companyRepo     *mockCompanyRepository
	termRepo        *mockTermRepository
	hasher          *mockPasswordHasher
	tokens          *mockTokenService
}

func newTestAdminService(t *testing.T) (usecase.AdminUsecase, *adminServiceMocks) {
	t.Helper()

	m := &adminServiceMocks{
		adminRepo:       new(mockAdministratorRepository),
		memberRepo:      new(mockMemberRepository),
		restaurantRepo:  new(mockRestaurantRepository),
		reservationRepo: new(mockReservationRepository),
		categoryRepo:    new(mockCategoryRepository),
		holidayRepo:     new(mockRegularHolidayRepository),
		companyRepo:     new(mockCompanyRepository),
		termRepo:        new(mockTermRepository),
		hasher:          new(mockPasswordHasher),
		tokens:          new(mockTokenService),
	}

	txManager := &stubTransactionManager{factory: &stubRepositoryFactory{
		memberRepo:      m.memberRepo,
		restaurantRepo:  m.restaurantRepo,
		reservationRepo: m.reservationRepo,
	}}

	svc := NewAdminService(AdminServiceParams{
		AdminRepo:       m.adminRepo,
		MemberRepo:      m.memberRepo,
		RestaurantRepo:  m.restaurantRepo,
		ReservationRepo: m.reservationRepo,
		CategoryRepo:    m.categoryRepo,
		HolidayRepo:     m.holidayRepo,
		CompanyRepo:     m.companyRepo,
		TermRepo:        m.termRepo,
		TxManager:       txManager,
		Hasher:          m.hasher,
		Tokens:          m.tokens,
	})

	return svc, m
}

func TestAdminService_Login(t *testing.T) {
	svc, m := newTestAdminService(t)

	ctx := context.Background()
	adminID := uuid.New()

	m.adminRepo.On("FindByEmail", ctx, "admin@example.com").
		Return(&entity.Administrator{ID: adminID, PasswordHash: "hashed"}, nil)
	m.hasher.On("Check", "secret1234", "hashed").Return(true)
	m.tokens.On("Generate", adminID, service.ScopeAdmin).Return("admin-token", nil)

	token, err := svc.Login(ctx, "admin@example.com", "secret1234")
	require.NoError(t, err)
	assert.Equal(t, "admin-token", token)
}

func TestAdminService_Login_MemberCredentialsRejected(t *testing.T) {
	svc, m := newTestAdminService(t)

	ctx := context.Background()

	// The admin store has no such account, so a valid member credential
	// pair is still invalid here.
	m.adminRepo.On("FindByEmail", ctx, "taro@example.com").
		Return(nil, repository.ErrAdministratorNotFound)

	_, err := svc.Login(ctx, "taro@example.com", "StrongPass123!")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAdminService_Dashboard(t *testing.T) {
	svc, m := newTestAdminService(t)

	ctx := context.Background()

	m.memberRepo.On("Count", ctx).Return(int64(12), nil)
	m.restaurantRepo.On("Count", ctx).Return(int64(34), nil)
	m.reservationRepo.On("Count", ctx).Return(int64(56), nil)

	counts, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), counts.Members)
	assert.Equal(t, int64(34), counts.Restaurants)
	assert.Equal(t, int64(56), counts.Reservations)
}

func validRestaurantInput(categoryID, holidayID uuid.UUID) usecase.RestaurantInput {
	return usecase.RestaurantInput{
		Name:              "Teshigoto Soba",
		Description:       "handmade soba",
		LowestPrice:       1000,
		HighestPrice:      3000,
		PostalCode:        "4600000",
		Address:           "Nagoya",
		OpeningTime:       "11:00",
		ClosingTime:       "21:00",
		SeatingCapacity:   30,
		CategoryIDs:       []uuid.UUID{categoryID},
		RegularHolidayIDs: []uuid.UUID{holidayID},
	}
}

func TestAdminService_CreateRestaurant(t *testing.T) {
	svc, m := newTestAdminService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	holidayID := uuid.New()
	input := validRestaurantInput(categoryID, holidayID)

	m.categoryRepo.On("FindByIDs", ctx, input.CategoryIDs).
		Return([]*entity.Category{{ID: categoryID}}, nil)
	m.holidayRepo.On("FindByIDs", ctx, input.RegularHolidayIDs).
		Return([]*entity.RegularHoliday{{ID: holidayID}}, nil)
	m.restaurantRepo.On("Create", ctx, mock.MatchedBy(func(r *entity.Restaurant) bool {
		return r.Name == input.Name && len(r.Categories) == 1 && len(r.RegularHolidays) == 1
	})).Return(nil)

	restaurant, err := svc.CreateRestaurant(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, input.Name, restaurant.Name)
}

func TestAdminService_CreateRestaurant_PriceOrder(t *testing.T) {
	svc, m := newTestAdminService(t)

	input := validRestaurantInput(uuid.New(), uuid.New())
	input.LowestPrice = 5000
	input.HighestPrice = 1000

	_, err := svc.CreateRestaurant(context.Background(), input)
	require.Error(t, err)
	m.restaurantRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminService_CreateRestaurant_UnknownCategory(t *testing.T) {
	svc, m := newTestAdminService(t)

	ctx := context.Background()
	input := validRestaurantInput(uuid.New(), uuid.New())

	m.categoryRepo.On("FindByIDs", ctx, input.CategoryIDs).
		Return([]*entity.Category{}, nil)

	_, err := svc.CreateRestaurant(ctx, input)
	require.Error(t, err)
	m.restaurantRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminService_UpdateTerms(t *testing.T) {
	svc, m := newTestAdminService(t)

	ctx := context.Background()

	m.termRepo.On("Update", ctx, mock.MatchedBy(func(term *entity.Term) bool {
		return term.Content == "new terms"
	})).Return(nil)

	term, err := svc.UpdateTerms(ctx, "new terms")
	require.NoError(t, err)
	assert.Equal(t, "new terms", term.Content)
}

func TestAdminService_ListMembers_ReadOnlySurface(t *testing.T) {
	svc, m := newTestAdminService(t)

	ctx := context.Background()
	expected := &repository.Page[*entity.Member]{
		Items:   []*entity.Member{{ID: uuid.New(), Name: "Taro"}},
		Total:   1,
		Page:    1,
		PerPage: repository.DefaultPageSize,
	}

	m.memberRepo.On("Search", ctx, "taro", 1).Return(expected, nil)

	page, err := svc.ListMembers(ctx, "taro", 1)
	require.NoError(t, err)
	assert.Equal(t, expected, page)
}
