package impl

import (
	"context"

	"tavolo/internal/domain/entity"
	"tavolo/internal/domain/repository"
	"tavolo/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Hand-rolled testify mocks for the repository and domain service interfaces
// the services under test depend on.

type mockMemberRepository struct {
	mock.Mock
}

func (m *mockMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Member), args.Error(1)
}

func (m *mockMemberRepository) FindByEmail(ctx context.Context, email string) (*entity.Member, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Member), args.Error(1)
}

func (m *mockMemberRepository) Create(ctx context.Context, member *entity.Member) error {
	return m.Called(ctx, member).Error(0)
}

func (m *mockMemberRepository) Update(ctx context.Context, member *entity.Member) error {
	return m.Called(ctx, member).Error(0)
}

func (m *mockMemberRepository) Search(ctx context.Context, keyword string, page int) (*repository.Page[*entity.Member], error) {
	args := m.Called(ctx, keyword, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.Page[*entity.Member]), args.Error(1)
}

func (m *mockMemberRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

type mockAdministratorRepository struct {
	mock.Mock
}

func (m *mockAdministratorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Administrator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Administrator), args.Error(1)
}

func (m *mockAdministratorRepository) FindByEmail(ctx context.Context, email string) (*entity.Administrator, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Administrator), args.Error(1)
}

func (m *mockAdministratorRepository) Create(ctx context.Context, admin *entity.Administrator) error {
	return m.Called(ctx, admin).Error(0)
}

type mockRestaurantRepository struct {
	mock.Mock
}

func (m *mockRestaurantRepository) Search(ctx context.Context, query repository.RestaurantQuery) (*repository.Page[*entity.Restaurant], error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.Page[*entity.Restaurant]), args.Error(1)
}

func (m *mockRestaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Restaurant), args.Error(1)
}

func (m *mockRestaurantRepository) FindNewest(ctx context.Context, limit int) ([]*entity.Restaurant, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Restaurant), args.Error(1)
}

func (m *mockRestaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	return m.Called(ctx, restaurant).Error(0)
}

func (m *mockRestaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	return m.Called(ctx, restaurant).Error(0)
}

func (m *mockRestaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRestaurantRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

type mockReservationRepository struct {
	mock.Mock
}

func (m *mockReservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	return m.Called(ctx, reservation).Error(0)
}

func (m *mockReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Reservation), args.Error(1)
}

func (m *mockReservationRepository) FindByMember(ctx context.Context, memberID uuid.UUID, page int) (*repository.Page[*entity.Reservation], error) {
	args := m.Called(ctx, memberID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.Page[*entity.Reservation]), args.Error(1)
}

func (m *mockReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockReservationRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *mockReviewRepository) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID, page int) (*repository.Page[*entity.Review], error) {
	args := m.Called(ctx, restaurantID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.Page[*entity.Review]), args.Error(1)
}

func (m *mockReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *mockCategoryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Category, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *mockCategoryRepository) Search(ctx context.Context, keyword string, page int) (*repository.Page[*entity.Category], error) {
	args := m.Called(ctx, keyword, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.Page[*entity.Category]), args.Error(1)
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockRegularHolidayRepository struct {
	mock.Mock
}

func (m *mockRegularHolidayRepository) FindAll(ctx context.Context) ([]*entity.RegularHoliday, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.RegularHoliday), args.Error(1)
}

func (m *mockRegularHolidayRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.RegularHoliday, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.RegularHoliday), args.Error(1)
}

type mockCompanyRepository struct {
	mock.Mock
}

func (m *mockCompanyRepository) Get(ctx context.Context) (*entity.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Company), args.Error(1)
}

func (m *mockCompanyRepository) Update(ctx context.Context, company *entity.Company) error {
	return m.Called(ctx, company).Error(0)
}

type mockTermRepository struct {
	mock.Mock
}

func (m *mockTermRepository) Get(ctx context.Context) (*entity.Term, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Term), args.Error(1)
}

func (m *mockTermRepository) Update(ctx context.Context, term *entity.Term) error {
	return m.Called(ctx, term).Error(0)
}

type mockFavoriteRepository struct {
	mock.Mock
}

func (m *mockFavoriteRepository) Add(ctx context.Context, memberID, restaurantID uuid.UUID) error {
	return m.Called(ctx, memberID, restaurantID).Error(0)
}

func (m *mockFavoriteRepository) Remove(ctx context.Context, memberID, restaurantID uuid.UUID) error {
	return m.Called(ctx, memberID, restaurantID).Error(0)
}

func (m *mockFavoriteRepository) Exists(ctx context.Context, memberID, restaurantID uuid.UUID) (bool, error) {
	args := m.Called(ctx, memberID, restaurantID)

	return args.Bool(0), args.Error(1)
}

func (m *mockFavoriteRepository) FindRestaurantsByMember(ctx context.Context, memberID uuid.UUID, page int) (*repository.Page[*entity.Restaurant], error) {
	args := m.Called(ctx, memberID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.Page[*entity.Restaurant]), args.Error(1)
}

type mockBillingService struct {
	mock.Mock
}

func (m *mockBillingService) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	args := m.Called(ctx, email, name)

	return args.String(0), args.Error(1)
}

func (m *mockBillingService) CreateSetupIntent(ctx context.Context, customerID string) (string, error) {
	args := m.Called(ctx, customerID)

	return args.String(0), args.Error(1)
}

func (m *mockBillingService) IsSubscribed(ctx context.Context, customerID, planID string) (bool, error) {
	args := m.Called(ctx, customerID, planID)

	return args.Bool(0), args.Error(1)
}

func (m *mockBillingService) Subscribe(ctx context.Context, customerID, planID, paymentMethodID string) (string, error) {
	args := m.Called(ctx, customerID, planID, paymentMethodID)

	return args.String(0), args.Error(1)
}

func (m *mockBillingService) UpdateDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	return m.Called(ctx, customerID, paymentMethodID).Error(0)
}

func (m *mockBillingService) CancelNow(ctx context.Context, customerID, planID string) error {
	return m.Called(ctx, customerID, planID).Error(0)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Generate(principalID uuid.UUID, scope service.TokenScope) (string, error) {
	args := m.Called(principalID, scope)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Validate(tokenString string, scope service.TokenScope) (*service.Claims, error) {
	args := m.Called(tokenString, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

// stubTransactionManager runs the callback against a fixed factory without a
// real transaction, which is all the service tests need.
type stubTransactionManager struct {
	factory repository.RepositoryFactory
}

func (m *stubTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type stubRepositoryFactory struct {
	memberRepo      repository.MemberRepository
	restaurantRepo  repository.RestaurantRepository
	reservationRepo repository.ReservationRepository
	reviewRepo      repository.ReviewRepository
}

func (f *stubRepositoryFactory) NewMemberRepository() repository.MemberRepository {
	return f.memberRepo
}

func (f *stubRepositoryFactory) NewRestaurantRepository() repository.RestaurantRepository {
	return f.restaurantRepo
}

func (f *stubRepositoryFactory) NewReservationRepository() repository.ReservationRepository {
	return f.reservationRepo
}

func (f *stubRepositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return f.reviewRepo
}
