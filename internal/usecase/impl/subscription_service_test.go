package impl

import (
	"context"
	"testing"

	"tavolo/config"
	"tavolo/internal/domain/entity"
	domainerrors "tavolo/internal/domain/errors"
	"tavolo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPlanID = "price_premium_monthly"

func newTestSubscriptionService(t *testing.T, memberRepo *mockMemberRepository, billing *mockBillingService) usecase.SubscriptionUsecase {
	t.Helper()

	cfg := &config.Config{
		Billing: &config.BillingConfig{
			APIKey:         "sk_test",
			PremiumPriceID: testPlanID,
		},
	}

	svc, err := NewSubscriptionService(SubscriptionServiceParams{
		MemberRepo: memberRepo,
		Billing:    billing,
		Config:     cfg,
	})
	require.NoError(t, err)

	return svc
}

func TestSubscriptionService_IsSubscribed_NoBillingCustomer(t *testing.T) {
	memberRepo := new(mockMemberRepository)
	billing := new(mockBillingService)
	svc := newTestSubscriptionService(t, memberRepo, billing)

	ctx := context.Background()
	memberID := uuid.New()

	memberRepo.On("FindByID", ctx, memberID).
		Return(&entity.Member{ID: memberID}, nil)

	subscribed, err := svc.IsSubscribed(ctx, memberID)
	require.NoError(t, err)
	assert.False(t, subscribed)

	// A member with no billing customer never reaches the provider.
	billing.AssertNotCalled(t, "IsSubscribed", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscriptionService_IsSubscribed_Active(t *testing.T) {
	memberRepo := new(mockMemberRepository)
	billing := new(mockBillingService)
	svc := newTestSubscriptionService(t, memberRepo, billing)

	ctx := context.Background()
	memberID := uuid.New()

	memberRepo.On("FindByID", ctx, memberID).
		Return(&entity.Member{ID: memberID, BillingCustomerID: "cus_123"}, nil)
	billing.On("IsSubscribed", ctx, "cus_123", testPlanID).
		Return(true, nil)

	subscribed, err := svc.IsSubscribed(ctx, memberID)
	require.NoError(t, err)
	assert.True(t, subscribed)
}

func TestSubscriptionService_IsSubscribed_NeverCached(t *testing.T) {
	memberRepo := new(mockMemberRepository)
	billing := new(mockBillingService)
	svc := newTestSubscriptionService(t, memberRepo, billing)

	ctx := context.Background()
	memberID := uuid.New()

	memberRepo.On("FindByID", ctx, memberID).
		Return(&entity.Member{ID: memberID, BillingCustomerID: "cus_123"}, nil)
	billing.On("IsSubscribed", ctx, "cus_123", testPlanID).
		Return(true, nil).Once()
	billing.On("IsSubscribed", ctx, "cus_123", testPlanID).
		Return(false, nil).Once()

	first, err := svc.IsSubscribed(ctx, memberID)
	require.NoError(t, err)
	assert.True(t, first)

	// A cancellation on the provider side must be visible on the very next
	// check.
	second, err := svc.IsSubscribed(ctx, memberID)
	require.NoError(t, err)
	assert.False(t, second)

	billing.AssertNumberOfCalls(t, "IsSubscribed", 2)
}

func TestSubscriptionService_IsSubscribed_ProviderFailure(t *testing.T) {
	memberRepo := new(mockMemberRepository)
	billing := new(mockBillingService)
	svc := newTestSubscriptionService(t, memberRepo, billing)

	ctx := context.Background()
	memberID := uuid.New()

	memberRepo.On("FindByID", ctx, memberID).
		Return(&entity.Member{ID: memberID, BillingCustomerID: "cus_123"}, nil)
	billing.On("IsSubscribed", ctx, "cus_123", testPlanID).
		Return(false, errors.New("provider timeout"))

	// Provider failure must surface as an error, never as "not subscribed".
	subscribed, err := svc.IsSubscribed(ctx, memberID)
	require.Error(t, err)
	assert.False(t, subscribed)
	assert.True(t, errors.Is(err, domainerrors.ErrBillingUnavailable))
}

func TestSubscriptionService_BeginSetup_CreatesCustomerOnFirstUse(t *testing.T) {
	memberRepo := new(mockMemberRepository)
	billing := new(mockBillingService)
	svc := newTestSubscriptionService(t, memberRepo, billing)

	ctx := context.Background()
	memberID := uuid.New()

	memberRepo.On("FindByID", ctx, memberID).
		Return(&entity.Member{ID: memberID, Email: "m@example.com", Name: "Member"}, nil)
	billing.On("CreateCustomer", ctx, "m@example.com", "Member").
		Return("cus_new", nil)
	memberRepo.On("Update", ctx, mock.MatchedBy(func(m *entity.Member) bool {
		return m.BillingCustomerID == "cus_new"
	})).Return(nil)
	billing.On("CreateSetupIntent", ctx, "cus_new").
		Return("seti_secret", nil)

	clientSecret, err := svc.BeginSetup(ctx, memberID)
	require.NoError(t, err)
	assert.Equal(t, "seti_secret", clientSecret)
}

func TestSubscriptionService_Subscribe_ExistingCustomer(t *testing.T) {
	memberRepo := new(mockMemberRepository)
	billing := new(mockBillingService)
	svc := newTestSubscriptionService(t, memberRepo, billing)

	ctx := context.Background()
	memberID := uuid.New()

	memberRepo.On("FindByID", ctx, memberID).
		Return(&entity.Member{ID: memberID, BillingCustomerID: "cus_123"}, nil)
	billing.On("Subscribe", ctx, "cus_123", testPlanID, "pm_card").
		Return("sub_123", nil)

	err := svc.Subscribe(ctx, memberID, "pm_card")
	require.NoError(t, err)

	billing.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscriptionService_Cancel_NoCustomer(t *testing.T) {
	memberRepo := new(mockMemberRepository)
	billing := new(mockBillingService)
	svc := newTestSubscriptionService(t, memberRepo, billing)

	ctx := context.Background()
	memberID := uuid.New()

	memberRepo.On("FindByID", ctx, memberID).
		Return(&entity.Member{ID: memberID}, nil)

	err := svc.Cancel(ctx, memberID)
	require.Error(t, err)
	billing.AssertNotCalled(t, "CancelNow", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscriptionService_RequiresPlanID(t *testing.T) {
	_, err := NewSubscriptionService(SubscriptionServiceParams{
		MemberRepo: new(mockMemberRepository),
		Billing:    new(mockBillingService),
		Config:     &config.Config{},
	})
	assert.Error(t, err)
}
