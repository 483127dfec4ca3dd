// Package impl contains the concrete use case services. Each service depends
// on repository and domain service interfaces only, so the whole layer is
// testable with in-memory fakes.
package impl

import (
	"context"

	"tavolo/config"
	domainerrors "tavolo/internal/domain/errors"
	"tavolo/internal/domain/repository"
	"tavolo/internal/domain/service"
	"tavolo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type subscriptionService struct {
	memberRepo repository.MemberRepository
	billing    service.BillingService
	planID     string
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	MemberRepo repository.MemberRepository
	Billing    service.BillingService
	Config     *config.Config
}

// NewSubscriptionService creates a new subscription service instance.
// The returned service is also the SubscriptionOracle consulted by the
// route guards.
func NewSubscriptionService(params SubscriptionServiceParams) (usecase.SubscriptionUsecase, error) {
	if params.Config.Billing == nil || params.Config.Billing.PremiumPriceID == "" {
		return nil, errors.New("billing premium price ID must be provided")
	}

	return &subscriptionService{
		memberRepo: params.MemberRepo,
		billing:    params.Billing,
		planID:     params.Config.Billing.PremiumPriceID,
	}, nil
}

// IsSubscribed asks the billing provider for the member's current
// entitlement. The answer is never cached: a cancellation on the provider's
// side takes effect on the next gated request. Provider failures propagate;
// they must not read as "not subscribed".
func (s *subscriptionService) IsSubscribed(ctx context.Context, memberID uuid.UUID) (bool, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return false, nil
		}

		return false, err
	}

	// No billing customer means the member never started a billing flow.
	if !member.HasBillingCustomer() {
		return false, nil
	}

	subscribed, err := s.billing.IsSubscribed(ctx, member.BillingCustomerID, s.planID)
	if err != nil {
		return false, domainerrors.ErrBillingUnavailable.WrapMessage(err.Error())
	}

	return subscribed, nil
}

// BeginSetup starts a payment-method collection flow, creating the billing
// customer on first use.
func (s *subscriptionService) BeginSetup(ctx context.Context, memberID uuid.UUID) (string, error) {
	customerID, err := s.ensureCustomer(ctx, memberID)
	if err != nil {
		return "", err
	}

	clientSecret, err := s.billing.CreateSetupIntent(ctx, customerID)
	if err != nil {
		return "", domainerrors.ErrBillingUnavailable.WrapMessage(err.Error())
	}

	return clientSecret, nil
}

// Subscribe enrolls the member in the premium plan.
func (s *subscriptionService) Subscribe(ctx context.Context, memberID uuid.UUID, paymentMethodID string) error {
	customerID, err := s.ensureCustomer(ctx, memberID)
	if err != nil {
		return err
	}

	if _, err := s.billing.Subscribe(ctx, customerID, s.planID, paymentMethodID); err != nil {
		return domainerrors.ErrBillingUnavailable.WrapMessage(err.Error())
	}

	return nil
}

// UpdatePaymentMethod replaces the member's default payment method.
func (s *subscriptionService) UpdatePaymentMethod(ctx context.Context, memberID uuid.UUID, paymentMethodID string) error {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return err
	}
	if !member.HasBillingCustomer() {
		return domainerrors.ErrNotFound.WrapMessage("no billing customer for member")
	}

	if err := s.billing.UpdateDefaultPaymentMethod(ctx, member.BillingCustomerID, paymentMethodID); err != nil {
		return domainerrors.ErrBillingUnavailable.WrapMessage(err.Error())
	}

	return nil
}

// Cancel ends the member's subscription immediately. The next gated request
// sees the new state because IsSubscribed always asks the provider.
func (s *subscriptionService) Cancel(ctx context.Context, memberID uuid.UUID) error {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return err
	}
	if !member.HasBillingCustomer() {
		return domainerrors.ErrNotFound.WrapMessage("no billing customer for member")
	}

	if err := s.billing.CancelNow(ctx, member.BillingCustomerID, s.planID); err != nil {
		return domainerrors.ErrBillingUnavailable.WrapMessage(err.Error())
	}

	return nil
}

// ensureCustomer returns the member's billing customer ID, registering the
// member with the provider the first time around.
func (s *subscriptionService) ensureCustomer(ctx context.Context, memberID uuid.UUID) (string, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return "", err
	}
	if member.HasBillingCustomer() {
		return member.BillingCustomerID, nil
	}

	customerID, err := s.billing.CreateCustomer(ctx, member.Email, member.Name)
	if err != nil {
		return "", domainerrors.ErrBillingUnavailable.WrapMessage(err.Error())
	}

	member.BillingCustomerID = customerID
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return "", errors.Wrap(err, "failed to store billing customer ID")
	}

	return customerID, nil
}
