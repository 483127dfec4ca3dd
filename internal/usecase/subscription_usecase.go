package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SubscriptionUsecase manages the member's paid-tier entitlement against the
// external billing provider. The provider is the single source of truth:
// IsSubscribed asks it fresh on every call, so entitlement changes take
// effect on the next gated request without any local cache invalidation.
type SubscriptionUsecase interface {
	// IsSubscribed reports whether the member currently holds an active
	// subscription. A member without a billing customer is not subscribed.
	IsSubscribed(ctx context.Context, memberID uuid.UUID) (bool, error)

	// BeginSetup starts a payment-method collection flow and returns the
	// provider's client secret. Creates the billing customer on first use.
	BeginSetup(ctx context.Context, memberID uuid.UUID) (string, error)

	// Subscribe enrolls the member in the premium plan with the given
	// payment method.
	Subscribe(ctx context.Context, memberID uuid.UUID, paymentMethodID string) error

	// UpdatePaymentMethod replaces the member's default payment method.
	UpdatePaymentMethod(ctx context.Context, memberID uuid.UUID, paymentMethodID string) error

	// Cancel ends the member's subscription immediately.
	Cancel(ctx context.Context, memberID uuid.UUID) error
}
