package service

import "context"

// BillingService is the narrow capability interface over the external billing
// provider. The application only ever interprets the boolean subscription
// status; plan lifecycle, payment methods and invoicing all live on the
// provider's side. Every side-effecting call is fallible and callers must
// propagate failures as user-visible errors.
type BillingService interface {
	// CreateCustomer registers the member with the billing provider and
	// returns the provider's customer ID.
	CreateCustomer(ctx context.Context, email, name string) (string, error)

	// CreateSetupIntent starts a payment-method collection flow for the
	// customer and returns the client secret the frontend needs.
	CreateSetupIntent(ctx context.Context, customerID string) (string, error)

	// IsSubscribed reports whether the customer holds an active,
	// non-canceled entitlement for the given plan.
	IsSubscribed(ctx context.Context, customerID, planID string) (bool, error)

	// Subscribe creates a subscription to the plan using the given payment
	// method and returns the provider's subscription ID.
	Subscribe(ctx context.Context, customerID, planID, paymentMethodID string) (string, error)

	// UpdateDefaultPaymentMethod replaces the customer's default payment method.
	UpdateDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error

	// CancelNow cancels the customer's subscription to the plan immediately,
	// with no grace period.
	CancelNow(ctx context.Context, customerID, planID string) error
}
