// Package billing implements the billing capability interface against Stripe.
// The rest of the application only ever sees the narrow service.BillingService
// contract; everything Stripe-specific stays here.
package billing

import (
	"context"

	"tavolo/config"
	"tavolo/internal/domain/service"
	"tavolo/internal/errors"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// stripeService is a concrete implementation of the BillingService interface.
type stripeService struct {
	api *client.API
}

// NewStripeService is the constructor for stripeService.
func NewStripeService(cfg *config.Config) (service.BillingService, error) {
	if cfg.Billing == nil || cfg.Billing.APIKey == "" {
		return nil, errors.New("billing api key must be provided")
	}

	api := &client.API{}
	api.Init(cfg.Billing.APIKey, nil)

	return &stripeService{api: api}, nil
}

// CreateCustomer registers the member with Stripe and returns the customer ID.
func (s *stripeService) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	params.Context = ctx

	customer, err := s.api.Customers.New(params)
	if err != nil {
		return "", errors.Wrap(err, "failed to create billing customer")
	}

	return customer.ID, nil
}

// CreateSetupIntent starts a payment-method collection flow for the customer.
func (s *stripeService) CreateSetupIntent(ctx context.Context, customerID string) (string, error) {
	params := &stripe.SetupIntentParams{
		Customer: stripe.String(customerID),
	}
	params.Context = ctx

	intent, err := s.api.SetupIntents.New(params)
	if err != nil {
		return "", errors.Wrap(err, "failed to create setup intent")
	}

	return intent.ClientSecret, nil
}

// IsSubscribed reports whether the customer holds an active entitlement for
// the plan. Callers re-check on every gated request; no result is cached here.
func (s *stripeService) IsSubscribed(ctx context.Context, customerID, planID string) (bool, error) {
	params := &stripe.SubscriptionListParams{
		Customer: stripe.String(customerID),
		Price:    stripe.String(planID),
		Status:   stripe.String(string(stripe.SubscriptionStatusActive)),
	}
	params.Context = ctx

	iter := s.api.Subscriptions.List(params)
	for iter.Next() {
		return true, nil
	}
	if err := iter.Err(); err != nil {
		return false, errors.Wrap(err, "failed to list subscriptions")
	}

	return false, nil
}

// Subscribe creates a subscription to the plan with the given payment method.
func (s *stripeService) Subscribe(ctx context.Context, customerID, planID, paymentMethodID string) (string, error) {
	attachParams := &stripe.PaymentMethodAttachParams{
		Customer: stripe.String(customerID),
	}
	attachParams.Context = ctx

	if _, err := s.api.PaymentMethods.Attach(paymentMethodID, attachParams); err != nil {
		return "", errors.Wrap(err, "failed to attach payment method")
	}

	params := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(planID)},
		},
		DefaultPaymentMethod: stripe.String(paymentMethodID),
	}
	params.Context = ctx

	subscription, err := s.api.Subscriptions.New(params)
	if err != nil {
		return "", errors.Wrap(err, "failed to create subscription")
	}

	return subscription.ID, nil
}

// UpdateDefaultPaymentMethod replaces the customer's default payment method.
func (s *stripeService) UpdateDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	attachParams := &stripe.PaymentMethodAttachParams{
		Customer: stripe.String(customerID),
	}
	attachParams.Context = ctx

	if _, err := s.api.PaymentMethods.Attach(paymentMethodID, attachParams); err != nil {
		return errors.Wrap(err, "failed to attach payment method")
	}

	params := &stripe.CustomerParams{
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(paymentMethodID),
		},
	}
	params.Context = ctx

	if _, err := s.api.Customers.Update(customerID, params); err != nil {
		return errors.Wrap(err, "failed to update default payment method")
	}

	return nil
}

// CancelNow cancels the customer's subscription to the plan immediately.
func (s *stripeService) CancelNow(ctx context.Context, customerID, planID string) error {
	listParams := &stripe.SubscriptionListParams{
		Customer: stripe.String(customerID),
		Price:    stripe.String(planID),
		Status:   stripe.String(string(stripe.SubscriptionStatusActive)),
	}
	listParams.Context = ctx

	canceled := 0
	iter := s.api.Subscriptions.List(listParams)
	for iter.Next() {
		cancelParams := &stripe.SubscriptionCancelParams{}
		cancelParams.Context = ctx

		if _, err := s.api.Subscriptions.Cancel(iter.Subscription().ID, cancelParams); err != nil {
			return errors.Wrap(err, "failed to cancel subscription")
		}
		canceled++
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "failed to list subscriptions")
	}
	if canceled == 0 {
		return errors.New("no active subscription for plan")
	}

	return nil
}
