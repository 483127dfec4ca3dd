package handler

import (
	"log/slog"
	"net/http"

	"tavolo/internal/delivery/http/middleware"
	"tavolo/internal/delivery/http/response"
	"tavolo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type paymentMethodRequest struct {
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
}

// SubscriptionHandler serves the paid-tier enrollment flow. The creation
// routes sit behind the anti-gate (members who already subscribe are
// redirected to the edit page); the edit routes require an active
// subscription.
type SubscriptionHandler struct {
	uc     usecase.SubscriptionUsecase
	logger *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler, injected by Fx.
func NewSubscriptionHandler(uc usecase.SubscriptionUsecase, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc, logger: logger}
}

// New handles the subscription creation page request. It starts a
// payment-method collection flow and returns the provider's client secret.
func (h *SubscriptionHandler) New(c echo.Context) error {
	principal := middleware.GetPrincipal(c)

	clientSecret, err := h.uc.BeginSetup(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"client_secret": clientSecret}, "")
}

// Create handles the enrollment request with the collected payment method.
func (h *SubscriptionHandler) Create(c echo.Context) error {
	var req paymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	principal := middleware.GetPrincipal(c)
	if err := h.uc.Subscribe(c.Request().Context(), principal.ID, req.PaymentMethodID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Subscription created successfully")
}

// Edit handles the payment-method edit page request. Like New, it returns a
// fresh client secret for collecting the replacement card.
func (h *SubscriptionHandler) Edit(c echo.Context) error {
	principal := middleware.GetPrincipal(c)

	clientSecret, err := h.uc.BeginSetup(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"client_secret": clientSecret}, "")
}

// UpdatePaymentMethod handles the default payment method replacement request.
func (h *SubscriptionHandler) UpdatePaymentMethod(c echo.Context) error {
	var req paymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment method input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	principal := middleware.GetPrincipal(c)
	if err := h.uc.UpdatePaymentMethod(c.Request().Context(), principal.ID, req.PaymentMethodID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Payment method updated successfully")
}

// Delete handles the cancellation request. The subscription ends immediately;
// the next gated request sees the member as unsubscribed.
func (h *SubscriptionHandler) Delete(c echo.Context) error {
	principal := middleware.GetPrincipal(c)

	if err := h.uc.Cancel(c.Request().Context(), principal.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Subscription cancelled successfully")
}
