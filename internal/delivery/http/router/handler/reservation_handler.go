package handler

import (
	"log/slog"
	"net/http"

	"tavolo/internal/delivery/http/middleware"
	"tavolo/internal/delivery/http/response"
	"tavolo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createReservationRequest struct {
	RestaurantID string `json:"restaurant_id" validate:"required,uuid"`
	Date         string `json:"date" validate:"required"`
	Time         string `json:"time" validate:"required"`
	PartySize    int    `json:"party_size" validate:"required"`
}

// ReservationHandler serves the reservation lifecycle. The owning member is
// always the request principal; the body never names an owner.
type ReservationHandler struct {
	uc     usecase.ReservationUsecase
	logger *slog.Logger
}

// NewReservationHandler is the constructor for ReservationHandler, injected by Fx.
func NewReservationHandler(uc usecase.ReservationUsecase, logger *slog.Logger) *ReservationHandler {
	return &ReservationHandler{uc: uc, logger: logger}
}

// Index handles the member's reservation listing request.
func (h *ReservationHandler) Index(c echo.Context) error {
	principal := middleware.GetPrincipal(c)

	page, err := h.uc.List(c.Request().Context(), principal.ID, pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapPage(page, toReservationView), "")
}

// Create handles the booking request.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "restaurant_id must be a valid UUID")
	}

	principal := middleware.GetPrincipal(c)
	reservation, err := h.uc.Create(c.Request().Context(), principal.ID, usecase.CreateReservationInput{
		RestaurantID: restaurantID,
		Date:         req.Date,
		Time:         req.Time,
		PartySize:    req.PartySize,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReservationView(reservation), "Reservation created successfully")
}

// Delete handles the cancellation request.
func (h *ReservationHandler) Delete(c echo.Context) error {
	reservationID, err := uuidParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	principal := middleware.GetPrincipal(c)
	if err := h.uc.Cancel(c.Request().Context(), principal.ID, reservationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Reservation cancelled successfully")
}
