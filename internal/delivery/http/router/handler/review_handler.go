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

type reviewRequest struct {
	Score   int    `json:"score" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// ReviewHandler serves the review lifecycle. Reading is open to any signed-in
// member; writing requires a paid subscription, enforced by the route guards.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{uc: uc, logger: logger}
}

// Index handles a restaurant's review listing request.
func (h *ReviewHandler) Index(c echo.Context) error {
	restaurantID, err := uuidParam(c, "restaurant_id")
	if err != nil {
		return errors.WithStack(err)
	}

	page, err := h.uc.ListByRestaurant(c.Request().Context(), restaurantID, pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapPage(page, toReviewView), "")
}

// Create handles the review posting request.
func (h *ReviewHandler) Create(c echo.Context) error {
	restaurantID, err := uuidParam(c, "restaurant_id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	principal := middleware.GetPrincipal(c)
	review, err := h.uc.Create(c.Request().Context(), principal.ID, restaurantID, usecase.ReviewInput{
		Score:   req.Score,
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReviewView(review), "Review posted successfully")
}

// Update handles the review edit request.
func (h *ReviewHandler) Update(c echo.Context) error {
	reviewID, err := uuidParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	principal := middleware.GetPrincipal(c)
	review, err := h.uc.Update(c.Request().Context(), principal.ID, reviewID, usecase.ReviewInput{
		Score:   req.Score,
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReviewView(review), "Review updated successfully")
}

// Delete handles the review removal request.
func (h *ReviewHandler) Delete(c echo.Context) error {
	reviewID, err := uuidParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	principal := middleware.GetPrincipal(c)
	if err := h.uc.Delete(c.Request().Context(), principal.ID, reviewID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted successfully")
}
