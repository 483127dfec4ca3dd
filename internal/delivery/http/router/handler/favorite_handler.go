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

// FavoriteHandler serves the subscribed member's favorite list.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{uc: uc, logger: logger}
}

// Index handles the member's favorite listing request.
func (h *FavoriteHandler) Index(c echo.Context) error {
	principal := middleware.GetPrincipal(c)

	page, err := h.uc.List(c.Request().Context(), principal.ID, pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapPage(page, toRestaurantView), "")
}

// Create handles the favorite request. Favoriting twice is a no-op.
func (h *FavoriteHandler) Create(c echo.Context) error {
	restaurantID, err := uuidParam(c, "restaurant_id")
	if err != nil {
		return errors.WithStack(err)
	}

	principal := middleware.GetPrincipal(c)
	if err := h.uc.Add(c.Request().Context(), principal.ID, restaurantID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Restaurant favorited")
}

// Delete handles the unfavorite request.
func (h *FavoriteHandler) Delete(c echo.Context) error {
	restaurantID, err := uuidParam(c, "restaurant_id")
	if err != nil {
		return errors.WithStack(err)
	}

	principal := middleware.GetPrincipal(c)
	if err := h.uc.Remove(c.Request().Context(), principal.ID, restaurantID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Restaurant unfavorited")
}
