package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"tavolo/internal/delivery/http/response"
	"tavolo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RestaurantHandler serves the public browsing surface of the directory.
type RestaurantHandler struct {
	uc     usecase.RestaurantUsecase
	logger *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler, injected by Fx.
func NewRestaurantHandler(uc usecase.RestaurantUsecase, logger *slog.Logger) *RestaurantHandler {
	return &RestaurantHandler{uc: uc, logger: logger}
}

// Home handles the landing page request.
func (h *RestaurantHandler) Home(c echo.Context) error {
	home, err := h.uc.Home(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	data := map[string]any{
		"new_restaurants": toRestaurantViews(home.NewestRestaurants),
		"categories":      toCategoryViews(home.Categories),
	}

	return response.Success(c, http.StatusOK, data, "")
}

// Index handles the directory listing request with its filter and sort
// query parameters.
func (h *RestaurantHandler) Index(c echo.Context) error {
	query := usecase.DirectoryQuery{
		Keyword: c.QueryParam("keyword"),
		Sort:    c.QueryParam("sort"),
		Page:    pageQuery(c),
	}

	if raw := c.QueryParam("category"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "category must be a valid UUID")
		}
		query.CategoryID = &categoryID
	}

	if raw := c.QueryParam("max_price"); raw != "" {
		maxPrice, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "max_price must be an integer")
		}
		query.MaxPrice = &maxPrice
	}

	page, err := h.uc.Browse(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapPage(page, toRestaurantView), "")
}

// Show handles the restaurant detail page request.
func (h *RestaurantHandler) Show(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	detail, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	data := map[string]any{
		"restaurant": toRestaurantView(detail.Restaurant),
		"reviews":    mapPage(detail.Reviews, toReviewView),
	}

	return response.Success(c, http.StatusOK, data, "")
}

// Company handles the corporate profile page request.
func (h *RestaurantHandler) Company(c echo.Context) error {
	company, err := h.uc.Company(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCompanyView(company), "")
}

// Terms handles the terms of service page request.
func (h *RestaurantHandler) Terms(c echo.Context) error {
	term, err := h.uc.Terms(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTermView(term), "")
}
