package handler

import (
	"log/slog"
	"net/http"

	"tavolo/internal/delivery/http/response"
	"tavolo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type adminRestaurantRequest struct {
	Name              string   `json:"name" validate:"required"`
	ImagePath         string   `json:"image_path"`
	Description       string   `json:"description" validate:"required"`
	LowestPrice       int      `json:"lowest_price" validate:"required"`
	HighestPrice      int      `json:"highest_price" validate:"required"`
	PostalCode        string   `json:"postal_code" validate:"required,len=7,numeric"`
	Address           string   `json:"address" validate:"required"`
	OpeningTime       string   `json:"opening_time" validate:"required"`
	ClosingTime       string   `json:"closing_time" validate:"required"`
	SeatingCapacity   int      `json:"seating_capacity" validate:"required"`
	CategoryIDs       []string `json:"category_ids" validate:"dive,uuid"`
	RegularHolidayIDs []string `json:"regular_holiday_ids" validate:"dive,uuid"`
}

type adminCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type adminCompanyRequest struct {
	Name           string `json:"name" validate:"required"`
	PostalCode     string `json:"postal_code" validate:"required,len=7,numeric"`
	Address        string `json:"address" validate:"required"`
	Representative string `json:"representative" validate:"required"`
	EstablishedAt  string `json:"established_at"`
	Capital        string `json:"capital"`
	Business       string `json:"business"`
	EmployeeCount  string `json:"employee_count"`
}

type adminTermsRequest struct {
	Content string `json:"content" validate:"required"`
}

// AdminHandler serves the back-office surface. Every route here sits behind
// the admin route guard, so handlers assume an administrator principal.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: logger}
}

// Dashboard handles the back-office landing page request.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	counts, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	data := map[string]int64{
		"members":      counts.Members,
		"restaurants":  counts.Restaurants,
		"reservations": counts.Reservations,
	}

	return response.Success(c, http.StatusOK, data, "")
}

// ListRestaurants handles the back-office restaurant listing request.
func (h *AdminHandler) ListRestaurants(c echo.Context) error {
	page, err := h.uc.ListRestaurants(c.Request().Context(), c.QueryParam("keyword"), pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapPage(page, toRestaurantView), "")
}

// GetRestaurant handles the back-office restaurant detail request.
func (h *AdminHandler) GetRestaurant(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	restaurant, err := h.uc.GetRestaurant(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRestaurantView(restaurant), "")
}

// CreateRestaurant handles the restaurant creation request.
func (h *AdminHandler) CreateRestaurant(c echo.Context) error {
	input, err := h.bindRestaurantInput(c)
	if err != nil {
		return err
	}

	restaurant, err := h.uc.CreateRestaurant(c.Request().Context(), *input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toRestaurantView(restaurant), "Restaurant created successfully")
}

// UpdateRestaurant handles the restaurant edit request.
func (h *AdminHandler) UpdateRestaurant(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	input, err := h.bindRestaurantInput(c)
	if err != nil {
		return err
	}

	restaurant, err := h.uc.UpdateRestaurant(c.Request().Context(), id, *input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRestaurantView(restaurant), "Restaurant updated successfully")
}

// DeleteRestaurant handles the restaurant removal request.
func (h *AdminHandler) DeleteRestaurant(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteRestaurant(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Restaurant deleted successfully")
}

func (h *AdminHandler) bindRestaurantInput(c echo.Context) (*usecase.RestaurantInput, error) {
	var req adminRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BindingError(c, "INVALID_INPUT", "Invalid restaurant input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	categoryIDs, err := parseUUIDs(req.CategoryIDs)
	if err != nil {
		return nil, response.BadRequest(c, "VALIDATION_FAILED", "category_ids must be valid UUIDs")
	}
	holidayIDs, err := parseUUIDs(req.RegularHolidayIDs)
	if err != nil {
		return nil, response.BadRequest(c, "VALIDATION_FAILED", "regular_holiday_ids must be valid UUIDs")
	}

	return &usecase.RestaurantInput{
		Name:              req.Name,
		ImagePath:         req.ImagePath,
		Description:       req.Description,
		LowestPrice:       req.LowestPrice,
		HighestPrice:      req.HighestPrice,
		PostalCode:        req.PostalCode,
		Address:           req.Address,
		OpeningTime:       req.OpeningTime,
		ClosingTime:       req.ClosingTime,
		SeatingCapacity:   req.SeatingCapacity,
		CategoryIDs:       categoryIDs,
		RegularHolidayIDs: holidayIDs,
	}, nil
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// ListCategories handles the back-office category listing request.
func (h *AdminHandler) ListCategories(c echo.Context) error {
	page, err := h.uc.ListCategories(c.Request().Context(), c.QueryParam("keyword"), pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapPage(page, toCategoryView), "")
}

// CreateCategory handles the category creation request.
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var req adminCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCategoryView(category), "Category created successfully")
}

// UpdateCategory handles the category rename request.
func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req adminCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), id, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryView(category), "Category updated successfully")
}

// DeleteCategory handles the category removal request.
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted successfully")
}

// ListRegularHolidays handles the weekly-holiday listing request used by the
// restaurant edit form.
func (h *AdminHandler) ListRegularHolidays(c echo.Context) error {
	holidays, err := h.uc.ListRegularHolidays(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRegularHolidayViews(holidays), "")
}

// ListMembers handles the read-only member listing request.
func (h *AdminHandler) ListMembers(c echo.Context) error {
	page, err := h.uc.ListMembers(c.Request().Context(), c.QueryParam("keyword"), pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapPage(page, toMemberView), "")
}

// GetCompany handles the corporate profile request.
func (h *AdminHandler) GetCompany(c echo.Context) error {
	company, err := h.uc.GetCompany(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCompanyView(company), "")
}

// UpdateCompany handles the corporate profile edit request.
func (h *AdminHandler) UpdateCompany(c echo.Context) error {
	var req adminCompanyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid company input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	company, err := h.uc.UpdateCompany(c.Request().Context(), usecase.CompanyInput{
		Name:           req.Name,
		PostalCode:     req.PostalCode,
		Address:        req.Address,
		Representative: req.Representative,
		EstablishedAt:  req.EstablishedAt,
		Capital:        req.Capital,
		Business:       req.Business,
		EmployeeCount:  req.EmployeeCount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCompanyView(company), "Company updated successfully")
}

// GetTerms handles the terms of service request.
func (h *AdminHandler) GetTerms(c echo.Context) error {
	term, err := h.uc.GetTerms(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTermView(term), "")
}

// UpdateTerms handles the terms of service edit request.
func (h *AdminHandler) UpdateTerms(c echo.Context) error {
	var req adminTermsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid terms input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	term, err := h.uc.UpdateTerms(c.Request().Context(), req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTermView(term), "Terms updated successfully")
}
