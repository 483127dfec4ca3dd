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

type updateProfileRequest struct {
	Name        string `json:"name" validate:"required"`
	Kana        string `json:"kana" validate:"required,katakana"`
	Email       string `json:"email" validate:"required,email"`
	PostalCode  string `json:"postal_code" validate:"required,len=7,numeric"`
	Address     string `json:"address" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required,numeric,min=10,max=11"`
	Birthday    string `json:"birthday" validate:"omitempty,len=8,numeric"`
	Occupation  string `json:"occupation"`
}

// MemberHandler serves the member's own profile page. The requested profile
// id comes from the path; the usecase redirects any requester who is not the
// profile's owner.
type MemberHandler struct {
	uc     usecase.MemberUsecase
	logger *slog.Logger
}

// NewMemberHandler is the constructor for MemberHandler, injected by Fx.
func NewMemberHandler(uc usecase.MemberUsecase, logger *slog.Logger) *MemberHandler {
	return &MemberHandler{uc: uc, logger: logger}
}

// Show handles the profile page request.
func (h *MemberHandler) Show(c echo.Context) error {
	memberID, err := uuidParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	principal := middleware.GetPrincipal(c)
	member, err := h.uc.GetProfile(c.Request().Context(), principal.ID, memberID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMemberView(member), "")
}

// Update handles the profile edit request.
func (h *MemberHandler) Update(c echo.Context) error {
	memberID, err := uuidParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	principal := middleware.GetPrincipal(c)
	member, err := h.uc.UpdateProfile(c.Request().Context(), principal.ID, memberID, usecase.UpdateProfileInput{
		Name:        req.Name,
		Kana:        req.Kana,
		Email:       req.Email,
		PostalCode:  req.PostalCode,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		Birthday:    req.Birthday,
		Occupation:  req.Occupation,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMemberView(member), "Profile updated successfully")
}
