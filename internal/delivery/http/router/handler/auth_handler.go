package handler

import (
	"log/slog"
	"net/http"

	"tavolo/internal/delivery/http/response"
	"tavolo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerRequest carries a member sign-up form. Field-level rules mirror the
// ones the member service enforces so obviously malformed input is rejected
// before reaching it.
type registerRequest struct {
	Name                 string `json:"name" validate:"required"`
	Kana                 string `json:"kana" validate:"required,katakana"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
	PostalCode           string `json:"postal_code" validate:"required,len=7,numeric"`
	Address              string `json:"address" validate:"required"`
	PhoneNumber          string `json:"phone_number" validate:"required,numeric,min=10,max=11"`
	Birthday             string `json:"birthday" validate:"omitempty,len=8,numeric"`
	Occupation           string `json:"occupation"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler serves member registration and both login surfaces. Member and
// administrator sessions come from disjoint credential stores and token
// scopes; a token from one surface never opens the other.
type AuthHandler struct {
	memberUC usecase.MemberUsecase
	adminUC  usecase.AdminUsecase
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(memberUC usecase.MemberUsecase, adminUC usecase.AdminUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{memberUC: memberUC, adminUC: adminUC, logger: logger}
}

// Register handles the member registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	member, err := h.memberUC.Register(c.Request().Context(), usecase.RegisterInput{
		Name:                 req.Name,
		Kana:                 req.Kana,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
		PostalCode:           req.PostalCode,
		Address:              req.Address,
		PhoneNumber:          req.PhoneNumber,
		Birthday:             req.Birthday,
		Occupation:           req.Occupation,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toMemberView(member), "Member registered successfully")
}

// Login handles the member login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	token, err := h.memberUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": token}, "Login successful")
}

// AdminLogin handles the administrator login request.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	token, err := h.adminUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": token}, "Login successful")
}
