// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	domainerrors "tavolo/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// uuidParam parses a path parameter as a UUID.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a valid UUID")
	}

	return id, nil
}

// pageQuery reads the page query parameter, defaulting to the first page.
func pageQuery(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}

	return page
}
