// Package validator adapts go-playground/validator to echo's Validator
// interface and registers the project's custom rules.
package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var katakanaPattern = regexp.MustCompile(`^[ァ-ヶー\s　]+$`)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the request validator used by every handler's Bind+Validate pair.
func New() echo.Validator {
	validate := validator.New()

	// katakana accepts full-width katakana plus spaces, used for name readings.
	_ = validate.RegisterValidation("katakana", func(fl validator.FieldLevel) bool {
		return katakanaPattern.MatchString(fl.Field().String())
	})

	return &echoValidator{validate: validate}
}

func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.Wrap(err, "request validation failed")
	}

	return nil
}
