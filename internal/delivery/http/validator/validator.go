// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator wraps a validator.Validate instance for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator ready to be assigned to echo.Echo.Validator.
func New() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	return errors.WithStack(cv.validator.Struct(i))
}
