// Package validator adapts go-playground/validator to Echo's Validator hook.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomValidator wraps a validator instance for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates the validator Echo calls for every c.Validate invocation.
func New() echo.Validator {
	return &CustomValidator{validator: validator.New()}
}

// Validate validates the given struct against its `validate` tags.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validator.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
