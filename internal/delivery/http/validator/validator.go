// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound input DTOs.
package validator

import (
	domainerrors "farmgate/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds the echo validator used by the HTTP server.
func New() echo.Validator {
	return &echoValidator{validate: playground.New()}
}

// Validate checks the struct tags of an input DTO. Failures surface as
// the application's validation error so the error middleware translates
// them to the documented 400 body.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidation.WrapMessage(err.Error())
	}

	return nil
}
