// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// Validator validates request bodies against their struct tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator instance for the echo server.
func New() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
