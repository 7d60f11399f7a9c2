package models

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned, wrapped in an *InputError, whenever an option
// input falls outside its domain.
var ErrInvalidInput = errors.New("invalid input")

type InputError struct {
	Field Field
	Value interface{}
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s = %v", ErrInvalidInput, e.Field, e.Value)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(field Field, value interface{}) error {
	return &InputError{Field: field, Value: value}
}
