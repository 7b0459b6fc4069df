package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("missing required fields")
	ErrCorruptStore = errors.New("project store is corrupt")
)

// ValidationError names the first required field that was missing.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, e.Field)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
