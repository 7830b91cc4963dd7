package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrRecurringItemNotFound  = errors.New("recurring item not found")
	ErrInvalidOwnerSpaceID    = errors.New("invalid owner_space_id")
	ErrInvalidRecurringItemID = errors.New("invalid recurring item id")
	ErrInvalidTransition      = errors.New("invalid lifecycle transition")
	ErrConcurrentModification = errors.New("recurring item modified concurrently")
	ErrValidation             = errors.New("validation failed")
)

// ValidationError names the input field that was rejected.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func notFound(id string) error {
	return fmt.Errorf("%w: %s", ErrRecurringItemNotFound, id)
}
