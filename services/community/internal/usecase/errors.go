package usecase

import (
	"errors"
	"fmt"
)

// Error kinds the transport layer maps onto status codes. Use cases wrap them
// with detail; callers match with errors.Is.
var (
	ErrAuthRequired     = errors.New("authentication required")
	ErrValidation       = errors.New("validation failed")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFoundError(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}
