package services

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the services layer. Controllers map them to HTTP
// statuses; store.ErrUnavailable is the fourth kind and passes through
// unwrapped.
var (
	ErrNotFound   = errors.New("record not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

func notFound(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrNotFound}, args...)...)
}

func conflict(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrConflict}, args...)...)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
