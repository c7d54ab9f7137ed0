package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/chairulsabri/backend-windows-explorer/internal/repository"
)

var (
	// ErrNotFound is returned when the requested id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation wraps every rejected input: malformed fields, unknown sort keys,
	// dangling parent references and folder cycles.
	ErrValidation = errors.New("validation failed")
	// ErrStorageUnavailable is returned by snapshot operations when no object storage is configured.
	ErrStorageUnavailable = errors.New("object storage is not configured")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// mapRepoError translates repository errors into service errors; anything else passes through wrapped.
func mapRepoError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case errors.Is(err, repository.ErrUnknownSortKey), errors.Is(err, repository.ErrInvalidReference):
		return fmt.Errorf("%w: %v", ErrValidation, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
