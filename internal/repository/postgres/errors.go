package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/chairulsabri/backend-windows-explorer/internal/repository"
)

// 23503 = foreign_key_violation
const pgForeignKeyViolation = "23503"

// IsForeignKeyError checks if err is a foreign key violation.
func IsForeignKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return false
}

// IsNoRowsError checks if err is a "no rows" error.
func IsNoRowsError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// mapWriteError turns a foreign key violation into repository.ErrInvalidReference.
func mapWriteError(err error) error {
	if IsForeignKeyError(err) {
		return fmt.Errorf("%w: %v", repository.ErrInvalidReference, err)
	}
	return err
}
