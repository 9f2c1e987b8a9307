package pgconv

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeExclusionViolation = "23P01"
	pgErrCodeForeignKeyViolated = "23503"
)

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// IsUniqueViolation reports a unique-constraint violation (23505).
func IsUniqueViolation(err error) bool {
	return hasPgCode(err, pgErrCodeUniqueViolation)
}

// IsExclusionViolation reports an exclusion-constraint violation
// (23P01), raised by the overlap constraint on active bookings.
func IsExclusionViolation(err error) bool {
	return hasPgCode(err, pgErrCodeExclusionViolation)
}

func IsForeignKeyViolation(err error) bool {
	return hasPgCode(err, pgErrCodeForeignKeyViolated)
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
