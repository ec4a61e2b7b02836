// Package repo contains all database access logic for the transit card API.
// Each resource has its own file with an interface and a Postgres
// implementation. No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/metrosync/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// SQLSTATE class 23 codes: integrity constraint violations.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// writeError translates a Postgres constraint violation into a domain
// sentinel using the structured SQLSTATE code, never the message text.
//
//   - unique violations always become domain.ErrConflict
//   - check violations always become domain.ErrValidation
//   - foreign-key violations become onFK, which differs by operation: an
//     INSERT referencing a missing parent is domain.ErrNotFound, while a
//     DELETE blocked by dependent rows is domain.ErrConflict
//
// All other errors are returned unchanged.
func writeError(err error, onFK error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: constraint %s", domain.ErrConflict, pgErr.ConstraintName)
	case pgCheckViolation:
		return fmt.Errorf("%w: constraint %s", domain.ErrValidation, pgErr.ConstraintName)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: constraint %s", onFK, pgErr.ConstraintName)
	}
	return err
}
