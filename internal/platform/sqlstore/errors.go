package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/restaurant-api/internal/store"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// MapError maps a database error to a store error for the given entity and
// operation. notFound is returned for sql.ErrNoRows.
func MapError(err error, entity, operation string, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return store.NewStoreError(entity, operation, "request cancelled", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return store.NewStoreError(entity, operation, "duplicate key",
				fmt.Errorf("%w: %v", store.ErrDuplicate, err))
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return store.NewStoreError(entity, operation, "constraint violation",
				fmt.Errorf("%w: %s: %v", store.ErrInvalidEntity, pgErr.ConstraintName, err))
		}
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return store.NewStoreError(entity, operation, "duplicate key",
				fmt.Errorf("%w: %v", store.ErrDuplicate, err))
		}
		// Remaining constraint failures, including primary codes reported
		// without their extended code.
		if liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			return store.NewStoreError(entity, operation, "constraint violation",
				fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
		}
	}

	return store.NewStoreError(entity, operation, "database error", err)
}

// checkRowsAffected returns notFound when an UPDATE or DELETE touched no rows.
func checkRowsAffected(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
