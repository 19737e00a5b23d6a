package sqlstore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

// openTestDB opens a migrated in-memory SQLite database closed at test end.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, DialectSQLite, ":memory:")
	require.NoError(t, err, "Failed to open sqlite database")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(ctx, db, DialectSQLite), "Failed to apply migrations")
	return db
}

func strPtr(s string) *string { return &s }
