package repo

import (
	"context"
	"path/filepath"
	"testing"

	testpg "github-rebac/internal/tests/postgres"
	"github-rebac/migrations"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// storeSuite runs fn against a migrated sqlite database and, unless -short is
// set, against a postgres container as well.
func storeSuite(t *testing.T, fn func(t *testing.T, db *sqlx.DB)) {
	t.Run(DriverSQLite, func(t *testing.T) {
		fn(t, openSQLite(t))
	})

	t.Run(DriverPostgres, func(t *testing.T) {
		if testing.Short() {
			t.Skip("skipping integration test")
		}

		ctx := context.Background()
		dsn, teardown, err := testpg.Setup(ctx)
		require.NoError(t, err)
		t.Cleanup(teardown)

		db, err := Open(ctx, DriverPostgres, dsn)
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })

		require.NoError(t, migrations.Run(ctx, db.DB, DriverPostgres))
		fn(t, db)
	})
}

func openSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	db, err := Open(ctx, DriverSQLite, filepath.Join(t.TempDir(), "rebac_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Run(ctx, db.DB, DriverSQLite))
	return db
}
