package repo

import (
	"context"
	"fmt"
	"strings"

	"github-rebac/internal/lib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know by default.
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Open connects to the configured store. Queries in this package are written
// with '?' bindvars and rebound for the driver by sqlx.
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	const op = "repo.Open"

	switch driver {
	case DriverPostgres:
		db, err := sqlx.ConnectContext(ctx, DriverPostgres, dsn)
		if err != nil {
			return nil, lib.Err(op, err)
		}
		return db, nil

	case DriverSQLite:
		db, err := sqlx.ConnectContext(ctx, DriverSQLite, sqliteDSN(dsn))
		if err != nil {
			return nil, lib.Err(op, err)
		}
		// one writer at a time; transactions hold the only connection
		db.SetMaxOpenConns(1)
		return db, nil

	default:
		return nil, fmt.Errorf("%s: unsupported driver %q", op, driver)
	}
}

func sqliteDSN(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
