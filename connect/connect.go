package connect

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/microsoft/go-mssqldb"
	_ "modernc.org/sqlite"

	"github.com/zoobzio/sqlrest"
	"github.com/zoobzio/sqlrest/mariadb"
	"github.com/zoobzio/sqlrest/mssql"
	"github.com/zoobzio/sqlrest/postgres"
	"github.com/zoobzio/sqlrest/sqlite"
)

// Handle pairs an open database with a Cursor over it.
type Handle struct {
	DB     *sql.DB
	Cursor *sqlrest.Cursor
}

// Close closes the underlying database.
func (h *Handle) Close() error {
	return h.DB.Close()
}

// Resolve maps a configured driver name to the database/sql driver name and
// dialect.
func Resolve(driver string) (string, sqlrest.Dialect, error) {
	switch strings.ToLower(driver) {
	case "postgres", "postgresql", "pgx":
		return "pgx", postgres.New(), nil
	case "sqlite", "sqlite3":
		return "sqlite", sqlite.New(), nil
	case "mariadb", "mysql":
		return "mysql", mariadb.New(), nil
	case "mssql", "sqlserver":
		return "sqlserver", mssql.New(), nil
	default:
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

// Open opens the configured database, pings it and returns a Handle. The
// ping is retried RetryAttempts times, waiting longer after each failure.
// When cfg.LogQueries is set, commands are logged through logger at debug
// level.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*Handle, error) {
	if cfg.DSN == "" {
		return nil, ErrEmptyDSN
	}
	driver, dialect, err := Resolve(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, errors.Join(ErrFailedToOpenDBConnection, err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxConnLifetime > 0 {
		db.SetConnMaxLifetime(cfg.MaxConnLifetime)
	}
	if driver == "sqlite" && isMemoryDSN(cfg.DSN) {
		// Each connection to an in-memory sqlite DSN opens its own empty
		// database, so the pool is pinned to one long-lived connection.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	}

	if err := ping(ctx, db, cfg); err != nil {
		_ = db.Close()
		return nil, err
	}

	var opts []sqlrest.Option
	if cfg.LogQueries {
		opts = append(opts, sqlrest.WithLogger(sqlrest.NewSlogLogger(logger)))
	}

	return &Handle{
		DB:     db,
		Cursor: sqlrest.Wrap(db, dialect, opts...),
	}, nil
}

func isMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// ping waits RetryInterval after the first failure, twice that after the
// second, and so on.
func ping(ctx context.Context, db *sql.DB, cfg Config) error {
	attempts := max(cfg.RetryAttempts, 1)

	var lastErr error
	for i := range attempts {
		if lastErr = db.PingContext(ctx); lastErr == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return errors.Join(ErrFailedToOpenDBConnection, ctx.Err())
		case <-time.After(time.Duration(i+1) * cfg.RetryInterval):
		}
	}
	return errors.Join(ErrFailedToOpenDBConnection, lastErr)
}

// Healthcheck returns a closure that pings the database, for use in health
// endpoints.
func Healthcheck(db *sql.DB) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
