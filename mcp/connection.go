package mcp

import (
	"context"
	"database/sql"
	"fmt"
)

// DB is the slice of *sql.DB the adapter uses. *sql.DB satisfies it; tests
// wrap it to observe which statements are issued.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PingContext(ctx context.Context) error
	Close() error
}

// OpenDB opens and verifies the connection pool for the given driver.
// The driver must already be registered (see the blank imports in main).
func OpenDB(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnecting, err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(DBMaxOpenConns)
	db.SetMaxIdleConns(DBMaxIdleConns)
	db.SetConnMaxLifetime(DBConnMaxLifetime)

	// Test connection with timeout
	pingCtx, cancel := context.WithTimeout(ctx, DBPingTimeout)
	defer cancel()

	if err = db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrTestingConnection, err)
	}

	return db, nil
}
