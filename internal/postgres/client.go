package postgres

import (
	"context"
	"fmt"

	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // goqu dialect
	_ "github.com/jackc/pgx/v5/stdlib"                  // pgx driver
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // pq driver

	"library-circulation/internal/config"
)

const dialect = "postgres"

const (
	defaultMaxOpenConnections = 50
	defaultMaxIdleConnections = 10
)

// Client provides relational storage for the circulation service.
// Every mutating method runs inside its own transaction.
type Client struct {
	db *sqlx.DB
}

// New opens a connection pool against the configured database and
// verifies it with a ping.
func New(ctx context.Context, cfg config.Database) (*Client, error) {
	db, err := sqlx.Open(cfg.DriverName(), cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(defaultMaxOpenConnections)
	db.SetMaxIdleConns(defaultMaxIdleConnections)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Client{db: db}, nil
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.db.Close()
}

// withTx runs fn inside a transaction, committing on success and
// rolling back on any error or panic.
func (c *Client) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := c.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
