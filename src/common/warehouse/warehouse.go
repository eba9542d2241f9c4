package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	sf "github.com/snowflakedb/gosnowflake"
)

// Config holds the warehouse connection surface. Values come from
// configuration, never from code.
type Config struct {
	Account   string
	User      string
	Password  string
	Role      string
	Warehouse string
	Database  string
	Schema    string
}

// Client wraps a database/sql handle to the warehouse with an explicit
// create/use/close lifecycle.
type Client struct {
	db *sql.DB
}

// Open builds a Snowflake DSN from the config and connects.
func Open(cfg Config) (*Client, error) {
	dsn, err := sf.DSN(&sf.Config{
		Account:   cfg.Account,
		User:      cfg.User,
		Password:  cfg.Password,
		Role:      cfg.Role,
		Warehouse: cfg.Warehouse,
		Database:  cfg.Database,
		Schema:    cfg.Schema,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build warehouse DSN")
	}

	db, err := sql.Open("snowflake", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open warehouse connection")
	}

	return NewClient(db), nil
}

// NewClient wraps an existing handle. Used by tests with a stub database.
func NewClient(db *sql.DB) *Client {
	return &Client{db: db}
}

func (c *Client) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return c.db.QueryContext(ctx, query, args...)
}

// Overwrite replaces the full contents of table with the given rows inside
// one transaction: the table ends up fully replaced or untouched.
func (c *Client) Overwrite(ctx context.Context, table string, columns []string, rows [][]any) error {
	for i, row := range rows {
		if len(row) != len(columns) {
			return errors.Errorf("row %d has %d values, want %d", i, len(row), len(columns))
		}
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to begin overwrite of %s", table)
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
		tx.Rollback()
		return errors.Wrapf(err, "failed to clear %s", table)
	}

	if len(rows) > 0 {
		placeholder := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ") + ")"
		values := make([]string, len(rows))
		args := make([]any, 0, len(rows)*len(columns))
		for i, row := range rows {
			values[i] = placeholder
			args = append(args, row...)
		}

		insert := fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES %s",
			table,
			strings.Join(columns, ", "),
			strings.Join(values, ", "),
		)
		if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "failed to insert into %s", table)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrapf(err, "failed to commit overwrite of %s", table)
	}

	return nil
}

func (c *Client) Close() error {
	return c.db.Close()
}
