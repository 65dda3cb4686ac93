// Package postgres owns the relational store: the pooled connection and the
// repositories over the usuarios, registros, and log tables.
package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// At most 10 concurrent connections; callers queue without bound.
const (
	maxOpenConns = 10
	maxIdleConns = 10
	connLifetime = 30 * time.Minute
	pingTimeout  = 10 * time.Second
)

//go:embed schema.sql
var schemaSQL string

// Open establishes the pooled connection, verifies it with a ping, and
// applies the idempotent schema bootstrap. Any failure here aborts startup.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres schema: %w", err)
	}

	return db, nil
}
