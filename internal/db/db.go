// Package db opens the PostgreSQL connection and applies pending
// migrations on startup.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func Open(dsn, migrationsDir string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if migrationsDir != "" {
		if err := goose.Up(conn, migrationsDir); err != nil {
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	return conn, nil
}
