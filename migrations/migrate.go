// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations holds the embedded goose migrations for the client's
// SQLite document table and the backend's Postgres schema.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

// Dialect selects the migration set and the goose dialect.
type Dialect string

const (
	SQLite   Dialect = "sqlite3"
	Postgres Dialect = "pgx"
)

var (
	//go:embed sqlite/*.sql
	sqliteMigrations embed.FS

	//go:embed postgres/*.sql
	postgresMigrations embed.FS

	// goose keeps its base FS and dialect in package globals.
	gooseMu sync.Mutex
)

var (
	ErrNilDB          = errors.New("migration error: db is nil")
	ErrUnknownDialect = errors.New("migration error: unknown dialect")
)

// Migrate applies every pending migration of dialect to db.
func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return ErrNilDB
	}

	var (
		fsys embed.FS
		dir  string
	)
	switch dialect {
	case SQLite:
		fsys, dir = sqliteMigrations, "sqlite"
	case Postgres:
		fsys, dir = postgresMigrations, "postgres"
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
