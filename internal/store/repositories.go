// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-sync/internal/config"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
)

// Repositories groups the backend repositories.
type Repositories struct {
	Transactions TransactionRepository
	Profiles     ProfileRepository

	db *DB
}

// NewRepositories connects to Postgres, migrates and builds the
// repositories.
func NewRepositories(ctx context.Context, cfg config.ServerDB, log *logger.Logger) (*Repositories, error) {
	log.Info().Msg("creating repositories...")

	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Repositories{
		Transactions: NewTransactionRepository(db, log),
		Profiles:     NewProfileRepository(db, log),
		db:           db,
	}, nil
}

func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// ClientStorage is the client's local persistence.
type ClientStorage struct {
	Local *LocalStore

	db *DB
}

// NewClientStorage opens the SQLite database named by cfg, migrates it and
// wraps it in a [LocalStore].
func NewClientStorage(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorage, error) {
	log.Info().Msg("creating local storage...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorage{
		Local: NewLocalStore(NewSQLiteDocumentStore(db)),
		db:    db,
	}, nil
}

func (c *ClientStorage) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
