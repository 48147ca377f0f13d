// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
)

const documentsTable = "kv_documents"

// sqliteDocumentStore keeps documents in the kv_documents table.
type sqliteDocumentStore struct {
	db  *DB
	now func() time.Time
}

// NewSQLiteDocumentStore returns a [DocumentStore] over a migrated client
// database.
func NewSQLiteDocumentStore(db *DB) DocumentStore {
	return &sqliteDocumentStore{db: db, now: time.Now}
}

func (s *sqliteDocumentStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder().
		Select("value").
		From(documentsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, false, nil
	case err != nil:
		log.Err(err).Str("func", "sqliteDocumentStore.Get").Str("key", key).Msg("failed to read document")
		return nil, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (s *sqliteDocumentStore) Put(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder().
		Insert(documentsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, s.now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteDocumentStore.Put").Str("key", key).Msg("failed to write document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteDocumentStore) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder().
		Delete(documentsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteDocumentStore.Delete").Str("key", key).Msg("failed to delete document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// memoryDocumentStore is a process-local [DocumentStore]. Values are copied
// on the way in and out.
type memoryDocumentStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryDocumentStore returns an empty in-memory [DocumentStore].
func NewMemoryDocumentStore() DocumentStore {
	return &memoryDocumentStore{docs: make(map[string][]byte)}
}

func (m *memoryDocumentStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.docs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *memoryDocumentStore) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.docs[key] = append([]byte(nil), value...)
	return nil
}

func (m *memoryDocumentStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.docs, key)
	return nil
}
