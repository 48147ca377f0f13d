// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger-sync/internal/config"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
)

// ── sqlite document store over sqlmock ───────────────────────────────────────

func TestSQLiteDocumentStore_Get(t *testing.T) {
	db, mock := newSQLiteMock(t)
	docs := NewSQLiteDocumentStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_documents WHERE key = ?")).
		WithArgs(KeyCurrency).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`"€"`)))

	value, ok, err := docs.Get(testContext(), KeyCurrency)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"€"`, string(value))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteDocumentStore_GetMissing(t *testing.T) {
	db, mock := newSQLiteMock(t)
	docs := NewSQLiteDocumentStore(db)

	mock.ExpectQuery("SELECT value FROM kv_documents").
		WithArgs(KeyAccounts).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	value, ok, err := docs.Get(testContext(), KeyAccounts)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestSQLiteDocumentStore_PutError(t *testing.T) {
	db, mock := newSQLiteMock(t)
	docs := NewSQLiteDocumentStore(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv_documents (key,value,updated_at) VALUES (?,?,?) ON CONFLICT (key) DO UPDATE")).
		WithArgs(KeyTransactions, []byte(`[]`), sqlmock.AnyArg()).
		WillReturnError(assert.AnError)

	err := docs.Put(testContext(), KeyTransactions, []byte(`[]`))
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSQLiteDocumentStore_Delete(t *testing.T) {
	db, mock := newSQLiteMock(t)
	docs := NewSQLiteDocumentStore(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv_documents WHERE key = ?")).
		WithArgs(KeyCurrency).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, docs.Delete(testContext(), KeyCurrency))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── real sqlite ───────────────────────────────────────────────────────────────

func TestClientStorage_SQLiteFile(t *testing.T) {
	ctx := testContext()
	dsn := filepath.Join(t.TempDir(), "nested", "ledger.db")

	storage, err := NewClientStorage(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, storage.Local.Initialize(ctx))
	require.NoError(t, storage.Local.SetCurrency(ctx, "₽"))
	require.NoError(t, storage.Close())

	// reopen: data survived
	reopened, err := NewClientStorage(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	currency, err := reopened.Local.GetCurrency(ctx)
	require.NoError(t, err)
	assert.Equal(t, "₽", currency)

	accounts, err := reopened.Local.GetAccounts(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, accounts)
}

func TestClientStorage_InMemory(t *testing.T) {
	ctx := testContext()

	storage, err := NewClientStorage(ctx, config.ClientStorage{DB: config.ClientDB{DSN: InMemoryDSN}}, logger.Nop())
	require.NoError(t, err)
	defer storage.Close()

	docs := NewSQLiteDocumentStore(storage.db)
	require.NoError(t, docs.Put(ctx, "k", []byte("v1")))
	require.NoError(t, docs.Put(ctx, "k", []byte("v2")))

	value, ok, err := docs.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", string(value))

	require.NoError(t, docs.Delete(ctx, "k"))
	_, ok, err = docs.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

// ── memory document store ────────────────────────────────────────────────────

func TestMemoryDocumentStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	docs := NewMemoryDocumentStore()

	in := []byte("abc")
	require.NoError(t, docs.Put(ctx, "k", in))
	in[0] = 'X'

	out, ok, err := docs.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "abc", string(out))

	out[0] = 'Y'
	again, _, _ := docs.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestMemoryDocumentStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	docs := NewMemoryDocumentStore()
	assert.ErrorIs(t, docs.Put(ctx, "k", nil), context.Canceled)
	_, _, err := docs.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, docs.Delete(ctx, "k"), context.Canceled)
}
