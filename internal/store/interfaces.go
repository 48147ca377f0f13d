// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds both persistence layers of the ledger: the client's
// local document store and the backend's Postgres repositories.
package store

import (
	"context"

	"github.com/MKhiriev/go-ledger-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentStore persists whole JSON documents under string keys. A Put or
// Delete that returns nil is durable.
type DocumentStore interface {
	// Get returns the document stored under key. ok is false when the key
	// has never been written or was deleted.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// LocalStorage is the typed local store the sync orchestrator works
// against. Every write is durable when it returns nil.
type LocalStorage interface {
	GetTransactions(ctx context.Context) ([]models.Transaction, error)
	// SaveTransaction upserts by id.
	SaveTransaction(ctx context.Context, tx models.Transaction) error
	// DeleteTransaction is a no-op for unknown ids.
	DeleteTransaction(ctx context.Context, id string) error
	// SetTransactions replaces the whole collection.
	SetTransactions(ctx context.Context, txs []models.Transaction) error

	GetAccounts(ctx context.Context) ([]models.Account, error)
	SaveAccount(ctx context.Context, account models.Account) error
	// DeleteAccount removes the account and every transaction whose source
	// or destination is that account. It returns the removed transaction
	// ids.
	DeleteAccount(ctx context.Context, id string) ([]string, error)

	GetCategories(ctx context.Context) ([]models.Category, error)
	SaveCategory(ctx context.Context, category models.Category) error
	DeleteCategory(ctx context.Context, id string) error

	GetPendingDeletes(ctx context.Context) ([]string, error)
	// AddPendingDelete enqueues id once; duplicates are ignored.
	AddPendingDelete(ctx context.Context, id string) error
	ClearPendingDeletes(ctx context.Context) error
	// RemovePendingDeletes drops exactly the given ids and keeps the rest.
	RemovePendingDeletes(ctx context.Context, ids ...string) error

	IsInitialized(ctx context.Context) (bool, error)
	// Initialize seeds default accounts and categories the first time it
	// runs against an empty store.
	Initialize(ctx context.Context) error

	GetCurrency(ctx context.Context) (string, error)
	SetCurrency(ctx context.Context, symbol string) error
}

// TransactionRepository is the backend's transactions table.
type TransactionRepository interface {
	// ListByOwner returns every row of ownerID.
	ListByOwner(ctx context.Context, ownerID string) ([]models.RemoteTransactionRow, error)
	// Upsert writes rows keyed by id. A stored row wins when its updated_at
	// is newer; a row owned by someone else is never touched. It returns
	// the number of rows actually written.
	Upsert(ctx context.Context, ownerID string, rows ...models.RemoteTransactionRow) (int64, error)
	// Delete removes the owner's rows with the given ids. Unknown ids are
	// not an error.
	Delete(ctx context.Context, ownerID string, ids ...string) (int64, error)
	// OwnerOf returns the owner of a stored row; ok is false when absent.
	OwnerOf(ctx context.Context, id string) (ownerID string, ok bool, err error)
}

// ProfileRepository is the backend's profiles table.
type ProfileRepository interface {
	// Upsert inserts a profile or refreshes the one with the same external
	// id, returning the stored owner id.
	Upsert(ctx context.Context, profile models.OwnerProfile) (string, error)
	GetByExternalID(ctx context.Context, externalID string) (models.OwnerProfile, error)
}

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
