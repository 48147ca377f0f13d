// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-ledger-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// RemoteTransport applies the client's failure policy on top of the raw
// adapter. Nothing here panics and no error is meant for the user: errors
// are returned only so the sync pass can tell a benign no-op from success.
type RemoteTransport interface {
	// Enabled reports whether a backend is configured at all.
	Enabled() bool

	// FetchRemoteTransactions returns the owner's remote transactions. On
	// failure the list is empty (never nil) and the error is logged.
	FetchRemoteTransactions(ctx context.Context, ownerID string) ([]models.Transaction, error)

	// PushTransaction upserts tx with category and account names resolved
	// from the given lookup tables.
	PushTransaction(ctx context.Context, tx models.Transaction, ownerID string, categories []models.Category, accounts []models.Account) error

	// PushTransactionsBatch is PushTransaction for many records; an empty
	// list is a no-op.
	PushTransactionsBatch(ctx context.Context, txs []models.Transaction, ownerID string, categories []models.Category, accounts []models.Account) error

	// DeleteRemoteTransaction is idempotent: an unknown id succeeds.
	DeleteRemoteTransaction(ctx context.Context, id string) error

	// DeleteRemoteTransactionsBatch is idempotent; an empty list is a no-op.
	DeleteRemoteTransactionsBatch(ctx context.Context, ids []string) error

	// UpsertOwnerProfile returns the owner id for identity, or ok=false on
	// any failure.
	UpsertOwnerProfile(ctx context.Context, identity models.ExternalIdentity) (ownerID string, ok bool)
}

// IdentityResolver turns an external identity into an owner id.
type IdentityResolver interface {
	Resolve(ctx context.Context, identity models.ExternalIdentity) (ownerID string, ok bool)
}

// TransactionMerger combines local and remote records.
type TransactionMerger interface {
	Merge(local, remote []models.Transaction) []models.Transaction
}

// IDGenerator hands out new transaction ids.
type IDGenerator interface {
	Generate() string
}
