// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the hosted ledger backend.
//
// [RemoteAdapter] is the raw transport: every call returns the error it hit,
// mapped from HTTP status codes to the sentinels in errors.go so callers can
// use [errors.Is]. The failure policy (what to swallow, what to log) lives one
// layer up in the service package.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ledger-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteAdapter is the client's view of the hosted backend.
type RemoteAdapter interface {
	// SetToken stores the bearer token attached to every authenticated call.
	SetToken(token string)

	// Token returns the current bearer token, or "".
	Token() string

	// UpsertProfile creates or refreshes the profile of identity and returns
	// its owner id. The token handed out by the backend is stored via
	// SetToken.
	UpsertProfile(ctx context.Context, identity models.ExternalIdentity) (string, error)

	// FetchTransactions returns every row of the token's owner.
	FetchTransactions(ctx context.Context) ([]models.RemoteTransactionRow, error)

	// PushTransaction upserts a single row.
	PushTransaction(ctx context.Context, row models.RemoteTransactionRow) error

	// PushTransactions upserts rows in one request. An empty slice is a
	// no-op without I/O.
	PushTransactions(ctx context.Context, rows []models.RemoteTransactionRow) error

	// DeleteTransaction removes one row. Deleting an unknown id succeeds.
	DeleteTransaction(ctx context.Context, id string) error

	// DeleteTransactions removes rows in one request. An empty slice is a
	// no-op without I/O.
	DeleteTransactions(ctx context.Context, ids []string) error
}
