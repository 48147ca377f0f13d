// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-ledger-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TransactionService is the backend's view of an owner's transactions.
type TransactionService interface {
	List(ctx context.Context, ownerID string) ([]models.RemoteTransactionRow, error)

	// Put upserts one row. A row that loses to a newer stored row is a
	// silent no-op; a row owned by someone else is ErrOwnerMismatch.
	Put(ctx context.Context, ownerID string, row models.RemoteTransactionRow) error

	// PutBatch upserts rows and returns how many were written.
	PutBatch(ctx context.Context, ownerID string, rows ...models.RemoteTransactionRow) (int64, error)

	// Delete removes the owner's rows; unknown ids are not an error.
	Delete(ctx context.Context, ownerID string, ids ...string) (int64, error)
}

type ProfileService interface {
	// Upsert creates the profile on first sign-in and refreshes it on every
	// later one. The owner id never changes once assigned.
	Upsert(ctx context.Context, identity models.ExternalIdentity) (models.OwnerProfile, error)
}

type AuthService interface {
	IssueToken(ctx context.Context, ownerID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.BuildInfo
}
