// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-ledger-sync/models"
)

// disabledRemoteAdapter stands in when no backend address is configured.
type disabledRemoteAdapter struct{}

func (disabledRemoteAdapter) SetToken(string) {}

func (disabledRemoteAdapter) Token() string { return "" }

func (disabledRemoteAdapter) UpsertProfile(context.Context, models.ExternalIdentity) (string, error) {
	return "", ErrRemoteNotConfigured
}

func (disabledRemoteAdapter) FetchTransactions(context.Context) ([]models.RemoteTransactionRow, error) {
	return nil, ErrRemoteNotConfigured
}

func (disabledRemoteAdapter) PushTransaction(context.Context, models.RemoteTransactionRow) error {
	return ErrRemoteNotConfigured
}

func (disabledRemoteAdapter) PushTransactions(context.Context, []models.RemoteTransactionRow) error {
	return ErrRemoteNotConfigured
}

func (disabledRemoteAdapter) DeleteTransaction(context.Context, string) error {
	return ErrRemoteNotConfigured
}

func (disabledRemoteAdapter) DeleteTransactions(context.Context, []string) error {
	return ErrRemoteNotConfigured
}
