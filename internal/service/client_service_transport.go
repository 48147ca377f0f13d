// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ledger-sync/internal/adapter"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/models"
)

type remoteTransport struct {
	adapter adapter.RemoteAdapter
	enabled bool

	logger *logger.Logger
}

// NewRemoteTransport wraps remote. enabled is decided once here: a
// transport built without a backend turns every call into a logged no-op.
func NewRemoteTransport(remote adapter.RemoteAdapter, enabled bool, logger *logger.Logger) RemoteTransport {
	return &remoteTransport{adapter: remote, enabled: enabled, logger: logger}
}

func (t *remoteTransport) Enabled() bool {
	return t.enabled
}

func (t *remoteTransport) FetchRemoteTransactions(ctx context.Context, ownerID string) ([]models.Transaction, error) {
	if !t.enabled {
		return []models.Transaction{}, adapter.ErrRemoteNotConfigured
	}

	rows, err := t.adapter.FetchTransactions(ctx)
	if err != nil {
		t.logger.Warn().Err(err).Str("reason", remoteFailureReason(err)).Str("func", "remoteTransport.FetchRemoteTransactions").
			Str("owner_id", ownerID).Msg("fetching remote transactions failed")
		return []models.Transaction{}, fmt.Errorf("fetch remote transactions: %w", err)
	}

	txs := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		if row.OwnerID != "" && ownerID != "" && row.OwnerID != ownerID {
			t.logger.Warn().Str("func", "remoteTransport.FetchRemoteTransactions").
				Str("owner_id", ownerID).Str("row_owner_id", row.OwnerID).Str("id", row.ID).
				Msg("skipping row of another owner")
			continue
		}
		txs = append(txs, row.Transaction())
	}

	t.logger.Debug().Str("func", "remoteTransport.FetchRemoteTransactions").
		Str("owner_id", ownerID).Int("rows", len(txs)).Msg("remote transactions fetched")
	return txs, nil
}

func (t *remoteTransport) PushTransaction(ctx context.Context, tx models.Transaction, ownerID string, categories []models.Category, accounts []models.Account) error {
	if !t.enabled {
		return adapter.ErrRemoteNotConfigured
	}

	row := models.NewNameLookup(categories, accounts).ToRemoteRow(tx, ownerID)
	if err := t.adapter.PushTransaction(ctx, row); err != nil {
		t.logger.Warn().Err(err).Str("reason", remoteFailureReason(err)).Str("func", "remoteTransport.PushTransaction").
			Str("owner_id", ownerID).Str("id", tx.ID).Msg("pushing transaction failed")
		return fmt.Errorf("push transaction %s: %w", tx.ID, err)
	}
	return nil
}

func (t *remoteTransport) PushTransactionsBatch(ctx context.Context, txs []models.Transaction, ownerID string, categories []models.Category, accounts []models.Account) error {
	if len(txs) == 0 {
		return nil
	}
	if !t.enabled {
		return adapter.ErrRemoteNotConfigured
	}

	rows := models.NewNameLookup(categories, accounts).ToRemoteRows(txs, ownerID)
	if err := t.adapter.PushTransactions(ctx, rows); err != nil {
		t.logger.Warn().Err(err).Str("reason", remoteFailureReason(err)).Str("func", "remoteTransport.PushTransactionsBatch").
			Str("owner_id", ownerID).Int("rows", len(rows)).Msg("pushing transactions failed")
		return fmt.Errorf("push %d transactions: %w", len(rows), err)
	}
	return nil
}

func (t *remoteTransport) DeleteRemoteTransaction(ctx context.Context, id string) error {
	if !t.enabled {
		return adapter.ErrRemoteNotConfigured
	}

	err := t.adapter.DeleteTransaction(ctx, id)
	if err == nil || errors.Is(err, adapter.ErrNotFound) {
		return nil
	}

	t.logger.Warn().Err(err).Str("reason", remoteFailureReason(err)).Str("func", "remoteTransport.DeleteRemoteTransaction").
		Str("id", id).Msg("deleting remote transaction failed")
	return fmt.Errorf("delete remote transaction %s: %w", id, err)
}

func (t *remoteTransport) DeleteRemoteTransactionsBatch(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if !t.enabled {
		return adapter.ErrRemoteNotConfigured
	}

	err := t.adapter.DeleteTransactions(ctx, ids)
	if err == nil || errors.Is(err, adapter.ErrNotFound) {
		return nil
	}

	t.logger.Warn().Err(err).Str("reason", remoteFailureReason(err)).Str("func", "remoteTransport.DeleteRemoteTransactionsBatch").
		Int("ids", len(ids)).Msg("deleting remote transactions failed")
	return fmt.Errorf("delete %d remote transactions: %w", len(ids), err)
}

func (t *remoteTransport) UpsertOwnerProfile(ctx context.Context, identity models.ExternalIdentity) (string, bool) {
	if !t.enabled || identity.Empty() {
		return "", false
	}

	ownerID, err := t.adapter.UpsertProfile(ctx, identity)
	if err != nil {
		t.logger.Warn().Err(err).Str("reason", remoteFailureReason(err)).Str("func", "remoteTransport.UpsertOwnerProfile").
			Str("external_id", identity.ID).Msg("profile upsert failed")
		return "", false
	}
	if ownerID == "" {
		t.logger.Warn().Str("func", "remoteTransport.UpsertOwnerProfile").
			Str("external_id", identity.ID).Msg("backend returned an empty owner id")
		return "", false
	}

	return ownerID, true
}
