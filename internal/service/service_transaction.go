// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/models"
)

type transactionService struct {
	transactions store.TransactionRepository

	logger *logger.Logger
}

func NewTransactionService(transactions store.TransactionRepository, logger *logger.Logger) TransactionService {
	return &transactionService{transactions: transactions, logger: logger}
}

func (s *transactionService) List(ctx context.Context, ownerID string) ([]models.RemoteTransactionRow, error) {
	if ownerID == "" {
		return nil, ErrNoOwnerInContext
	}

	rows, err := s.transactions.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("owner_id", ownerID).Msg("listing transactions failed")
		return nil, fmt.Errorf("listing transactions failed: %w", err)
	}
	return rows, nil
}

func (s *transactionService) Put(ctx context.Context, ownerID string, row models.RemoteTransactionRow) error {
	written, err := s.PutBatch(ctx, ownerID, row)
	if err != nil {
		return err
	}
	if written > 0 {
		return nil
	}

	// zero rows written: either a newer row is stored or the id is taken
	// by another owner
	owner, ok, err := s.transactions.OwnerOf(ctx, row.ID)
	if err != nil {
		return fmt.Errorf("checking transaction owner failed: %w", err)
	}
	if ok && owner != ownerID {
		logger.FromContext(ctx).Warn().
			Str("owner_id", ownerID).
			Str("transaction_id", row.ID).
			Msg("transaction id belongs to another owner")
		return store.ErrOwnerMismatch
	}
	return nil
}

func (s *transactionService) PutBatch(ctx context.Context, ownerID string, rows ...models.RemoteTransactionRow) (int64, error) {
	if ownerID == "" {
		return 0, ErrNoOwnerInContext
	}
	if len(rows) == 0 {
		return 0, nil
	}

	prepared := make([]models.RemoteTransactionRow, 0, len(rows))
	for _, row := range rows {
		row.OwnerID = ownerID
		if row.UpdatedAt == nil {
			// rows without a timestamp lose against anything stored
			epoch := time.Unix(0, 0).UTC()
			row.UpdatedAt = &epoch
		}
		prepared = append(prepared, row)
	}

	written, err := s.transactions.Upsert(ctx, ownerID, prepared...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("owner_id", ownerID).Int("rows", len(rows)).Msg("upserting transactions failed")
		return 0, fmt.Errorf("upserting transactions failed: %w", err)
	}
	return written, nil
}

func (s *transactionService) Delete(ctx context.Context, ownerID string, ids ...string) (int64, error) {
	if ownerID == "" {
		return 0, ErrNoOwnerInContext
	}
	if len(ids) == 0 {
		return 0, nil
	}

	deleted, err := s.transactions.Delete(ctx, ownerID, ids...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("owner_id", ownerID).Strs("ids", ids).Msg("deleting transactions failed")
		return 0, fmt.Errorf("deleting transactions failed: %w", err)
	}
	return deleted, nil
}
