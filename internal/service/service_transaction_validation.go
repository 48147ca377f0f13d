// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-sync/internal/validators"
	"github.com/MKhiriev/go-ledger-sync/models"
)

// TransactionServiceWrapper defines middleware composition for
// TransactionService, such as validation.
type TransactionServiceWrapper interface {
	Wrap(TransactionService) TransactionService
}

// TransactionValidationService rejects malformed rows before they reach
// the wrapped service.
type TransactionValidationService struct {
	inner     TransactionService
	validator validators.Validator
}

func NewTransactionValidationService() TransactionServiceWrapper {
	return &TransactionValidationService{
		validator: validators.NewLedgerValidator(),
	}
}

func (v *TransactionValidationService) List(ctx context.Context, ownerID string) ([]models.RemoteTransactionRow, error) {
	return v.inner.List(ctx, ownerID)
}

func (v *TransactionValidationService) Put(ctx context.Context, ownerID string, row models.RemoteTransactionRow) error {
	if err := v.validator.Validate(ctx, row); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Put(ctx, ownerID, row)
}

func (v *TransactionValidationService) PutBatch(ctx context.Context, ownerID string, rows ...models.RemoteTransactionRow) (int64, error) {
	for _, row := range rows {
		if err := v.validator.Validate(ctx, row); err != nil {
			return 0, fmt.Errorf("%w: row %s: %w", ErrInvalidDataProvided, row.ID, err)
		}
	}
	return v.inner.PutBatch(ctx, ownerID, rows...)
}

func (v *TransactionValidationService) Delete(ctx context.Context, ownerID string, ids ...string) (int64, error) {
	for _, id := range ids {
		if id == "" {
			return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidID)
		}
	}
	return v.inner.Delete(ctx, ownerID, ids...)
}

func (v *TransactionValidationService) Wrap(inner TransactionService) TransactionService {
	v.inner = inner
	return v
}
