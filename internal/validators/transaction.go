// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-sync/models"
)

// Field names accepted by [LedgerValidator].
const (
	FieldID          = "id"
	FieldOwnerID     = "owner_id"
	FieldType        = "type"
	FieldAmount      = "amount"
	FieldCategoryID  = "category_id"
	FieldAccountID   = "account_id"
	FieldDestination = "to_account_id"
	FieldDate        = "date"
	FieldRows        = "rows"
	FieldIDs         = "ids"
	FieldLength      = "length"
	FieldExternalID  = "external_id"
	FieldName        = "name"
	FieldKind        = "kind"
)

var transactionFields = []string{
	FieldID, FieldType, FieldAmount, FieldCategoryID, FieldAccountID, FieldDestination, FieldDate,
}

// LedgerValidator validates transactions, accounts, categories and the
// backend's request bodies. A transfer whose destination equals its source
// is accepted.
type LedgerValidator struct{}

func NewLedgerValidator() Validator {
	return &LedgerValidator{}
}

func (v *LedgerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Transaction:
		return v.validateTransaction(value, fields...)
	case *models.Transaction:
		return v.validateTransaction(*value, fields...)

	case models.RemoteTransactionRow:
		return v.validateRow(value, fields...)
	case *models.RemoteTransactionRow:
		return v.validateRow(*value, fields...)

	case models.TransactionBatchRequest:
		return v.validateBatch(value, fields...)
	case *models.TransactionBatchRequest:
		return v.validateBatch(*value, fields...)

	case models.DeleteBatchRequest:
		return v.validateDeleteBatch(value, fields...)
	case *models.DeleteBatchRequest:
		return v.validateDeleteBatch(*value, fields...)

	case models.ExternalIdentity:
		return v.validateIdentity(value, fields...)
	case *models.ExternalIdentity:
		return v.validateIdentity(*value, fields...)

	case models.Account:
		return v.validateAccount(value, fields...)
	case models.Category:
		return v.validateCategory(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *LedgerValidator) validateTransaction(tx models.Transaction, fields ...string) error {
	if len(fields) == 0 {
		fields = transactionFields
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if tx.ID == "" {
				return ErrInvalidID
			}
		case FieldType:
			if !tx.Type.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidType, tx.Type)
			}
		case FieldAmount:
			if tx.Amount.IsNegative() {
				return ErrNegativeAmount
			}
		case FieldCategoryID:
			if tx.CategoryID == "" {
				return ErrEmptyCategory
			}
		case FieldAccountID:
			if tx.AccountID == "" {
				return ErrEmptyAccount
			}
		case FieldDestination:
			hasDestination := tx.ToAccountID != nil && *tx.ToAccountID != ""
			if tx.IsTransfer() && !hasDestination {
				return ErrMissingDestination
			}
			if !tx.IsTransfer() && tx.ToAccountID != nil {
				return ErrUnexpectedDestination
			}
		case FieldDate:
			if tx.Date.IsZero() {
				return ErrEmptyDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateRow applies the transaction rules to a remote row; FieldOwnerID
// is only checked when asked for, since the backend overwrites it.
func (v *LedgerValidator) validateRow(row models.RemoteTransactionRow, fields ...string) error {
	if len(fields) == 0 {
		fields = transactionFields
	}

	txFields := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == FieldOwnerID {
			if row.OwnerID == "" {
				return ErrInvalidOwnerID
			}
			continue
		}
		txFields = append(txFields, f)
	}

	return v.validateTransaction(row.Transaction(), txFields...)
}

func (v *LedgerValidator) validateBatch(req models.TransactionBatchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRows, FieldLength}
	}

	for _, f := range fields {
		switch f {
		case FieldRows:
			if len(req.Rows) == 0 {
				return ErrEmptyRows
			}
			for i, row := range req.Rows {
				if err := v.validateRow(row); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		case FieldLength:
			if req.Length != len(req.Rows) {
				return ErrLengthMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LedgerValidator) validateDeleteBatch(req models.DeleteBatchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIDs, FieldLength}
	}

	for _, f := range fields {
		switch f {
		case FieldIDs:
			if len(req.IDs) == 0 {
				return ErrEmptyIDs
			}
			for i, id := range req.IDs {
				if id == "" {
					return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidID)
				}
			}
		case FieldLength:
			if req.Length != len(req.IDs) {
				return ErrLengthMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LedgerValidator) validateIdentity(identity models.ExternalIdentity, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldExternalID}
	}

	for _, f := range fields {
		switch f {
		case FieldExternalID:
			if identity.Empty() {
				return ErrEmptyExternalID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LedgerValidator) validateAccount(account models.Account, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldType}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if account.ID == "" {
				return ErrInvalidID
			}
		case FieldName:
			if account.Name == "" {
				return ErrInvalidAccountName
			}
		case FieldType:
			if !account.Type.Valid() {
				return ErrInvalidAccountType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LedgerValidator) validateCategory(category models.Category, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldKind}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if category.ID == "" {
				return ErrInvalidID
			}
		case FieldName:
			if category.Name == "" {
				return ErrInvalidCategoryName
			}
		case FieldKind:
			if !category.Kind.Valid() {
				return ErrInvalidCategoryKind
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
