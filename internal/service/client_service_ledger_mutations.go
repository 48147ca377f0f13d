// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ledger-sync/internal/adapter"
	"github.com/MKhiriev/go-ledger-sync/models"
)

// AddTransaction stores a new transaction and returns it as stored. An empty
// id is generated; both timestamps are set to now. The call returns once the
// record is durable locally; the push to the backend runs in the
// background.
func (l *Ledger) AddTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	if err := l.requireLoaded(); err != nil {
		return models.Transaction{}, err
	}

	tx = tx.Clone()
	if tx.ID == "" {
		tx.ID = l.ids.Generate()
	}
	now := l.timestamp()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	if err := l.validator.Validate(ctx, tx); err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}

	l.localMu.Lock()
	l.mu.RLock()
	_, exists := l.data.transaction(tx.ID)
	l.mu.RUnlock()
	if exists {
		l.localMu.Unlock()
		return models.Transaction{}, ErrTransactionAlreadyExists
	}
	if err := l.local.SaveTransaction(ctx, tx); err != nil {
		l.localMu.Unlock()
		return models.Transaction{}, err
	}
	l.mu.Lock()
	l.data.apply(putTransactionCommand{tx: tx})
	l.mu.Unlock()
	l.localMu.Unlock()

	l.pushInBackground(ctx, tx)
	return tx.Clone(), nil
}

// UpdateTransaction replaces an existing transaction. CreatedAt is kept from
// the stored record and UpdatedAt never moves backwards.
func (l *Ledger) UpdateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	if err := l.requireLoaded(); err != nil {
		return models.Transaction{}, err
	}

	l.localMu.Lock()
	l.mu.RLock()
	prev, ok := l.data.transaction(tx.ID)
	l.mu.RUnlock()
	if !ok {
		l.localMu.Unlock()
		return models.Transaction{}, ErrTransactionNotFound
	}

	tx = tx.Clone()
	tx.CreatedAt = prev.CreatedAt
	tx.UpdatedAt = l.timestamp()
	if tx.UpdatedAt.Before(prev.UpdatedAt) {
		tx.UpdatedAt = prev.UpdatedAt
	}

	if err := l.validator.Validate(ctx, tx); err != nil {
		l.localMu.Unlock()
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}
	if err := l.local.SaveTransaction(ctx, tx); err != nil {
		l.localMu.Unlock()
		return models.Transaction{}, err
	}
	l.mu.Lock()
	l.data.apply(putTransactionCommand{tx: tx})
	l.mu.Unlock()
	l.localMu.Unlock()

	l.pushInBackground(ctx, tx)
	return tx.Clone(), nil
}

// RemoveTransaction deletes a transaction locally. With an owner the id is
// queued durably first, so a failed live delete is retried by the next
// pass. Removing an unknown id is not an error.
func (l *Ledger) RemoveTransaction(ctx context.Context, id string) error {
	if err := l.requireLoaded(); err != nil {
		return err
	}
	ownerID, _ := l.session()

	l.localMu.Lock()
	if ownerID != "" {
		if err := l.local.AddPendingDelete(ctx, id); err != nil {
			l.localMu.Unlock()
			return err
		}
	}
	if err := l.local.DeleteTransaction(ctx, id); err != nil {
		l.localMu.Unlock()
		return err
	}
	l.mu.Lock()
	l.data.apply(removeTransactionCommand{id: id})
	l.mu.Unlock()
	l.removed[id] = struct{}{}
	if l.passRemoved != nil {
		l.passRemoved[id] = struct{}{}
	}
	l.localMu.Unlock()

	if ownerID != "" {
		l.deleteInBackground(ctx, id)
	}
	return nil
}

// SaveAccount upserts an account. Accounts are local only.
func (l *Ledger) SaveAccount(ctx context.Context, account models.Account) (models.Account, error) {
	if err := l.requireLoaded(); err != nil {
		return models.Account{}, err
	}
	if account.ID == "" {
		account.ID = l.ids.Generate()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = l.timestamp()
	}
	if err := l.validator.Validate(ctx, account); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidAccount, err)
	}

	l.localMu.Lock()
	defer l.localMu.Unlock()
	if err := l.local.SaveAccount(ctx, account); err != nil {
		return models.Account{}, err
	}
	l.mu.Lock()
	l.data.apply(putAccountCommand{account: account})
	l.mu.Unlock()
	return account, nil
}

// RemoveAccount deletes the account and, locally, every transaction that
// touches it. The cascade is not propagated to the backend.
func (l *Ledger) RemoveAccount(ctx context.Context, id string) error {
	if err := l.requireLoaded(); err != nil {
		return err
	}

	l.localMu.Lock()
	defer l.localMu.Unlock()
	removed, err := l.local.DeleteAccount(ctx, id)
	if err != nil {
		if len(removed) > 0 {
			// transactions are already gone on disk
			l.mu.Lock()
			for _, txID := range removed {
				l.data.apply(removeTransactionCommand{id: txID})
			}
			l.mu.Unlock()
		}
		return err
	}
	l.mu.Lock()
	l.data.apply(removeAccountCommand{id: id})
	l.mu.Unlock()

	if len(removed) > 0 {
		l.logger.Info().Str("account_id", id).Int("transactions", len(removed)).Msg("account removed with its transactions")
	}
	return nil
}

// SaveCategory upserts a category. Categories are local only.
func (l *Ledger) SaveCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if err := l.requireLoaded(); err != nil {
		return models.Category{}, err
	}
	if category.ID == "" {
		category.ID = l.ids.Generate()
	}
	if err := l.validator.Validate(ctx, category); err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidCategory, err)
	}

	l.localMu.Lock()
	defer l.localMu.Unlock()
	if err := l.local.SaveCategory(ctx, category); err != nil {
		return models.Category{}, err
	}
	l.mu.Lock()
	l.data.apply(putCategoryCommand{category: category})
	l.mu.Unlock()
	return category, nil
}

func (l *Ledger) RemoveCategory(ctx context.Context, id string) error {
	if err := l.requireLoaded(); err != nil {
		return err
	}

	l.localMu.Lock()
	defer l.localMu.Unlock()
	if err := l.local.DeleteCategory(ctx, id); err != nil {
		return err
	}
	l.mu.Lock()
	l.data.apply(removeCategoryCommand{id: id})
	l.mu.Unlock()
	return nil
}

func (l *Ledger) requireLoaded() error {
	if l.State() == Uninitialized {
		return ErrNotLoaded
	}
	return nil
}

// pushInBackground sends tx to the backend. A removal of the same id may
// finish its live delete before this push lands; the push then deletes the
// row again so the removal wins on the backend too.
func (l *Ledger) pushInBackground(ctx context.Context, tx models.Transaction) {
	ownerID, _ := l.session()
	if ownerID == "" {
		return
	}
	snap := l.Snapshot()

	l.goRemote(ctx, "push", func(ctx context.Context) {
		// the transport logs; the record stays local for the next pass
		if err := l.transport.PushTransaction(ctx, tx, ownerID, snap.Categories, snap.Accounts); err != nil {
			return
		}
		if l.removedSincePush(tx.ID) {
			l.deleteRemote(ctx, tx.ID)
		}
	})
}

// removedSincePush reports whether id was removed by RemoveTransaction and
// has not come back since.
func (l *Ledger) removedSincePush(id string) bool {
	l.localMu.Lock()
	defer l.localMu.Unlock()
	if _, ok := l.removed[id]; !ok {
		return false
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	_, present := l.data.transaction(id)
	return !present
}

func (l *Ledger) deleteInBackground(ctx context.Context, id string) {
	l.goRemote(ctx, "delete", func(ctx context.Context) {
		l.deleteRemote(ctx, id)
	})
}

func (l *Ledger) deleteRemote(ctx context.Context, id string) {
	if err := l.transport.DeleteRemoteTransaction(ctx, id); err != nil {
		if !errors.Is(err, adapter.ErrRemoteNotConfigured) {
			l.logger.Warn().Err(err).Str("transaction_id", id).Msg("remote delete failed, kept in queue")
		}
		return
	}
	if err := l.local.RemovePendingDeletes(ctx, id); err != nil {
		l.logger.Error().Err(err).Str("transaction_id", id).Msg("failed to dequeue deleted transaction")
	}
}
