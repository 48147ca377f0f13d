// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/models"
)

// Document keys of the local store.
const (
	KeyTransactions   = "@ledger/transactions"
	KeyAccounts       = "@ledger/accounts"
	KeyCategories     = "@ledger/categories"
	KeyInitialized    = "@ledger/initialized"
	KeyPendingDeletes = "@ledger/pending_deletes"
	KeyCurrency       = "@ledger/currency"
)

// DefaultCurrency is returned until the user picks a symbol.
const DefaultCurrency = "$"

// LocalStore is the typed view over a [DocumentStore]. Each collection is
// one JSON document; every read-modify-write of a document runs under one
// mutex so concurrent callers never lose each other's updates.
type LocalStore struct {
	docs DocumentStore
	mu   sync.Mutex
	now  func() time.Time
}

// NewLocalStore wraps docs.
func NewLocalStore(docs DocumentStore) *LocalStore {
	return &LocalStore{docs: docs, now: time.Now}
}

// readDocument decodes key into a value of T. A missing key yields the zero
// value of T.
func readDocument[T any](ctx context.Context, docs DocumentStore, key string) (T, error) {
	var out T

	raw, ok, err := docs.Get(ctx, key)
	if err != nil {
		return out, fmt.Errorf("%w: %s: %w", ErrLocalStoreRead, key, err)
	}
	if !ok || len(raw) == 0 {
		return out, nil
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "readDocument").Str("key", key).Msg("corrupt local document")
		return out, fmt.Errorf("%w: %s: %w", ErrDecodingDocument, key, err)
	}
	return out, nil
}

func writeDocument[T any](ctx context.Context, docs DocumentStore, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLocalStoreWrite, key, err)
	}
	if err := docs.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLocalStoreWrite, key, err)
	}
	return nil
}

// nonNil keeps empty collections encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// ── transactions ─────────────────────────────────────────────────────────────

func (s *LocalStore) GetTransactions(ctx context.Context) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := readDocument[[]models.Transaction](ctx, s.docs, KeyTransactions)
	return nonNil(txs), err
}

func (s *LocalStore) SaveTransaction(ctx context.Context, tx models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := readDocument[[]models.Transaction](ctx, s.docs, KeyTransactions)
	if err != nil {
		return err
	}

	if i := slices.IndexFunc(txs, func(t models.Transaction) bool { return t.ID == tx.ID }); i >= 0 {
		txs[i] = tx
	} else {
		txs = append(txs, tx)
	}

	return writeDocument(ctx, s.docs, KeyTransactions, txs)
}

func (s *LocalStore) DeleteTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := readDocument[[]models.Transaction](ctx, s.docs, KeyTransactions)
	if err != nil {
		return err
	}

	before := len(txs)
	kept := slices.DeleteFunc(txs, func(t models.Transaction) bool { return t.ID == id })
	if len(kept) == before {
		return nil
	}

	return writeDocument(ctx, s.docs, KeyTransactions, nonNil(kept))
}

func (s *LocalStore) SetTransactions(ctx context.Context, txs []models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeDocument(ctx, s.docs, KeyTransactions, nonNil(txs))
}

// ── accounts ─────────────────────────────────────────────────────────────────

func (s *LocalStore) GetAccounts(ctx context.Context) ([]models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := readDocument[[]models.Account](ctx, s.docs, KeyAccounts)
	return nonNil(accounts), err
}

func (s *LocalStore) SaveAccount(ctx context.Context, account models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := readDocument[[]models.Account](ctx, s.docs, KeyAccounts)
	if err != nil {
		return err
	}

	if i := slices.IndexFunc(accounts, func(a models.Account) bool { return a.ID == account.ID }); i >= 0 {
		accounts[i] = account
	} else {
		accounts = append(accounts, account)
	}

	return writeDocument(ctx, s.docs, KeyAccounts, accounts)
}

// DeleteAccount writes the transactions document first: if the second
// write fails the account survives with no dangling references.
func (s *LocalStore) DeleteAccount(ctx context.Context, id string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := readDocument[[]models.Account](ctx, s.docs, KeyAccounts)
	if err != nil {
		return nil, err
	}
	txs, err := readDocument[[]models.Transaction](ctx, s.docs, KeyTransactions)
	if err != nil {
		return nil, err
	}

	var removed []string
	kept := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.TouchesAccount(id) {
			removed = append(removed, tx.ID)
			continue
		}
		kept = append(kept, tx)
	}

	if len(removed) > 0 {
		if err := writeDocument(ctx, s.docs, KeyTransactions, kept); err != nil {
			return nil, err
		}
	}

	remaining := slices.DeleteFunc(accounts, func(a models.Account) bool { return a.ID == id })
	if err := writeDocument(ctx, s.docs, KeyAccounts, nonNil(remaining)); err != nil {
		return removed, err
	}

	return removed, nil
}

// ── categories ───────────────────────────────────────────────────────────────

func (s *LocalStore) GetCategories(ctx context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories, err := readDocument[[]models.Category](ctx, s.docs, KeyCategories)
	return nonNil(categories), err
}

func (s *LocalStore) SaveCategory(ctx context.Context, category models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories, err := readDocument[[]models.Category](ctx, s.docs, KeyCategories)
	if err != nil {
		return err
	}

	if i := slices.IndexFunc(categories, func(c models.Category) bool { return c.ID == category.ID }); i >= 0 {
		categories[i] = category
	} else {
		categories = append(categories, category)
	}

	return writeDocument(ctx, s.docs, KeyCategories, categories)
}

func (s *LocalStore) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories, err := readDocument[[]models.Category](ctx, s.docs, KeyCategories)
	if err != nil {
		return err
	}

	remaining := slices.DeleteFunc(categories, func(c models.Category) bool { return c.ID == id })
	return writeDocument(ctx, s.docs, KeyCategories, nonNil(remaining))
}

// ── pending deletes ──────────────────────────────────────────────────────────

func (s *LocalStore) GetPendingDeletes(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := readDocument[[]string](ctx, s.docs, KeyPendingDeletes)
	return nonNil(ids), err
}

func (s *LocalStore) AddPendingDelete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := readDocument[[]string](ctx, s.docs, KeyPendingDeletes)
	if err != nil {
		return err
	}
	if slices.Contains(ids, id) {
		return nil
	}

	return writeDocument(ctx, s.docs, KeyPendingDeletes, append(ids, id))
}

func (s *LocalStore) ClearPendingDeletes(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeDocument(ctx, s.docs, KeyPendingDeletes, []string{})
}

func (s *LocalStore) RemovePendingDeletes(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	queued, err := readDocument[[]string](ctx, s.docs, KeyPendingDeletes)
	if err != nil {
		return err
	}

	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	remaining := slices.DeleteFunc(queued, func(id string) bool {
		_, ok := drop[id]
		return ok
	})

	return writeDocument(ctx, s.docs, KeyPendingDeletes, nonNil(remaining))
}

// ── initialization and preferences ───────────────────────────────────────────

func (s *LocalStore) IsInitialized(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return readDocument[bool](ctx, s.docs, KeyInitialized)
}

// Initialize seeds defaults only into collections that have never been
// written, so it is safe to call on every start.
func (s *LocalStore) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	done, err := readDocument[bool](ctx, s.docs, KeyInitialized)
	if err != nil || done {
		return err
	}

	seed := func(key string, value any) error {
		_, ok, err := s.docs.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrLocalStoreRead, key, err)
		}
		if ok {
			return nil
		}
		return writeDocument(ctx, s.docs, key, value)
	}

	if err := seed(KeyAccounts, models.DefaultAccounts(s.now().UTC())); err != nil {
		return err
	}
	if err := seed(KeyCategories, models.DefaultCategories()); err != nil {
		return err
	}
	if err := seed(KeyTransactions, []models.Transaction{}); err != nil {
		return err
	}
	if err := seed(KeyPendingDeletes, []string{}); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("func", "LocalStore.Initialize").Msg("local store seeded with defaults")
	return writeDocument(ctx, s.docs, KeyInitialized, true)
}

func (s *LocalStore) GetCurrency(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	symbol, err := readDocument[string](ctx, s.docs, KeyCurrency)
	if err != nil {
		return DefaultCurrency, err
	}
	if symbol == "" {
		return DefaultCurrency, nil
	}
	return symbol, nil
}

func (s *LocalStore) SetCurrency(ctx context.Context, symbol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeDocument(ctx, s.docs, KeyCurrency, symbol)
}
