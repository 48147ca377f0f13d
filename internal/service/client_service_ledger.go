// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-ledger-sync/internal/adapter"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/internal/validators"
	"github.com/MKhiriev/go-ledger-sync/models"
	"github.com/shopspring/decimal"
)

const (
	DefaultForegroundCooldown = 5 * time.Minute
	DefaultRemoteTimeout      = 10 * time.Second
)

// Ledger is the client's sync orchestrator. One instance lives for one app
// session.
//
// Every mutation is durable in the local store before it returns; remote
// propagation happens in background goroutines that never report back to
// the caller. A sync pass runs push, flush of queued deletes, pull, merge
// and persist in that order, and only one pass runs at a time.
type Ledger struct {
	local     store.LocalStorage
	transport RemoteTransport
	identity  IdentityResolver
	merger    TransactionMerger
	validator validators.Validator
	ids       IDGenerator

	now           func() time.Time
	cooldown      time.Duration
	remoteTimeout time.Duration
	logger        *logger.Logger

	mu           sync.RWMutex
	state        State
	ownerID      string
	signedIn     models.ExternalIdentity
	lastSyncedAt time.Time
	data         ledgerState

	// localMu orders local mutations against the persist step of a pass.
	// It also guards passRemoved and removed.
	localMu sync.Mutex
	// passRemoved collects ids removed while a pass runs; nil between passes.
	passRemoved map[string]struct{}
	// removed holds every id removed in this session.
	removed map[string]struct{}

	syncing    atomic.Bool
	background sync.WaitGroup
}

// LedgerOption customises a [Ledger].
type LedgerOption func(*Ledger)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) LedgerOption {
	return func(l *Ledger) { l.now = now }
}

// WithCooldown sets the minimum time between foreground-triggered passes.
func WithCooldown(d time.Duration) LedgerOption {
	return func(l *Ledger) {
		if d > 0 {
			l.cooldown = d
		}
	}
}

// WithRemoteTimeout bounds each background remote call.
func WithRemoteTimeout(d time.Duration) LedgerOption {
	return func(l *Ledger) {
		if d > 0 {
			l.remoteTimeout = d
		}
	}
}

func WithIDGenerator(ids IDGenerator) LedgerOption {
	return func(l *Ledger) { l.ids = ids }
}

func WithMerger(m TransactionMerger) LedgerOption {
	return func(l *Ledger) { l.merger = m }
}

func WithValidator(v validators.Validator) LedgerOption {
	return func(l *Ledger) { l.validator = v }
}

// NewLedger wires the orchestrator. The identity bridge is built on top of
// transport.
func NewLedger(local store.LocalStorage, transport RemoteTransport, log *logger.Logger, opts ...LedgerOption) *Ledger {
	l := &Ledger{
		local:         local,
		transport:     transport,
		identity:      NewIdentityBridge(transport, log),
		merger:        NewMergeEngine(),
		validator:     validators.NewLedgerValidator(),
		ids:           utils.NewUUIDGenerator(),
		now:           time.Now,
		cooldown:      DefaultForegroundCooldown,
		remoteTimeout: DefaultRemoteTimeout,
		logger:        log,
		removed:       make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load seeds the local store on first run and reads every collection into
// memory. Calling it again after a successful load does nothing.
func (l *Ledger) Load(ctx context.Context) error {
	l.mu.RLock()
	loaded := l.state != Uninitialized
	l.mu.RUnlock()
	if loaded {
		return nil
	}

	if err := l.local.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize local store: %w", err)
	}

	txs, err := l.local.GetTransactions(ctx)
	if err != nil {
		return err
	}
	accounts, err := l.local.GetAccounts(ctx)
	if err != nil {
		return err
	}
	categories, err := l.local.GetCategories(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != Uninitialized {
		return nil
	}
	l.data.apply(loadCommand{transactions: txs, accounts: accounts, categories: categories})
	l.state = LocalLoaded

	l.logger.Info().
		Int("transactions", len(txs)).
		Int("accounts", len(accounts)).
		Int("categories", len(categories)).
		Msg("ledger loaded from local store")
	return nil
}

// SignIn starts a session for identity. An empty identity, or one the
// backend cannot resolve, puts the ledger in guest mode: everything keeps
// working locally and nothing is sent. A successful resolution runs the
// first sync pass before returning; a failed pass leaves the owner set so
// the next trigger retries. Only local errors are returned.
func (l *Ledger) SignIn(ctx context.Context, identity models.ExternalIdentity) error {
	l.mu.Lock()
	switch {
	case l.state == Uninitialized:
		l.mu.Unlock()
		return ErrNotLoaded
	case l.state == GuestMode:
		l.mu.Unlock()
		return ErrGuestMode
	case l.signedIn.ID != "":
		same := l.signedIn.ID == identity.ID
		l.mu.Unlock()
		if same {
			return nil
		}
		return ErrAlreadySignedIn
	}

	if identity.Empty() {
		l.state = GuestMode
		l.mu.Unlock()
		l.logger.Info().Msg("no identity, running in guest mode")
		return nil
	}
	l.signedIn = identity
	l.mu.Unlock()

	ownerID, ok := l.identity.Resolve(ctx, identity)

	l.mu.Lock()
	if !ok {
		l.state = GuestMode
		l.mu.Unlock()
		l.logger.Warn().Str("external_id", identity.ID).Msg("owner not resolved, running in guest mode")
		return nil
	}
	l.ownerID = ownerID
	l.state = SyncingFirstTime
	l.mu.Unlock()

	if !l.syncing.CompareAndSwap(false, true) {
		return nil
	}
	defer l.syncing.Store(false)

	if err := l.runPassRenewingToken(ctx, ownerID); err != nil {
		l.mu.Lock()
		if l.state == SyncingFirstTime {
			l.state = LocalLoaded
		}
		l.mu.Unlock()
		l.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("first sync failed, will retry on next trigger")
	}
	return nil
}

// SignOut ends the session. Local data stays; queued deletes stay queued
// for the next owner session.
func (l *Ledger) SignOut() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == Uninitialized {
		return
	}
	l.ownerID = ""
	l.signedIn = models.ExternalIdentity{}
	l.lastSyncedAt = time.Time{}
	l.state = LocalLoaded
}

func (l *Ledger) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// OwnerID returns the session owner, or "" in guest or local-only mode.
func (l *Ledger) OwnerID() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ownerID
}

// LastSyncedAt is zero until a pass has completed in this session.
func (l *Ledger) LastSyncedAt() time.Time {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lastSyncedAt
}

// Snapshot returns copies of the in-memory collections.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.data.snapshot()
}

// Transactions returns a copy of the in-memory transactions.
func (l *Ledger) Transactions() []models.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return models.CloneTransactions(l.data.transactions)
}

// Balances computes the current balance of every account.
func (l *Ledger) Balances() map[string]decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Balances(l.data.accounts, l.data.transactions)
}

func (l *Ledger) Currency(ctx context.Context) (string, error) {
	return l.local.GetCurrency(ctx)
}

func (l *Ledger) SetCurrency(ctx context.Context, symbol string) error {
	return l.local.SetCurrency(ctx, symbol)
}

// Wait blocks until every background remote task started so far is done.
func (l *Ledger) Wait() {
	l.background.Wait()
}

func (l *Ledger) session() (ownerID string, state State) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ownerID, l.state
}

func (l *Ledger) timestamp() time.Time {
	return l.now().UTC().Truncate(time.Millisecond)
}

// renewToken upserts the signed-in identity again, which hands the transport
// a fresh owner token. It reports false when the backend is unreachable or
// resolves the identity to a different owner.
func (l *Ledger) renewToken(ctx context.Context, ownerID string) bool {
	l.mu.RLock()
	identity, current := l.signedIn, l.ownerID
	l.mu.RUnlock()
	if identity.Empty() || current != ownerID {
		return false
	}

	renewed, ok := l.identity.Resolve(ctx, identity)
	if !ok {
		return false
	}
	if renewed != ownerID {
		l.logger.Error().Str("owner_id", ownerID).Str("resolved_owner_id", renewed).
			Msg("identity now resolves to another owner, token not renewed")
		return false
	}

	l.logger.Info().Str("owner_id", ownerID).Msg("owner token renewed")
	return true
}

// runPassRenewingToken runs a pass and, when the backend rejected the owner
// token, renews it and runs the pass once more.
func (l *Ledger) runPassRenewingToken(ctx context.Context, ownerID string) error {
	err := l.runPass(ctx, ownerID)
	if !errors.Is(err, adapter.ErrUnauthorized) || !l.renewToken(ctx, ownerID) {
		return err
	}
	return l.runPass(ctx, ownerID)
}

// goRemote runs fn detached from the caller's cancellation, bounded by the
// remote timeout. Tasks are not ordered against each other.
func (l *Ledger) goRemote(ctx context.Context, name string, fn func(ctx context.Context)) {
	l.background.Add(1)
	go func() {
		defer l.background.Done()
		bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.remoteTimeout)
		defer cancel()
		fn(l.logger.WithContext(bgCtx))
		l.logger.Debug().Str("task", name).Msg("background remote task finished")
	}()
}
