// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/go-ledger-sync/models"
)

// Sync runs one pass now. It returns ErrGuestMode without an owner and
// ErrSyncInProgress when a pass is already running; the trigger is dropped
// in that case, not queued.
func (l *Ledger) Sync(ctx context.Context) error {
	ownerID, state := l.session()
	if state == Uninitialized {
		return ErrNotLoaded
	}
	if ownerID == "" {
		return ErrGuestMode
	}
	if !l.syncing.CompareAndSwap(false, true) {
		return ErrSyncInProgress
	}
	defer l.syncing.Store(false)

	l.setState(Syncing)
	if err := l.runPassRenewingToken(ctx, ownerID); err != nil {
		l.restoreAfterFailedPass()
		return fmt.Errorf("%w: %w", ErrSyncFailed, err)
	}
	return nil
}

// Foreground is the app-returned-to-foreground trigger. It syncs only when
// there is an owner, the cooldown since the last completed pass has
// elapsed and no pass is running. It reports whether a pass ran.
func (l *Ledger) Foreground(ctx context.Context) (bool, error) {
	l.mu.RLock()
	ownerID := l.ownerID
	last := l.lastSyncedAt
	l.mu.RUnlock()

	if ownerID == "" || l.syncing.Load() {
		return false, nil
	}
	if !last.IsZero() && l.now().Sub(last) < l.cooldown {
		return false, nil
	}

	err := l.Sync(ctx)
	switch {
	case err == nil:
		return true, nil
	case isDroppedTrigger(err):
		return false, nil
	default:
		return true, err
	}
}

func isDroppedTrigger(err error) bool {
	return errors.Is(err, ErrSyncInProgress) || errors.Is(err, ErrGuestMode) || errors.Is(err, ErrNotLoaded)
}

// runPass is push, flush, pull, merge, persist. The caller holds the
// syncing flag.
func (l *Ledger) runPass(ctx context.Context, ownerID string) error {
	log := l.logger.WithOwner(ownerID)
	ctx = log.WithContext(ctx)

	l.trackPassRemovals()
	defer l.untrackPassRemovals()

	snap := l.Snapshot()

	// every local record is pushed, which covers edits made offline
	if err := l.transport.PushTransactionsBatch(ctx, snap.Transactions, ownerID, snap.Categories, snap.Accounts); err != nil {
		return fmt.Errorf("push: %w", err)
	}

	// the queue must be flushed, or left intact, before the pull
	queued, err := l.local.GetPendingDeletes(ctx)
	if err != nil {
		return fmt.Errorf("read pending deletes: %w", err)
	}
	// a live delete that finished before the push above was undone by it
	l.localMu.Lock()
	for _, id := range l.passRemovals() {
		if !slices.Contains(queued, id) {
			queued = append(queued, id)
		}
	}
	l.localMu.Unlock()
	if len(queued) > 0 {
		if err := l.transport.DeleteRemoteTransactionsBatch(ctx, queued); err != nil {
			return fmt.Errorf("flush pending deletes: %w", err)
		}
		if err := l.local.RemovePendingDeletes(ctx, queued...); err != nil {
			return fmt.Errorf("clear flushed deletes: %w", err)
		}
		log.Info().Int("count", len(queued)).Msg("pending deletes flushed")
	}

	remote, err := l.transport.FetchRemoteTransactions(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("pull: %w", err)
	}

	l.localMu.Lock()
	defer l.localMu.Unlock()

	local, err := l.local.GetTransactions(ctx)
	if err != nil {
		return fmt.Errorf("read local transactions: %w", err)
	}

	// ids deleted while this pass was running must not come back, whether
	// or not their live delete has already gone through
	stillQueued, err := l.local.GetPendingDeletes(ctx)
	if err != nil {
		return fmt.Errorf("read pending deletes: %w", err)
	}
	remote = withoutIDs(remote, stillQueued)
	remote = withoutIDs(remote, l.passRemovals())

	merged := l.merger.Merge(local, remote)
	if err := l.local.SetTransactions(ctx, merged); err != nil {
		return fmt.Errorf("persist merged transactions: %w", err)
	}

	l.mu.Lock()
	l.data.apply(replaceTransactionsCommand{transactions: merged})
	// a sign-out during the pass wins
	if l.ownerID == ownerID {
		l.state = Synced
		l.lastSyncedAt = l.now()
	}
	l.mu.Unlock()

	log.Info().
		Int("local", len(local)).
		Int("remote", len(remote)).
		Int("merged", len(merged)).
		Msg("sync pass completed")
	return nil
}

func (l *Ledger) setState(s State) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.ownerID != "" {
		l.state = s
	}
}

func (l *Ledger) restoreAfterFailedPass() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != Syncing {
		return
	}
	if l.lastSyncedAt.IsZero() {
		l.state = LocalLoaded
		return
	}
	l.state = Synced
}

func (l *Ledger) trackPassRemovals() {
	l.localMu.Lock()
	defer l.localMu.Unlock()
	l.passRemoved = make(map[string]struct{})
}

func (l *Ledger) untrackPassRemovals() {
	l.localMu.Lock()
	defer l.localMu.Unlock()
	l.passRemoved = nil
}

// passRemovals lists the ids removed since the pass started. The caller
// holds localMu.
func (l *Ledger) passRemovals() []string {
	return slices.Collect(maps.Keys(l.passRemoved))
}

func withoutIDs(txs []models.Transaction, ids []string) []models.Transaction {
	if len(ids) == 0 {
		return txs
	}
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if _, ok := drop[tx.ID]; ok {
			continue
		}
		out = append(out, tx)
	}
	return out
}
