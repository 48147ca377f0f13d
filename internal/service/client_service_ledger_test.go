// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ledger-sync/internal/adapter"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/mock"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/models"
)

// fakeRemote is an in-memory backend with last-writer-wins upserts.
type fakeRemote struct {
	mu    sync.Mutex
	owner string
	rows  map[string]models.Transaction
	calls []string

	pushErr        error
	dropPushes     bool
	fetchErr       error
	deleteErr      error
	batchDeleteErr error

	// tokenExpired rejects every call except the profile upsert, which
	// renews the token.
	tokenExpired bool

	// fetchGate, when set, blocks the fetch until closed; fetchEntered is
	// closed when the fetch starts waiting. With fetchReadsEarly the rows
	// are read before blocking.
	fetchGate       chan struct{}
	fetchEntered    chan struct{}
	fetchReadsEarly bool

	// pushGate blocks a single-row push before it is stored.
	pushGate    chan struct{}
	pushEntered chan struct{}
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{owner: "owner-1", rows: make(map[string]models.Transaction)}
}

func (f *fakeRemote) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeRemote) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

func (f *fakeRemote) count(call string) int {
	n := 0
	for _, c := range f.callLog() {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeRemote) row(id string) (models.Transaction, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tx, ok := f.rows[id]
	return tx, ok
}

func (f *fakeRemote) put(tx models.Transaction) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[tx.ID] = tx.Clone()
}

func (f *fakeRemote) set(fn func(f *fakeRemote)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func (f *fakeRemote) upsert(tx models.Transaction) {
	if stored, ok := f.rows[tx.ID]; ok && stored.UpdatedAt.After(tx.UpdatedAt) {
		return
	}
	f.rows[tx.ID] = tx.Clone()
}

// authErr is called with mu held.
func (f *fakeRemote) authErr() error {
	if f.tokenExpired {
		return fmt.Errorf("token expired: %w", adapter.ErrUnauthorized)
	}
	return nil
}

// allRows is called with mu held.
func (f *fakeRemote) allRows() []models.Transaction {
	out := make([]models.Transaction, 0, len(f.rows))
	for _, tx := range f.rows {
		out = append(out, tx.Clone())
	}
	return out
}

func (f *fakeRemote) Enabled() bool { return true }

func (f *fakeRemote) FetchRemoteTransactions(_ context.Context, _ string) ([]models.Transaction, error) {
	f.record("fetch")

	f.mu.Lock()
	gate, entered := f.fetchGate, f.fetchEntered
	var early []models.Transaction
	if f.fetchReadsEarly {
		early = f.allRows()
	}
	f.mu.Unlock()
	if gate != nil {
		close(entered)
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.authErr(); err != nil {
		return []models.Transaction{}, err
	}
	if f.fetchErr != nil {
		return []models.Transaction{}, f.fetchErr
	}
	if early != nil {
		return early, nil
	}
	return f.allRows(), nil
}

func (f *fakeRemote) PushTransaction(_ context.Context, tx models.Transaction, _ string, _ []models.Category, _ []models.Account) error {
	f.record("push:" + tx.ID)

	f.mu.Lock()
	gate, entered := f.pushGate, f.pushEntered
	f.mu.Unlock()
	if gate != nil {
		close(entered)
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.authErr(); err != nil {
		return err
	}
	if f.pushErr != nil {
		return f.pushErr
	}
	if !f.dropPushes {
		f.upsert(tx)
	}
	return nil
}

func (f *fakeRemote) PushTransactionsBatch(_ context.Context, txs []models.Transaction, _ string, _ []models.Category, _ []models.Account) error {
	if len(txs) == 0 {
		return nil
	}
	f.record("push_batch")

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.authErr(); err != nil {
		return err
	}
	if f.pushErr != nil {
		return f.pushErr
	}
	if !f.dropPushes {
		for _, tx := range txs {
			f.upsert(tx)
		}
	}
	return nil
}

func (f *fakeRemote) DeleteRemoteTransaction(_ context.Context, id string) error {
	f.record("delete:" + id)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.authErr(); err != nil {
		return err
	}
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeRemote) DeleteRemoteTransactionsBatch(_ context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	f.record("delete_batch")

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.authErr(); err != nil {
		return err
	}
	if f.batchDeleteErr != nil {
		return f.batchDeleteErr
	}
	for _, id := range ids {
		delete(f.rows, id)
	}
	return nil
}

func (f *fakeRemote) UpsertOwnerProfile(_ context.Context, _ models.ExternalIdentity) (string, bool) {
	f.record("profile")

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.owner != "" {
		f.tokenExpired = false
	}
	return f.owner, f.owner != ""
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type seqIDs struct{ n atomic.Int64 }

func (s *seqIDs) Generate() string {
	return fmt.Sprintf("gen-%d", s.n.Add(1))
}

// failingLocal injects errors into an otherwise real local store.
type failingLocal struct {
	store.LocalStorage
	saveErr   error
	deleteErr error
}

func (f *failingLocal) SaveTransaction(ctx context.Context, tx models.Transaction) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	return f.LocalStorage.SaveTransaction(ctx, tx)
}

func (f *failingLocal) DeleteTransaction(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.LocalStorage.DeleteTransaction(ctx, id)
}

var testIdentity = models.ExternalIdentity{ID: "ext-1"}

func newTestLedger(t *testing.T, local store.LocalStorage, transport RemoteTransport) (*Ledger, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: baseTime}
	l := NewLedger(local, transport, logger.Nop(),
		WithClock(clock.Now),
		WithIDGenerator(&seqIDs{}),
		WithCooldown(5*time.Minute),
		WithRemoteTimeout(time.Second),
	)
	require.NoError(t, l.Load(context.Background()))
	return l, clock
}

func newLocal() *store.LocalStore {
	return store.NewLocalStore(store.NewMemoryDocumentStore())
}

func expenseTx(id string, amount int64) models.Transaction {
	return models.Transaction{
		ID:         id,
		Type:       models.Expense,
		Amount:     decimal.NewFromInt(amount),
		CategoryID: "cat-food",
		AccountID:  "acc-cash",
		Date:       models.NewDate(2026, time.March, 5),
	}
}

func pendingDeletes(t *testing.T, local store.LocalStorage) []string {
	t.Helper()
	ids, err := local.GetPendingDeletes(context.Background())
	require.NoError(t, err)
	return ids
}

func findTx(txs []models.Transaction, id string) (models.Transaction, bool) {
	i := slices.IndexFunc(txs, func(tx models.Transaction) bool { return tx.ID == id })
	if i < 0 {
		return models.Transaction{}, false
	}
	return txs[i], true
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLedger_LoadSeedsAndReadsLocalStore(t *testing.T) {
	ctx := context.Background()
	local := newLocal()
	require.NoError(t, local.SaveTransaction(ctx, expenseTx("existing", 5)))

	l, _ := newTestLedger(t, local, newFakeRemote())

	assert.Equal(t, LocalLoaded, l.State())
	snap := l.Snapshot()
	assert.NotEmpty(t, snap.Accounts)
	assert.NotEmpty(t, snap.Categories)
	_, ok := findTx(snap.Transactions, "existing")
	assert.True(t, ok)

	// a second Load is a no-op
	require.NoError(t, local.SaveTransaction(ctx, expenseTx("later", 5)))
	require.NoError(t, l.Load(ctx))
	_, ok = findTx(l.Transactions(), "later")
	assert.False(t, ok)
}

func TestLedger_OperationsBeforeLoad(t *testing.T) {
	l := NewLedger(newLocal(), newFakeRemote(), logger.Nop())
	ctx := context.Background()

	assert.Equal(t, Uninitialized, l.State())
	assert.ErrorIs(t, l.SignIn(ctx, testIdentity), ErrNotLoaded)
	assert.ErrorIs(t, l.Sync(ctx), ErrNotLoaded)
	_, err := l.AddTransaction(ctx, expenseTx("a", 1))
	assert.ErrorIs(t, err, ErrNotLoaded)
	assert.ErrorIs(t, l.RemoveTransaction(ctx, "a"), ErrNotLoaded)
}

// ── guest mode and offline ───────────────────────────────────────────────────

func TestLedger_OfflineAddNeverTouchesTransport(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no expectations: any transport call fails the test
	transport := mock.NewMockRemoteTransport(ctrl)
	local := newLocal()
	l, _ := newTestLedger(t, local, transport)
	ctx := context.Background()

	added, err := l.AddTransaction(ctx, expenseTx("t1", 50))
	require.NoError(t, err)
	l.Wait()

	stored, err := local.GetTransactions(ctx)
	require.NoError(t, err)
	got, ok := findTx(stored, "t1")
	require.True(t, ok)
	assert.Equal(t, "50", got.Amount.String())
	assert.True(t, added.UpdatedAt.Equal(got.UpdatedAt))
	assert.Empty(t, pendingDeletes(t, local))
}

func TestLedger_GuestModeMutationsStayLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mock.NewMockRemoteTransport(ctrl)
	local := newLocal()
	l, _ := newTestLedger(t, local, transport)
	ctx := context.Background()

	require.NoError(t, l.SignIn(ctx, models.ExternalIdentity{}))
	assert.Equal(t, GuestMode, l.State())

	for i := range 3 {
		tx, err := l.AddTransaction(ctx, expenseTx(fmt.Sprintf("t%d", i), 10))
		require.NoError(t, err)
		tx.Amount = decimal.NewFromInt(20)
		_, err = l.UpdateTransaction(ctx, tx)
		require.NoError(t, err)
		require.NoError(t, l.RemoveTransaction(ctx, tx.ID))
	}
	l.Wait()

	assert.Empty(t, pendingDeletes(t, local))
	assert.ErrorIs(t, l.Sync(ctx), ErrGuestMode)
	ran, err := l.Foreground(ctx)
	assert.NoError(t, err)
	assert.False(t, ran)

	// guest mode lasts until restart
	assert.ErrorIs(t, l.SignIn(ctx, testIdentity), ErrGuestMode)
}

func TestLedger_UnresolvedIdentityFallsBackToGuest(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mock.NewMockRemoteTransport(ctrl)
	l, _ := newTestLedger(t, newLocal(), transport)
	ctx := context.Background()

	transport.EXPECT().UpsertOwnerProfile(gomock.Any(), testIdentity).Return("", false)

	require.NoError(t, l.SignIn(ctx, testIdentity))
	assert.Equal(t, GuestMode, l.State())
	assert.Empty(t, l.OwnerID())

	_, err := l.AddTransaction(ctx, expenseTx("t1", 1))
	require.NoError(t, err)
	l.Wait()
}

// ── sign-in ──────────────────────────────────────────────────────────────────

func TestLedger_SignInRunsFirstSync(t *testing.T) {
	remote := newFakeRemote()
	remote.put(withNote(testTx("remote-only", 0), "from another device"))
	local := newLocal()
	l, clock := newTestLedger(t, local, remote)
	ctx := context.Background()

	_, err := l.AddTransaction(ctx, expenseTx("local-only", 3))
	require.NoError(t, err)

	require.NoError(t, l.SignIn(ctx, testIdentity))

	assert.Equal(t, Synced, l.State())
	assert.Equal(t, "owner-1", l.OwnerID())
	assert.Equal(t, clock.Now(), l.LastSyncedAt())

	_, ok := findTx(l.Transactions(), "remote-only")
	assert.True(t, ok, "remote record pulled")
	_, ok = remote.row("local-only")
	assert.True(t, ok, "local record pushed")

	stored, err := local.GetTransactions(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
	assert.Equal(t, []string{"profile", "push_batch", "fetch"}, remote.callLog())
}

func TestLedger_SignInOncePerIdentity(t *testing.T) {
	remote := newFakeRemote()
	l, _ := newTestLedger(t, newLocal(), remote)
	ctx := context.Background()

	require.NoError(t, l.SignIn(ctx, testIdentity))
	require.NoError(t, l.SignIn(ctx, testIdentity))

	assert.Equal(t, 1, remote.count("profile"))
	assert.Equal(t, 1, remote.count("fetch"))
	assert.ErrorIs(t, l.SignIn(ctx, models.ExternalIdentity{ID: "ext-2"}), ErrAlreadySignedIn)
}

func TestLedger_FirstSyncFailureKeepsOwner(t *testing.T) {
	remote := newFakeRemote()
	remote.fetchErr = errors.New("timeout")
	l, _ := newTestLedger(t, newLocal(), remote)
	ctx := context.Background()

	require.NoError(t, l.SignIn(ctx, testIdentity))

	assert.Equal(t, LocalLoaded, l.State())
	assert.Equal(t, "owner-1", l.OwnerID())
	assert.True(t, l.LastSyncedAt().IsZero())

	remote.set(func(f *fakeRemote) { f.fetchErr = nil })
	ran, err := l.Foreground(ctx)
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, Synced, l.State())
}

func TestLedger_SignOut(t *testing.T) {
	remote := newFakeRemote()
	l, _ := newTestLedger(t, newLocal(), remote)
	ctx := context.Background()
	require.NoError(t, l.SignIn(ctx, testIdentity))

	l.SignOut()

	assert.Equal(t, LocalLoaded, l.State())
	assert.Empty(t, l.OwnerID())
	assert.ErrorIs(t, l.Sync(ctx), ErrGuestMode)

	// a new session may sign in again
	require.NoError(t, l.SignIn(ctx, models.ExternalIdentity{ID: "ext-2"}))
	assert.Equal(t, Synced, l.State())
}

// ── sync pipeline ────────────────────────────────────────────────────────────

func TestLedger_StaleRemoteRowDoesNotOverwriteNewerLocalEdit(t *testing.T) {
	remote := newFakeRemote()
	t1 := expenseTx("t1", 50)
	t1.CreatedAt = baseTime.Add(-time.Hour)
	t1.UpdatedAt = baseTime.Add(-time.Hour)
	remote.put(t1)

	local := newLocal()
	l, clock := newTestLedger(t, local, remote)
	ctx := context.Background()
	require.NoError(t, l.SignIn(ctx, testIdentity))

	// the backend keeps serving the stale row
	remote.set(func(f *fakeRemote) { f.dropPushes = true })
	clock.Advance(time.Minute)

	edit, ok := findTx(l.Transactions(), "t1")
	require.True(t, ok)
	edit.Amount = decimal.NewFromInt(75)
	updated, err := l.UpdateTransaction(ctx, edit)
	require.NoError(t, err)
	l.Wait()
	assert.True(t, updated.UpdatedAt.After(t1.UpdatedAt))
	assert.Equal(t, t1.CreatedAt, updated.CreatedAt)

	require.NoError(t, l.Sync(ctx))

	got, ok := findTx(l.Transactions(), "t1")
	require.True(t, ok)
	assert.Equal(t, "75", got.Amount.String())

	stored, err := local.GetTransactions(ctx)
	require.NoError(t, err)
	got, ok = findTx(stored, "t1")
	require.True(t, ok)
	assert.Equal(t, "75", got.Amount.String())
}

func TestLedger_FailedLiveDeleteIsRetriedByNextPass(t *testing.T) {
	remote := newFakeRemote()
	local := newLocal()
	l, _ := newTestLedger(t, local, remote)
	ctx := context.Background()
	require.NoError(t, l.SignIn(ctx, testIdentity))

	_, err := l.AddTransaction(ctx, expenseTx("t2", 20))
	require.NoError(t, err)
	l.Wait()
	_, ok := remote.row("t2")
	require.True(t, ok)

	remote.set(func(f *fakeRemote) { f.deleteErr = errors.New("offline") })
	require.NoError(t, l.RemoveTransaction(ctx, "t2"))
	l.Wait()

	assert.Contains(t, pendingDeletes(t, local), "t2")
	_, ok = remote.row("t2")
	assert.True(t, ok)

	require.NoError(t, l.Sync(ctx))

	assert.NotContains(t, pendingDeletes(t, local), "t2")
	fetched, err := remote.FetchRemoteTransactions(ctx, "owner-1")
	require.NoError(t, err)
	_, ok = findTx(fetched, "t2")
	assert.False(t, ok)
	_, ok = findTx(l.Transactions(), "t2")
	assert.False(t, ok, "deleted record must not be resurrected")
}

func TestLedger_SuccessfulLiveDeleteDequeues(t *testing.T) {
	remote := newFakeRemote()
	local := newLocal()
	l, _ := newTestLedger(t, local, remote)
	ctx := context.Background()
	require.NoError(t, l.SignIn(ctx, testIdentity))

	_, err := l.AddTransaction(ctx, expenseTx("t3", 20))
	require.NoError(t, err)
	l.Wait()

	require.NoError(t, l.RemoveTransaction(ctx, "t3"))
	l.Wait()

	assert.Empty(t, pendingDeletes(t, local))
	_, ok := remote.row("t3")
	assert.False(t, ok)
}

func TestLedger_FailedFlushKeepsWholeQueueAndSkipsPull(t *testing.T) {
	remote := newFakeRemote()
	local := newLocal()
	l, _ := newTestLedger(t, local, remote)
	ctx := context.Background()
	require.NoError(t, l.SignIn(ctx, testIdentity))

	require.NoError(t, local.AddPendingDelete(ctx, "x"))
	require.NoError(t, local.AddPendingDelete(ctx, "y"))
	remote.set(func(f *fakeRemote) { f.batchDeleteErr = errors.New("503") })
	fetchesBefore := remote.count("fetch")

	err := l.Sync(ctx)

	require.ErrorIs(t, err, ErrSyncFailed)
	assert.Equal(t, []string{"x", "y"}, pendingDeletes(t, local))
	assert.Equal(t, fetchesBefore, remote.count("fetch"), "pull must not run after a failed flush")
	assert.Equal(t, Synced, l.State())

	remote.set(func(f *fakeRemote) { f.batchDeleteErr = nil })
	require.NoError(t, l.Sync(ctx))
	assert.Empty(t, pendingDeletes(t, local))
}

func TestLedger_FlushKeepsIDsQueuedDuringPass(t *testing.T) {
	remote := newFakeRemote()
	remote.put(withNote(testTx("late", 0), "remote copy"))
	local := newLocal()
	l, _ := newTestLedger(t, local, remote)
	ctx := context.Background()
	require.NoError(t, l.SignIn(ctx, testIdentity))
	require.NoError(t, local.AddPendingDelete(ctx, "early"))

	gate, entered := make(chan struct{}), make(chan struct{})
	remote.set(func(f *fakeRemote) {
		f.fetchGate, f.fetchEntered = gate, entered
		f.deleteErr = errors.New("offline")
	})

	done := make(chan error, 1)
	go func() { done <- l.Sync(ctx) }()
	<-entered

	// removed while the pull is in flight; the live delete fails
	require.NoError(t, l.RemoveTransaction(ctx, "late"))
	l.Wait()
	close(gate)
	require.NoError(t, <-done)

	assert.Equal(t, []string{"late"}, pendingDeletes(t, local))
	_, ok := findTx(l.Transactions(), "late")
	assert.False(t, ok, "queued id must not come back from the pull")
}

func TestLedger_LiveDeleteDuringPullStaysDeleted(t *testing.T) {
	remote := newFakeRemote()
	local := newLocal()
	l, _ := newTestLedger(t, local, remote)
	ctx := context.Background()
	require.NoError(t, l.SignIn(ctx, testIdentity))

	_, err := l.AddTransaction(ctx, expenseTx("t2", 20))
	require.NoError(t, err)
	l.Wait()
	_, ok := remote.row("t2")
	require.True(t, ok)

	gate, entered := make(chan struct{}), make(chan struct{})
	remote.set(func(f *fakeRemote) {
		f.fetchGate, f.fetchEntered, f.fetchReadsEarly = gate, entered, true
	})

	done := make(chan error, 1)
	go func() { done <- l.Sync(ctx) }()
	<-entered

	// the pulled rows still hold t2, and the live delete completes first
	require.NoError(t, l.RemoveTransaction(ctx, "t2"))
	l.Wait()
	_, ok = remote.row("t2")
	require.False(t, ok)
	require.Empty(t, pendingDeletes(t, local))

	close(gate)
	require.NoError(t, <-done)

	_, ok = findTx(l.Transactions(), "t2")
	assert.False(t, ok)
	stored, err := local.GetTransactions(ctx)
	require.NoError(t, err)
	_, ok = findTx(stored, "t2")
	assert.False(t, ok)

	remote.set(func(f *fakeRemote) {
		f.fetchGate, f.fetchEntered, f.fetchReadsEarly = nil, nil, false
	})
	require.NoError(t, l.Sync(ctx))

	_, ok = remote.row("t2")
	assert.False(t, ok, "next pass must not push the removed row back")
	_, ok = findTx(l.Transactions(), "t2")
	assert.False(t, ok)
}

func TestLedger_PushOvertakenByRemovalIsDeletedAgain(t *testing.T) {
	remote := newFakeRemote()
	local := newLocal()
	l, _ := newTestLedger(t, local, remote)
	ctx := context.Background()
	require.NoError(t, l.SignIn(ctx, testIdentity))

	gate, entered := make(chan struct{}), make(chan struct{})
	remote.set(func(f *fakeRemote) { f.pushGate, f.pushEntered = gate, entered })

	_, err := l.AddTransaction(ctx, expenseTx("quick", 2))
	require.NoError(t, err)
	<-entered

	require.NoError(t, l.RemoveTransaction(ctx, "quick"))
	require.Eventually(t, func() bool { return remote.count("delete:quick") == 1 }, time.Second, time.Millisecond)

	close(gate)
	l.Wait()

	_, ok := remote.row("quick")
	assert.False(t, ok)
	assert.Equal(t, 2, remote.count("delete:quick"))
	assert.Empty(t, pendingDeletes(t, local))
}

func TestLedger_PushOfReaddedTransactionIsKept(t *testing.T) {
	remote := newFakeRemote()
	l, _ := newTestLedger(t, newLocal(), remote)
	ctx := context.Background()
	require.NoError(t, l.SignIn(ctx, testIdentity))

	_, err := l.AddTransaction(ctx, expenseTx("again", 2))
	require.NoError(t, err)
	l.Wait()
	require.NoError(t, l.RemoveTransaction(ctx, "again"))
	l.Wait()
	_, err = l.AddTransaction(ctx, expenseTx("again", 3))
	require.NoError(t, err)
	l.Wait()

	_, ok := remote.row("again")
	assert.True(t, ok)
	assert.Equal(t, 1, remote.count("delete:again"))
}

func TestLedger_ExpiredTokenIsRenewed(t *testing.T) {
	remote := newFakeRemote()
	l, _ := newTestLedger(t, newLocal(), remote)
	ctx := context.Background()
	require.NoError(t, l.SignIn(ctx, testIdentity))
	require.Equal(t, 1, remote.count("profile"))

	remote.set(func(f *fakeRemote) { f.tokenExpired = true })
	remote.put(testTx("other-device", 3))

	require.NoError(t, l.Sync(ctx))

	assert.Equal(t, 2, remote.count("profile"))
	assert.Equal(t, "owner-1", l.OwnerID())
	assert.Equal(t, Synced, l.State())
	_, ok := findTx(l.Transactions(), "other-device")
	assert.True(t, ok)
}

func TestLedger_TokenRenewalFailureFailsPass(t *testing.T) {
	tests := []struct {
		name  string
		owner string
	}{
		{name: "backend unreachable", owner: ""},
		{name: "identity moved to another owner", owner: "owner-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := newFakeRemote()
			l, _ := newTestLedger(t, newLocal(), remote)
			ctx := context.Background()
			require.NoError(t, l.SignIn(ctx, testIdentity))

			remote.set(func(f *fakeRemote) {
				f.tokenExpired = true
				f.owner = tt.owner
			})
			fetchesBefore := remote.count("fetch")

			err := l.Sync(ctx)

			require.ErrorIs(t, err, ErrSyncFailed)
			assert.ErrorIs(t, err, adapter.ErrUnauthorized)
			assert.Equal(t, 2, remote.count("profile"))
			assert.Equal(t, fetchesBefore+1, remote.count("fetch"), "the pass is retried at most once")
			assert.Equal(t, "owner-1", l.OwnerID())
		})
	}
}

func TestLedger_PushFailureAbortsPass(t *testing.T) {
	remote := newFakeRemote()
	local := newLocal()
	l, _ := newTestLedger(t, local, remote)
	ctx := context.Background()
	require.NoError(t, l.SignIn(ctx, testIdentity))

	_, err := l.AddTransaction(ctx, expenseTx("t1", 1))
	require.NoError(t, err)
	l.Wait()
	require.NoError(t, local.AddPendingDelete(ctx, "q"))
	remote.set(func(f *fakeRemote) { f.pushErr = errors.New("502") })

	assert.ErrorIs(t, l.Sync(ctx), ErrSyncFailed)
	assert.Equal(t, []string{"q"}, pendingDeletes(t, local))
}

func TestLedger_MutationDuringPassIsKept(t *testing.T) {
	remote := newFakeRemote()
	local := newLocal()
	l, _ := newTestLedger(t, local, remote)
	ctx := context.Background()
	require.NoError(t, l.SignIn(ctx, testIdentity))

	gate, entered := make(chan struct{}), make(chan struct{})
	remote.set(func(f *fakeRemote) { f.fetchGate, f.fetchEntered = gate, entered })

	done := make(chan error, 1)
	go func() { done <- l.Sync(ctx) }()
	<-entered

	_, err := l.AddTransaction(ctx, expenseTx("during", 9))
	require.NoError(t, err)
	close(gate)
	require.NoError(t, <-done)
	l.Wait()

	_, ok := findTx(l.Transactions(), "during")
	assert.True(t, ok)
	stored, err := local.GetTransactions(ctx)
	require.NoError(t, err)
	_, ok = findTx(stored, "during")
	assert.True(t, ok)
}

// ── triggers ─────────────────────────────────────────────────────────────────

func TestLedger_ConcurrentTriggerIsDropped(t *testing.T) {
	remote := newFakeRemote()
	l, _ := newTestLedger(t, newLocal(), remote)
	ctx := context.Background()
	require.NoError(t, l.SignIn(ctx, testIdentity))

	gate, entered := make(chan struct{}), make(chan struct{})
	remote.set(func(f *fakeRemote) { f.fetchGate, f.fetchEntered = gate, entered })
	fetchesBefore := remote.count("fetch")

	done := make(chan error, 1)
	go func() { done <- l.Sync(ctx) }()
	<-entered

	assert.Equal(t, Syncing, l.State())
	assert.ErrorIs(t, l.Sync(ctx), ErrSyncInProgress)
	ran, err := l.Foreground(ctx)
	assert.NoError(t, err)
	assert.False(t, ran)

	close(gate)
	require.NoError(t, <-done)
	assert.Equal(t, fetchesBefore+1, remote.count("fetch"))
	assert.Equal(t, Synced, l.State())
}

func TestLedger_ForegroundCooldown(t *testing.T) {
	remote := newFakeRemote()
	l, clock := newTestLedger(t, newLocal(), remote)
	ctx := context.Background()

	ran, err := l.Foreground(ctx)
	require.NoError(t, err)
	assert.False(t, ran, "no owner yet")

	require.NoError(t, l.SignIn(ctx, testIdentity))
	fetches := remote.count("fetch")

	ran, err = l.Foreground(ctx)
	require.NoError(t, err)
	assert.False(t, ran)

	clock.Advance(4 * time.Minute)
	ran, _ = l.Foreground(ctx)
	assert.False(t, ran)

	clock.Advance(time.Minute)
	ran, err = l.Foreground(ctx)
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, fetches+1, remote.count("fetch"))
	assert.Equal(t, clock.Now(), l.LastSyncedAt())
}

func TestLedger_ForegroundReportsFailedPass(t *testing.T) {
	remote := newFakeRemote()
	l, clock := newTestLedger(t, newLocal(), remote)
	ctx := context.Background()
	require.NoError(t, l.SignIn(ctx, testIdentity))

	remote.set(func(f *fakeRemote) { f.fetchErr = errors.New("boom") })
	clock.Advance(10 * time.Minute)

	ran, err := l.Foreground(ctx)
	assert.True(t, ran)
	assert.ErrorIs(t, err, ErrSyncFailed)
	assert.Equal(t, Synced, l.State(), "a failed pass keeps the last good state")
}

// ── mutations ────────────────────────────────────────────────────────────────

func TestLedger_AddTransaction(t *testing.T) {
	remote := newFakeRemote()
	l, clock := newTestLedger(t, newLocal(), remote)
	ctx := context.Background()
	require.NoError(t, l.SignIn(ctx, testIdentity))

	tx := expenseTx("", 12)
	tx.UpdatedAt = baseTime.Add(-24 * time.Hour)
	added, err := l.AddTransaction(ctx, tx)
	require.NoError(t, err)
	l.Wait()

	assert.Equal(t, "gen-1", added.ID)
	assert.Equal(t, clock.Now(), added.CreatedAt)
	assert.Equal(t, clock.Now(), added.UpdatedAt)
	assert.Equal(t, 1, remote.count("push:gen-1"))

	_, err = l.AddTransaction(ctx, added)
	assert.ErrorIs(t, err, ErrTransactionAlreadyExists)
}

func TestLedger_AddTransactionValidation(t *testing.T) {
	l, _ := newTestLedger(t, newLocal(), newFakeRemote())
	ctx := context.Background()

	negative := expenseTx("neg", 1)
	negative.Amount = decimal.NewFromInt(-1)
	transferWithoutDestination := expenseTx("tr", 1)
	transferWithoutDestination.Type = models.Transfer
	zero := expenseTx("zero", 0)
	selfTransfer := expenseTx("self", 5)
	selfTransfer.Type = models.Transfer
	selfTransfer.ToAccountID = ptr("acc-cash")

	_, err := l.AddTransaction(ctx, negative)
	assert.ErrorIs(t, err, ErrInvalidTransaction)
	_, err = l.AddTransaction(ctx, transferWithoutDestination)
	assert.ErrorIs(t, err, ErrInvalidTransaction)
	_, err = l.AddTransaction(ctx, zero)
	assert.NoError(t, err)
	_, err = l.AddTransaction(ctx, selfTransfer)
	assert.NoError(t, err)

	ids := []string{}
	for _, tx := range l.Transactions() {
		ids = append(ids, tx.ID)
	}
	assert.ElementsMatch(t, []string{"zero", "self"}, ids)
}

func TestLedger_UpdateTransaction(t *testing.T) {
	l, clock := newTestLedger(t, newLocal(), newFakeRemote())
	ctx := context.Background()

	_, err := l.UpdateTransaction(ctx, expenseTx("missing", 1))
	assert.ErrorIs(t, err, ErrTransactionNotFound)

	added, err := l.AddTransaction(ctx, expenseTx("t1", 1))
	require.NoError(t, err)

	// a clock that went backwards never moves UpdatedAt back
	clock.Advance(-time.Hour)
	edit := added
	edit.CreatedAt = time.Time{}
	edit.Amount = decimal.NewFromInt(2)
	updated, err := l.UpdateTransaction(ctx, edit)
	require.NoError(t, err)

	assert.Equal(t, added.CreatedAt, updated.CreatedAt)
	assert.Equal(t, added.UpdatedAt, updated.UpdatedAt)

	clock.Advance(2 * time.Hour)
	updated, err = l.UpdateTransaction(ctx, edit)
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(added.UpdatedAt))
}

func TestLedger_LocalFailuresSurface(t *testing.T) {
	saveErr := errors.New("disk full")
	local := &failingLocal{LocalStorage: newLocal()}
	l, _ := newTestLedger(t, local, newFakeRemote())
	ctx := context.Background()
	require.NoError(t, l.SignIn(ctx, testIdentity))

	_, err := l.AddTransaction(ctx, expenseTx("kept", 1))
	require.NoError(t, err)
	l.Wait()

	local.saveErr = saveErr
	_, err = l.AddTransaction(ctx, expenseTx("lost", 1))
	assert.ErrorIs(t, err, saveErr)
	_, ok := findTx(l.Transactions(), "lost")
	assert.False(t, ok)

	local.deleteErr = errors.New("io error")
	assert.Error(t, l.RemoveTransaction(ctx, "kept"))
	_, ok = findTx(l.Transactions(), "kept")
	assert.True(t, ok)
	// queued first, so a retry has a durable trace
	assert.Contains(t, pendingDeletes(t, local), "kept")
}

func TestLedger_RemoveUnknownTransaction(t *testing.T) {
	l, _ := newTestLedger(t, newLocal(), newFakeRemote())

	assert.NoError(t, l.RemoveTransaction(context.Background(), "nope"))
}

func TestLedger_AccountsAndCategories(t *testing.T) {
	l, _ := newTestLedger(t, newLocal(), newFakeRemote())
	ctx := context.Background()

	account, err := l.SaveAccount(ctx, models.Account{Name: "Wallet", Type: models.CashAccount, InitialBalance: decimal.NewFromInt(500)})
	require.NoError(t, err)
	assert.Equal(t, "gen-1", account.ID)

	_, err = l.SaveAccount(ctx, models.Account{Name: "Broken", Type: "crypto"})
	assert.ErrorIs(t, err, ErrInvalidAccount)

	category, err := l.SaveCategory(ctx, models.Category{Name: "Books", Kind: models.ExpenseCategory})
	require.NoError(t, err)
	_, err = l.SaveCategory(ctx, models.Category{Name: "", Kind: models.IncomeCategory})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	for _, tx := range []models.Transaction{
		movement("in", models.Income, 200, account.ID, nil),
		movement("out", models.Expense, 80, account.ID, nil),
		movement("tr-out", models.Transfer, 100, account.ID, ptr("acc-bank")),
		movement("tr-in", models.Transfer, 50, "acc-bank", ptr(account.ID)),
	} {
		_, err := l.AddTransaction(ctx, tx)
		require.NoError(t, err)
	}
	assert.Equal(t, "570", l.Balances()[account.ID].String())

	require.NoError(t, l.RemoveCategory(ctx, category.ID))
	assert.NotContains(t, l.Snapshot().Categories, category)
}

func TestLedger_RemoveAccountCascades(t *testing.T) {
	local := newLocal()
	l, _ := newTestLedger(t, local, newFakeRemote())
	ctx := context.Background()

	for _, tx := range []models.Transaction{
		movement("cash", models.Expense, 1, "acc-cash", nil),
		movement("into-cash", models.Transfer, 1, "acc-bank", ptr("acc-cash")),
		movement("bank", models.Income, 1, "acc-bank", nil),
	} {
		_, err := l.AddTransaction(ctx, tx)
		require.NoError(t, err)
	}

	require.NoError(t, l.RemoveAccount(ctx, "acc-cash"))

	snap := l.Snapshot()
	require.Len(t, snap.Transactions, 1)
	assert.Equal(t, "bank", snap.Transactions[0].ID)
	for _, a := range snap.Accounts {
		assert.NotEqual(t, "acc-cash", a.ID)
	}

	stored, err := local.GetTransactions(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
	// the cascade is local only
	assert.Empty(t, pendingDeletes(t, local))
}

func TestLedger_SnapshotIsACopy(t *testing.T) {
	l, _ := newTestLedger(t, newLocal(), newFakeRemote())
	ctx := context.Background()

	_, err := l.AddTransaction(ctx, withNote(expenseTx("a", 1), "original"))
	require.NoError(t, err)

	snap := l.Snapshot()
	*snap.Transactions[0].Note = "changed"
	snap.Accounts[0].Name = "changed"

	fresh := l.Snapshot()
	assert.Equal(t, "original", *fresh.Transactions[0].Note)
	assert.NotEqual(t, "changed", fresh.Accounts[0].Name)
}

func TestLedger_Currency(t *testing.T) {
	l, _ := newTestLedger(t, newLocal(), newFakeRemote())
	ctx := context.Background()

	symbol, err := l.Currency(ctx)
	require.NoError(t, err)
	assert.Equal(t, store.DefaultCurrency, symbol)

	require.NoError(t, l.SetCurrency(ctx, "€"))
	symbol, err = l.Currency(ctx)
	require.NoError(t, err)
	assert.Equal(t, "€", symbol)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "synced", Synced.String())
	assert.Equal(t, "guest_mode", GuestMode.String())
	assert.Equal(t, "unknown", State(99).String())
}
