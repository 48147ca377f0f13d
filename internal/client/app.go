// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-ledger-sync/internal/adapter"
	"github.com/MKhiriev/go-ledger-sync/internal/config"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/service"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/internal/workers"
	"github.com/MKhiriev/go-ledger-sync/models"
)

type App struct {
	ledger   *service.Ledger
	workers  *workers.Workers
	identity models.ExternalIdentity

	// closer releases the local database after the ledger has drained.
	closer io.Closer

	logger *logger.Logger
}

// NewApp opens the local database and builds the ledger with its
// transport and background job.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	storage, err := store.NewClientStorage(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	remote, err := adapter.NewRemoteAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		_ = storage.Close()
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}

	transport := service.NewRemoteTransport(remote, cfg.Adapter.Enabled(), log)
	return newApp(storage.Local, storage, transport, cfg, log), nil
}

func newApp(local store.LocalStorage, closer io.Closer, transport service.RemoteTransport, cfg *config.ClientConfig, log *logger.Logger) *App {
	ledger := service.NewLedger(local, transport, log,
		service.WithCooldown(cfg.Workers.SyncCooldown),
		service.WithRemoteTimeout(cfg.Adapter.RequestTimeout),
	)

	return &App{
		ledger:   ledger,
		workers:  workers.NewWorkers(service.NewForegroundJob(ledger, cfg.Workers.SyncInterval, log)),
		identity: cfg.Identity.External(),
		closer:   closer,
		logger:   log,
	}
}

// Ledger exposes the running ledger.
func (a *App) Ledger() *service.Ledger {
	return a.ledger
}

// Run loads the ledger, signs in and keeps the sync job going until ctx is
// done. Local storage is closed on return.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	if err := a.ledger.Load(ctx); err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}

	if err := a.ledger.SignIn(ctx, a.identity); err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	a.logSummary(ctx)

	a.workers.Start(ctx)
	<-ctx.Done()

	a.logger.Info().Msg("client is shutting down")
	a.workers.Stop()

	return nil
}

func (a *App) logSummary(ctx context.Context) {
	symbol, err := a.ledger.Currency(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("reading currency")
	}

	snap := a.ledger.Snapshot()
	event := a.logger.Info().
		Str("state", a.ledger.State().String()).
		Str("owner_id", a.ledger.OwnerID()).
		Int("transactions", len(snap.Transactions)).
		Str("currency", symbol)

	balances := a.ledger.Balances()
	for _, account := range snap.Accounts {
		event = event.Str("balance_"+account.ID, balances[account.ID].StringFixed(2))
	}
	event.Msg("ledger ready")
}

// close waits for in-flight remote writes before releasing the database.
func (a *App) close() {
	a.ledger.Wait()
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		a.logger.Err(err).Msg("closing local storage")
	}
}
