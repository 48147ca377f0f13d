// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-sync/models"
)

const (
	DefaultAdapterRequestTimeout = 10 * time.Second
	DefaultSyncInterval          = time.Minute
	DefaultSyncCooldown          = 5 * time.Minute
)

// ClientApp holds client-side keys.
type ClientApp struct {
	HashKey string
}

// ClientAdapter points the client at the backend. Enabled reports false
// when no address is configured.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// Enabled reports whether a backend address is configured.
func (a ClientAdapter) Enabled() bool {
	return a.HTTPAddress != ""
}

// ClientDB is the SQLite database path. ":memory:" keeps everything in
// process memory.
type ClientDB struct {
	DSN string
}

type ClientStorage struct {
	DB ClientDB
}

type ClientWorkers struct {
	SyncInterval time.Duration
	SyncCooldown time.Duration
}

// ClientIdentity is the identity the headless client signs in with.
type ClientIdentity struct {
	ExternalID string
	Name       string
	Email      string
	AvatarURL  string
}

// External converts the configured identity for the identity bridge.
// Empty optional fields become nil.
func (i ClientIdentity) External() models.ExternalIdentity {
	opt := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}
	return models.ExternalIdentity{
		ID:        i.ExternalID,
		Name:      opt(i.Name),
		Email:     opt(i.Email),
		AvatarURL: opt(i.AvatarURL),
	}
}

// ClientConfig is everything cmd/client needs.
type ClientConfig struct {
	App      ClientApp
	Adapter  ClientAdapter
	Storage  ClientStorage
	Workers  ClientWorkers
	Identity ClientIdentity
}

// GetClientConfig loads the merged config for args, applies client
// defaults and validates it.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{HashKey: cfg.App.HashKey},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: cfg.Storage.DB.DSN}},
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
			SyncCooldown: cfg.Workers.SyncCooldown,
		},
		Identity: ClientIdentity(cfg.Identity),
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultAdapterRequestTimeout
	}
	if clientCfg.Workers.SyncInterval == 0 {
		clientCfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if clientCfg.Workers.SyncCooldown == 0 {
		clientCfg.Workers.SyncCooldown = DefaultSyncCooldown
	}

	return clientCfg
}
