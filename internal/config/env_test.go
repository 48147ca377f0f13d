// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "sign")
	t.Setenv("APP_TOKEN_ISSUER", "ledger")
	t.Setenv("APP_TOKEN_DURATION", "12h")
	t.Setenv("APP_HASH_KEY", "hash")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://u:p@localhost/ledger")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8080")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "15s")
	t.Setenv("ADAPTER_ADDRESS", "http://localhost:8080")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "5s")
	t.Setenv("WORKERS_SYNC_INTERVAL", "45s")
	t.Setenv("WORKERS_SYNC_COOLDOWN", "3m")
	t.Setenv("IDENTITY_EXTERNAL_ID", "google|123")
	t.Setenv("IDENTITY_NAME", "Sam")
	t.Setenv("CONFIG", "/etc/ledger.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, App{TokenSignKey: "sign", TokenIssuer: "ledger", TokenDuration: 12 * time.Hour, HashKey: "hash"}, cfg.App)
	assert.Equal(t, "postgres://u:p@localhost/ledger", cfg.Storage.DB.DSN)
	assert.Equal(t, Server{HTTPAddress: "0.0.0.0:8080", RequestTimeout: 15 * time.Second}, cfg.Server)
	assert.Equal(t, Adapter{HTTPAddress: "http://localhost:8080", RequestTimeout: 5 * time.Second}, cfg.Adapter)
	assert.Equal(t, Workers{SyncInterval: 45 * time.Second, SyncCooldown: 3 * time.Minute}, cfg.Workers)
	assert.Equal(t, "google|123", cfg.Identity.ExternalID)
	assert.Equal(t, "Sam", cfg.Identity.Name)
	assert.Equal(t, "/etc/ledger.json", cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("WORKERS_SYNC_COOLDOWN", "soon")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}
