// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "localhost:8080"},
		{in: "127.0.0.1:9000", want: "127.0.0.1:9000"},
		{in: ":8080", want: ":8080"},
		{in: "example.com:80", wantErr: true},
		{in: "localhost", wantErr: true},
		{in: "localhost:0", wantErr: true},
		{in: "localhost:http", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_EmptyString(t *testing.T) {
	var a NetAddress
	assert.Empty(t, a.String())
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:8081",
		"-r", "http://localhost:8081",
		"-d", "ledger.db",
		"-config", "cfg.json",
		"-token-sign-key", "k",
		"-token-issuer", "iss",
		"-token-duration", "2h",
		"-request-timeout", "4s",
		"-hash-key", "h",
		"-sync-interval", "20s",
		"-sync-cooldown", "7m",
		"-external-id", "ext-1",
		"-name", "Ana",
		"-email", "ana@example.com",
		"-avatar-url", "https://img/1.png",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 4*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, Adapter{HTTPAddress: "http://localhost:8081", RequestTimeout: 4 * time.Second}, cfg.Adapter)
	assert.Equal(t, "ledger.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, App{TokenSignKey: "k", TokenIssuer: "iss", TokenDuration: 2 * time.Hour, HashKey: "h"}, cfg.App)
	assert.Equal(t, Workers{SyncInterval: 20 * time.Second, SyncCooldown: 7 * time.Minute}, cfg.Workers)
	assert.Equal(t, Identity{ExternalID: "ext-1", Name: "Ana", Email: "ana@example.com", AvatarURL: "https://img/1.png"}, cfg.Identity)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "not-an-address"})
	assert.Error(t, err)
}
