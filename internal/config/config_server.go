// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	DefaultServerRequestTimeout = 30 * time.Second
	DefaultTokenDuration        = 24 * time.Hour
)

type ServerApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	HashKey       string
}

type ServerHTTP struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ServerDB is the Postgres connection URI.
type ServerDB struct {
	DSN string
}

// ServerConfig is everything cmd/server needs.
type ServerConfig struct {
	App     ServerApp
	Server  ServerHTTP
	Storage ServerDB
}

// GetServerConfig loads the merged config for args, applies backend
// defaults and validates it.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			HashKey:       cfg.App.HashKey,
		},
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: ServerDB{DSN: cfg.Storage.DB.DSN},
	}

	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = DefaultServerRequestTimeout
	}
	if serverCfg.App.TokenDuration == 0 {
		serverCfg.App.TokenDuration = DefaultTokenDuration
	}

	return serverCfg
}
