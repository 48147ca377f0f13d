// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the union of everything either binary can be
// configured with.
type StructuredConfig struct {
	App      App      `envPrefix:"APP_"`
	Storage  Storage  `envPrefix:"STORAGE_"`
	Server   Server   `envPrefix:"SERVER_"`
	Adapter  Adapter  `envPrefix:"ADAPTER_"`
	Workers  Workers  `envPrefix:"WORKERS_"`
	Identity Identity `envPrefix:"IDENTITY_"`

	// JSONFilePath is the optional JSON config file.
	// Env: CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// App holds keys and token parameters.
type App struct {
	// TokenSignKey signs owner tokens on the backend.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of owner tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an owner token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey signs batch upload bodies (HMAC-SHA256). Must match on both
	// sides; empty disables the check.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`
}

type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB is a SQLite file path on the client and a Postgres URI on the backend.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server is the backend listener.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter is the client's view of the backend. An empty HTTPAddress runs
// the client local-only.
type Adapter struct {
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers configures the client's background sync job.
type Workers struct {
	// SyncInterval is how often the job checks whether a re-sync is due.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// SyncCooldown is the minimum time between two automatic sync passes.
	// Env: WORKERS_SYNC_COOLDOWN
	SyncCooldown time.Duration `env:"SYNC_COOLDOWN"`
}

// Identity stands in for the authentication provider on the headless
// client. An empty ExternalID starts the client in guest mode.
type Identity struct {
	ExternalID string `env:"EXTERNAL_ID"`
	Name       string `env:"NAME"`
	Email      string `env:"EMAIL"`
	AvatarURL  string `env:"AVATAR_URL"`
}

// GetStructuredConfig merges env, flags from args and the optional JSON
// file. It does not validate; the client and server views do.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
