// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress is a host:port listen address usable with flag.Var.
type NetAddress struct {
	Host string
	Port int
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts "host:port" and ":port". Hosts other than localhost must be
// IP literals.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", portStr, err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port must be in range 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// parseFlags reads the command line. Unknown flags are an error.
//
// Flags:
//
//	-a                backend listen address host:port
//	-r                backend base URL used by the client
//	-d                database DSN (SQLite path or Postgres URI)
//	-c, -config       JSON config file
//	-token-sign-key   owner token signing key
//	-token-issuer     owner token issuer
//	-token-duration   owner token lifetime (e.g. 24h)
//	-request-timeout  request timeout for both server and client (e.g. 10s)
//	-hash-key         HMAC key for batch uploads
//	-sync-interval    background job tick (e.g. 1m)
//	-sync-cooldown    minimum time between automatic syncs (e.g. 5m)
//	-external-id      identity to sign in with; empty means guest
//	-name, -email, -avatar-url  identity profile fields
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("ledger", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		serverAddress  NetAddress
		remoteURL      string
		dsn            string
		jsonPath       string
		tokenSignKey   string
		tokenIssuer    string
		tokenDuration  time.Duration
		requestTimeout time.Duration
		hashKey        string
		syncInterval   time.Duration
		syncCooldown   time.Duration
		identity       Identity
	)

	fs.Var(&serverAddress, "a", "Backend listen address host:port")
	fs.StringVar(&remoteURL, "r", "", "Backend base URL")
	fs.StringVar(&dsn, "d", "", "Database DSN")
	fs.StringVar(&jsonPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g. 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 10s)")
	fs.StringVar(&hashKey, "hash-key", "", "Batch upload hash key")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Background sync tick (e.g. 1m)")
	fs.DurationVar(&syncCooldown, "sync-cooldown", 0, "Minimum time between automatic syncs (e.g. 5m)")
	fs.StringVar(&identity.ExternalID, "external-id", "", "External identity id")
	fs.StringVar(&identity.Name, "name", "", "Display name")
	fs.StringVar(&identity.Email, "email", "", "Email")
	fs.StringVar(&identity.AvatarURL, "avatar-url", "", "Avatar URL")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			HashKey:       hashKey,
		},
		Storage: Storage{DB: DB{DSN: dsn}},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
			SyncCooldown: syncCooldown,
		},
		Identity:     identity,
		JSONFilePath: jsonPath,
	}, nil
}
