// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors [StructuredConfig] with JSON tags and string durations.
type jsonConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		HashKey       string   `json:"hash_key"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
		SyncCooldown Duration `json:"sync_cooldown"`
	} `json:"workers"`

	Identity struct {
		ExternalID string `json:"external_id"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		AvatarURL  string `json:"avatar_url"`
	} `json:"identity"`
}

func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  jc.App.TokenSignKey,
			TokenIssuer:   jc.App.TokenIssuer,
			TokenDuration: time.Duration(jc.App.TokenDuration),
			HashKey:       jc.App.HashKey,
		},
		Storage: Storage{DB: DB{DSN: jc.Storage.DB.DSN}},
		Server: Server{
			HTTPAddress:    jc.Server.HTTPAddress,
			RequestTimeout: time.Duration(jc.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jc.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jc.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval: time.Duration(jc.Workers.SyncInterval),
			SyncCooldown: time.Duration(jc.Workers.SyncCooldown),
		},
		Identity: Identity{
			ExternalID: jc.Identity.ExternalID,
			Name:       jc.Identity.Name,
			Email:      jc.Identity.Email,
			AvatarURL:  jc.Identity.AvatarURL,
		},
	}, nil
}

// Duration decodes either a Go duration string ("5m") or a number of
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*d = 0
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
