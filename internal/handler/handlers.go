// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler builds the transport handlers of the hosted backend.
package handler

import (
	"github.com/MKhiriev/go-ledger-sync/internal/config"
	"github.com/MKhiriev/go-ledger-sync/internal/handler/http"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/service"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, utils.NewHasher(cfg.App.HashKey), logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
