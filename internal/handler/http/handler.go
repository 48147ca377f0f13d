// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/service"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// hasher verifies write bodies. A disabled hasher accepts everything.
	hasher *utils.Hasher

	logger *logger.Logger
}

func NewHandler(services *service.Services, hasher *utils.Hasher, logger *logger.Logger) *Handler {
	logger.Info().Bool("hash_check", hasher.Enabled()).Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewLedgerValidator(),
		hasher:    hasher,
		logger:    logger,
	}
}
