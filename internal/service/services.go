// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-ledger-sync/internal/config"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/models"
)

// Services are the backend's business services.
type Services struct {
	AuthService        AuthService
	ProfileService     ProfileService
	TransactionService TransactionService
	AppInfoService     AppInfoService
}

func NewServices(repositories *store.Repositories, cfg config.ServerApp, buildInfo models.BuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(cfg, logger),
		ProfileService: NewProfileService(repositories.Profiles, logger),
		TransactionService: NewTransactionValidationService().
			Wrap(NewTransactionService(repositories.Transactions, logger)),
		AppInfoService: appInfo,
	}, nil
}
