// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
)

type profileService struct {
	profiles store.ProfileRepository
	ids      IDGenerator
	now      func() time.Time

	logger *logger.Logger
}

func NewProfileService(profiles store.ProfileRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		profiles: profiles,
		ids:      utils.NewUUIDGenerator(),
		now:      time.Now,
		logger:   logger,
	}
}

// Upsert proposes a fresh owner id; the repository keeps the stored one when
// the external id is already known, so the returned owner is stable across
// sign-ins.
func (s *profileService) Upsert(ctx context.Context, identity models.ExternalIdentity) (models.OwnerProfile, error) {
	log := logger.FromContext(ctx)

	if identity.Empty() {
		log.Error().Msg("profile upsert without external id")
		return models.OwnerProfile{}, ErrInvalidDataProvided
	}

	profile := models.OwnerProfile{
		OwnerID:      s.ids.Generate(),
		ExternalID:   identity.ID,
		Name:         identity.Name,
		Email:        identity.Email,
		AvatarURL:    identity.AvatarURL,
		LastSignInAt: s.now().UTC(),
	}

	ownerID, err := s.profiles.Upsert(ctx, profile)
	if err != nil {
		log.Err(err).Str("external_id", identity.ID).Msg("profile upsert failed")
		return models.OwnerProfile{}, fmt.Errorf("profile upsert failed: %w", err)
	}
	profile.OwnerID = ownerID

	log.Info().Str("external_id", identity.ID).Str("owner_id", ownerID).Msg("profile signed in")
	return profile, nil
}
