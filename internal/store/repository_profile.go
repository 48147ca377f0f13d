// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/models"
)

const profilesTable = "profiles"

// upsertProfileSuffix keeps the first owner id ever assigned to an external
// identity; optional fields are only overwritten by non-null values.
const upsertProfileSuffix = `ON CONFLICT (external_id) DO UPDATE SET
	name = COALESCE(EXCLUDED.name, profiles.name),
	email = COALESCE(EXCLUDED.email, profiles.email),
	avatar_url = COALESCE(EXCLUDED.avatar_url, profiles.avatar_url),
	last_sign_in_at = EXCLUDED.last_sign_in_at
RETURNING owner_id`

type profileRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{db: db, logger: logger}
}

// Upsert returns the stored owner id, which differs from profile.OwnerID
// whenever the external identity was already known.
func (r *profileRepository) Upsert(ctx context.Context, profile models.OwnerProfile) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert(profilesTable).
		Columns("owner_id", "external_id", "name", "email", "avatar_url", "last_sign_in_at").
		Values(profile.OwnerID, profile.ExternalID, profile.Name, profile.Email, profile.AvatarURL, profile.LastSignInAt).
		Suffix(upsertProfileSuffix).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var ownerID string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&ownerID); err != nil {
		log.Err(err).Str("func", "profileRepository.Upsert").Str("external_id", profile.ExternalID).Msg("failed to upsert profile")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return "", ErrProfileConflict
		}
		if r.db.retryable(err) {
			return "", fmt.Errorf("%w: %w", ErrTemporarilyUnavailable, err)
		}
		return "", fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return ownerID, nil
}

func (r *profileRepository) GetByExternalID(ctx context.Context, externalID string) (models.OwnerProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("owner_id", "external_id", "name", "email", "avatar_url", "last_sign_in_at").
		From(profilesTable).
		Where(sq.Eq{"external_id": externalID}).
		ToSql()
	if err != nil {
		return models.OwnerProfile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var p models.OwnerProfile
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&p.OwnerID, &p.ExternalID, &p.Name, &p.Email, &p.AvatarURL, &p.LastSignInAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.OwnerProfile{}, ErrProfileNotFound
	case err != nil:
		log.Err(err).Str("func", "profileRepository.GetByExternalID").Str("external_id", externalID).Msg("failed to read profile")
		return models.OwnerProfile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return p, nil
}
