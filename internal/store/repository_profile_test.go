// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/models"
)

func testProfile() models.OwnerProfile {
	name := "Ada"
	return models.OwnerProfile{
		OwnerID:      "new-owner",
		ExternalID:   "google|42",
		Name:         &name,
		LastSignInAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestProfileRepository_UpsertReturnsStoredOwner(t *testing.T) {
	db, mock := newPostgresMock(t)
	repo := NewProfileRepository(db, logger.Nop())

	p := testProfile()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO profiles (owner_id,external_id,name,email,avatar_url,last_sign_in_at) VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT (external_id)")).
		WithArgs(p.OwnerID, p.ExternalID, p.Name, p.Email, p.AvatarURL, p.LastSignInAt).
		WillReturnRows(sqlmock.NewRows([]string{"owner_id"}).AddRow("existing-owner"))

	ownerID, err := repo.Upsert(testContext(), p)
	require.NoError(t, err)
	assert.Equal(t, "existing-owner", ownerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_UpsertErrors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "owner id collision", dbErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrProfileConflict},
		{name: "database starting", dbErr: pgError(pgerrcode.CannotConnectNow), wantErr: ErrTemporarilyUnavailable},
		{name: "other", dbErr: assert.AnError, wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newPostgresMock(t)
			repo := NewProfileRepository(db, logger.Nop())

			mock.ExpectQuery("INSERT INTO profiles").WillReturnError(tt.dbErr)

			_, err := repo.Upsert(testContext(), testProfile())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProfileRepository_GetByExternalID(t *testing.T) {
	db, mock := newPostgresMock(t)
	repo := NewProfileRepository(db, logger.Nop())

	signedIn := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("SELECT owner_id, external_id, name, email, avatar_url, last_sign_in_at FROM profiles WHERE external_id = $1")

	mock.ExpectQuery(query).WithArgs("google|42").
		WillReturnRows(sqlmock.NewRows([]string{"owner_id", "external_id", "name", "email", "avatar_url", "last_sign_in_at"}).
			AddRow("owner-1", "google|42", "Ada", nil, nil, signedIn))
	mock.ExpectQuery(query).WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"owner_id"}))

	p, err := repo.GetByExternalID(testContext(), "google|42")
	require.NoError(t, err)
	assert.Equal(t, "owner-1", p.OwnerID)
	require.NotNil(t, p.Name)
	assert.Equal(t, "Ada", *p.Name)
	assert.Nil(t, p.Email)
	assert.Equal(t, signedIn, p.LastSignInAt)

	_, err = repo.GetByExternalID(testContext(), "nobody")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
