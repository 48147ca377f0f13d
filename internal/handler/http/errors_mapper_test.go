// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-ledger-sync/internal/service"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidType), http.StatusBadRequest},
		{"bare validator error", validators.ErrLengthMismatch, http.StatusBadRequest},
		{"token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"other owner", fmt.Errorf("put: %w", store.ErrOwnerMismatch), http.StatusForbidden},
		{"profile missing", store.ErrProfileNotFound, http.StatusNotFound},
		{"profile conflict", store.ErrProfileConflict, http.StatusConflict},
		{"unavailable wins over query error", fmt.Errorf("%w: %w", store.ErrExecutingQuery, store.ErrTemporarilyUnavailable), http.StatusServiceUnavailable},
		{"sql", store.ErrScanningRows, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
