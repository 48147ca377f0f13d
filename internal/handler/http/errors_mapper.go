// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ledger-sync/internal/service"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrNoOwnerInContext:        http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	validators.ErrInvalidID:       http.StatusBadRequest,
	validators.ErrEmptyRows:       http.StatusBadRequest,
	validators.ErrEmptyIDs:        http.StatusBadRequest,
	validators.ErrLengthMismatch:  http.StatusBadRequest,
	validators.ErrEmptyExternalID: http.StatusBadRequest,

	ErrInvalidJSON:      http.StatusBadRequest,
	ErrIDMismatch:       http.StatusBadRequest,
	ErrIntegrityCheck:   http.StatusBadRequest,
	ErrNoOwnerInRequest: http.StatusUnauthorized,

	store.ErrOwnerMismatch:          http.StatusForbidden,
	store.ErrProfileNotFound:        http.StatusNotFound,
	store.ErrProfileConflict:        http.StatusConflict,
	store.ErrTemporarilyUnavailable: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// statusFromError picks the status of the first sentinel err wraps. Owner
// and availability errors are checked before the generic ones so a wrapped
// chain such as "unavailable: executing query" keeps its 503.
func statusFromError(err error) int {
	for _, target := range []error{store.ErrOwnerMismatch, store.ErrTemporarilyUnavailable, store.ErrProfileConflict} {
		if errors.Is(err, target) {
			return errorStatusMap[target]
		}
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
