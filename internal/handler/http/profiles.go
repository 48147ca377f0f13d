// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/service"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
)

// upsertProfile resolves an external identity to its owner id, creating the
// profile on first sight. The owner token is returned in the Authorization
// header.
func (h *Handler) upsertProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var identity models.ExternalIdentity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		log.Err(err).Str("func", "*Handler.upsertProfile").Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, identity); err != nil {
		log.Err(err).Str("func", "*Handler.upsertProfile").Msg("invalid identity")
		h.writeServiceError(w, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	profile, err := h.services.ProfileService.Upsert(ctx, identity)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upsertProfile").Str("external_id", identity.ID).Msg("profile upsert failed")
		h.writeServiceError(w, err)
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, profile.OwnerID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upsertProfile").Str("owner_id", profile.OwnerID).Msg("token issue failed")
		h.writeServiceError(w, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.ProfileResponse{OwnerID: profile.OwnerID}, http.StatusOK)
}

// writeServiceError answers with the status mapped from err. Internal
// failures get a generic message.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	utils.WriteError(w, message, status)
}
