// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-ledger-sync/internal/adapter"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
)

// batchHashing checks the "hash" field of a batch upload against the HMAC
// of its "rows" field. Skipped when no hash key is configured.
func (h *Handler) batchHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.hasher.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		var req struct {
			Rows json.RawMessage `json:"rows"`
			Hash string          `json:"hash"`
		}

		h.logger.Debug().Str("func", "*Handler.batchHashing").Msg("checking hash begins")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.batchHashing").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if err := json.Unmarshal(body, &req); err != nil {
			h.logger.Err(err).Str("func", "*Handler.batchHashing").Msg("failed to decode JSON")
			utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
			return
		}

		if !h.hasher.Verify(req.Rows, req.Hash) {
			h.logger.Error().Str("func", "*Handler.batchHashing").
				Str("hash from request", req.Hash).
				Str("hashed body", h.hasher.SumHex(req.Rows)).
				Msg("hashes are not equal")
			utils.WriteError(w, ErrIntegrityCheck.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// bodyHashing checks the HashSHA256 header against the HMAC of the raw
// request body.
func (h *Handler) bodyHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.hasher.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.bodyHashing").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		sum := r.Header.Get(adapter.HashHeader)
		if !h.hasher.Verify(body, sum) {
			h.logger.Error().Str("func", "*Handler.bodyHashing").
				Str("hash from request", sum).
				Msg("hashes are not equal")
			utils.WriteError(w, ErrIntegrityCheck.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
