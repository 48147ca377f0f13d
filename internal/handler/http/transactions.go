// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/service"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
)

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, found := utils.GetOwnerIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listTransactions").Msg("no owner id was given")
		utils.WriteError(w, ErrNoOwnerInRequest.Error(), http.StatusUnauthorized)
		return
	}

	rows, err := h.services.TransactionService.List(ctx, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listTransactions").Msg("error listing transactions")
		h.writeServiceError(w, err)
		return
	}
	if rows == nil {
		rows = []models.RemoteTransactionRow{}
	}

	utils.WriteJSON(w, models.TransactionListResponse{Rows: rows, Length: len(rows)}, http.StatusOK)
}

func (h *Handler) putTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, found := utils.GetOwnerIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.putTransaction").Msg("no owner id was given")
		utils.WriteError(w, ErrNoOwnerInRequest.Error(), http.StatusUnauthorized)
		return
	}

	var row models.RemoteTransactionRow
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		log.Err(err).Str("func", "*Handler.putTransaction").Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	if id := chi.URLParam(r, "id"); row.ID != id {
		log.Error().Str("func", "*Handler.putTransaction").Str("path_id", id).Str("row_id", row.ID).Msg("id mismatch")
		utils.WriteError(w, ErrIDMismatch.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.TransactionService.Put(ctx, ownerID, row); err != nil {
		log.Err(err).Str("func", "*Handler.putTransaction").Str("id", row.ID).Msg("error saving transaction")
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) putTransactionBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, found := utils.GetOwnerIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.putTransactionBatch").Msg("no owner id was given")
		utils.WriteError(w, ErrNoOwnerInRequest.Error(), http.StatusUnauthorized)
		return
	}

	var batch models.TransactionBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		log.Err(err).Str("func", "*Handler.putTransactionBatch").Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, batch); err != nil {
		log.Err(err).Str("func", "*Handler.putTransactionBatch").Msg("invalid batch")
		h.writeServiceError(w, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	written, err := h.services.TransactionService.PutBatch(ctx, ownerID, batch.Rows...)
	if err != nil {
		log.Err(err).Str("func", "*Handler.putTransactionBatch").Int("rows", len(batch.Rows)).Msg("error saving batch")
		h.writeServiceError(w, err)
		return
	}

	log.Debug().Int("rows", len(batch.Rows)).Int64("written", written).Msg("batch stored")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, found := utils.GetOwnerIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteTransaction").Msg("no owner id was given")
		utils.WriteError(w, ErrNoOwnerInRequest.Error(), http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := h.services.TransactionService.Delete(ctx, ownerID, id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteTransaction").Str("id", id).Msg("error deleting transaction")
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteTransactionBatch removes every listed id the owner has. Unknown ids
// are not an error.
func (h *Handler) deleteTransactionBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, found := utils.GetOwnerIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteTransactionBatch").Msg("no owner id was given")
		utils.WriteError(w, ErrNoOwnerInRequest.Error(), http.StatusUnauthorized)
		return
	}

	var req models.DeleteBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.deleteTransactionBatch").Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "*Handler.deleteTransactionBatch").Msg("invalid delete batch")
		h.writeServiceError(w, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	deleted, err := h.services.TransactionService.Delete(ctx, ownerID, req.IDs...)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteTransactionBatch").Int("ids", len(req.IDs)).Msg("error deleting batch")
		h.writeServiceError(w, err)
		return
	}

	log.Debug().Int("ids", len(req.IDs)).Int64("deleted", deleted).Msg("delete batch applied")
	w.WriteHeader(http.StatusNoContent)
}
