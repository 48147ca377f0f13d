// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TransactionBatchRequest carries a batch upsert to the hosted backend.
type TransactionBatchRequest struct {
	// Rows are upserted with last-writer-wins on updated_at.
	Rows []RemoteTransactionRow `json:"rows"`

	// Length is the number of entries in Rows.
	Length int `json:"length"`

	// Hash is the hex HMAC-SHA256 of the JSON-encoded Rows. Empty when the
	// client runs without a hash key.
	Hash string `json:"hash,omitempty"`
}

// DeleteBatchRequest removes transactions by id. Unknown ids are ignored.
type DeleteBatchRequest struct {
	IDs    []string `json:"ids"`
	Length int      `json:"length"`
}

// TransactionListResponse is the body of the list endpoint.
type TransactionListResponse struct {
	Rows   []RemoteTransactionRow `json:"rows"`
	Length int                    `json:"length"`
}
