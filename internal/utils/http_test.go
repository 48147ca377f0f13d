// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger-sync/models"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{
			name:     "profile response",
			data:     models.ProfileResponse{OwnerID: "owner-1"},
			status:   http.StatusOK,
			wantBody: `{"owner_id":"owner-1"}`,
		},
		{
			name:     "empty list",
			data:     models.TransactionListResponse{Rows: []models.RemoteTransactionRow{}},
			status:   http.StatusOK,
			wantBody: `{"rows":[],"length":0}`,
		},
		{
			name:     "nil",
			data:     nil,
			status:   http.StatusAccepted,
			wantBody: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			require.NoError(t, err)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.Equal(t, len(w.Body.Bytes()), n)
		})
	}
}

func TestWriteJSON_Unmarshalable(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, "transaction belongs to another owner", http.StatusForbidden)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "transaction belongs to another owner", body.Error)
}
