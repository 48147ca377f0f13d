// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-ledger-sync/internal/config"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
)

// HashHeader carries the HMAC of a write body.
const HashHeader = "HashSHA256"

const (
	profilesPath          = "/api/profiles"
	transactionsPath      = "/api/transactions"
	transactionPath       = "/api/transactions/{id}"
	transactionsBatchPath = "/api/transactions/batch"
	transactionsDelPath   = "/api/transactions/delete"
)

type httpRemoteAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewRemoteAdapter builds the HTTP [RemoteAdapter] for adapterCfg. When no
// address is configured it returns an adapter whose every call fails with
// [ErrRemoteNotConfigured] without touching the network.
func NewRemoteAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (RemoteAdapter, error) {
	if !adapterCfg.Enabled() {
		logger.Warn().Msg("no backend address configured, running local-only")
		return disabledRemoteAdapter{}, nil
	}

	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	logger.Info().Str("base_url", baseURL).Msg("remote adapter created")
	return &httpRemoteAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hasher: utils.NewHasher(appCfg.HashKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRemoteAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRemoteAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// UpsertProfile posts identity to POST /api/profiles. The owner id is taken
// from the response body; the token comes from the Authorization header.
func (h *httpRemoteAdapter) UpsertProfile(ctx context.Context, identity models.ExternalIdentity) (string, error) {
	var profile models.ProfileResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(identity).
		SetResult(&profile).
		Post(profilesPath)
	if err != nil {
		return "", fmt.Errorf("upsert profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("upsert profile parse bearer token: %w", err)
	}

	ownerID := profile.OwnerID
	if ownerID == "" {
		if ownerID, err = utils.ParseOwnerIDFromJWT(token); err != nil {
			return "", fmt.Errorf("upsert profile parse owner id: %w", err)
		}
	}

	h.SetToken(token)
	return ownerID, nil
}

func (h *httpRemoteAdapter) FetchTransactions(ctx context.Context) ([]models.RemoteTransactionRow, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var list models.TransactionListResponse
	resp, err := req.SetResult(&list).Get(transactionsPath)
	if err != nil {
		return nil, fmt.Errorf("fetch transactions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if list.Rows == nil {
		return []models.RemoteTransactionRow{}, nil
	}
	return list.Rows, nil
}

func (h *httpRemoteAdapter) PushTransaction(ctx context.Context, row models.RemoteTransactionRow) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("encode transaction: %w", err)
	}
	if sum := h.hasher.SumHex(body); sum != "" {
		req.SetHeader(HashHeader, sum)
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", row.ID).
		SetBody(body).
		Put(transactionPath)
	if err != nil {
		return fmt.Errorf("push transaction request: %w", err)
	}

	return mapHTTPError(resp)
}

// PushTransactions sends rows to POST /api/transactions/batch with the hash
// of the JSON-encoded rows in the request body.
func (h *httpRemoteAdapter) PushTransactions(ctx context.Context, rows []models.RemoteTransactionRow) error {
	if len(rows) == 0 {
		return nil
	}
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	batch := models.TransactionBatchRequest{
		Rows:   rows,
		Length: len(rows),
		Hash:   computeTransportHash(h.hasher, rows),
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(batch).
		Post(transactionsBatchPath)
	if err != nil {
		return fmt.Errorf("push transactions request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteAdapter) DeleteTransaction(ctx context.Context, id string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetPathParam("id", id).Delete(transactionPath)
	if err != nil {
		return fmt.Errorf("delete transaction request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteAdapter) DeleteTransactions(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.DeleteBatchRequest{IDs: ids, Length: len(ids)}).
		Post(transactionsDelPath)
	if err != nil {
		return fmt.Errorf("delete transactions request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoOwner
	}
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}

func computeTransportHash(hasher *utils.Hasher, v any) string {
	if !hasher.Enabled() {
		return ""
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return hasher.SumHex(payload)
}
