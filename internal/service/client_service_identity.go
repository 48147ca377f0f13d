// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/models"
)

// IdentityBridge resolves the auth provider's identity into an owner id.
// Profile upserts are keyed by external id, so resolving the same identity
// on every launch yields the same owner id.
type IdentityBridge struct {
	transport RemoteTransport
	logger    *logger.Logger
}

func NewIdentityBridge(transport RemoteTransport, logger *logger.Logger) *IdentityBridge {
	return &IdentityBridge{transport: transport, logger: logger}
}

// Resolve returns ok=false without I/O for an empty identity, and ok=false
// whenever the backend can't be reached.
func (b *IdentityBridge) Resolve(ctx context.Context, identity models.ExternalIdentity) (string, bool) {
	if identity.Empty() {
		return "", false
	}

	ownerID, ok := b.transport.UpsertOwnerProfile(ctx, identity)
	if !ok {
		b.logger.Warn().Str("func", "IdentityBridge.Resolve").Str("external_id", identity.ID).
			Msg("no owner id, continuing local-only")
		return "", false
	}

	b.logger.Info().Str("func", "IdentityBridge.Resolve").Str("external_id", identity.ID).
		Str("owner_id", ownerID).Msg("identity resolved")
	return ownerID, true
}
