// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the client and the hosted
// backend: context keys, HMAC hashing, JSON responses, the resty client,
// owner tokens and id generation.
package utils

import (
	"context"
)

// contextKey keeps our context keys from colliding with other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// OwnerIDCtxKey holds the authenticated owner id on the server side.
var OwnerIDCtxKey = contextKey("ownerID")

// WithOwnerID returns a copy of ctx carrying ownerID.
func WithOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, OwnerIDCtxKey, ownerID)
}

// GetOwnerIDFromContext returns the owner id stored by the auth middleware.
// ok is false when the value is missing, empty or of the wrong type.
func GetOwnerIDFromContext(ctx context.Context) (string, bool) {
	ownerID, ok := ctx.Value(OwnerIDCtxKey).(string)
	if !ok || ownerID == "" {
		return "", false
	}
	return ownerID, true
}
