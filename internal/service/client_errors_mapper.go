// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net"

	"github.com/MKhiriev/go-ledger-sync/internal/adapter"
)

// Reasons attached to remote failure logs.
const (
	reasonDisabled     = "disabled"
	reasonNoOwner      = "no_owner"
	reasonTimeout      = "timeout"
	reasonOffline      = "offline"
	reasonRejected     = "rejected"
	reasonUnauthorized = "unauthorized"
	reasonForbidden    = "forbidden"
	reasonServer       = "server_error"
	reasonUnknown      = "unknown"
)

// remoteFailureReason buckets an adapter error for the logs.
func remoteFailureReason(err error) string {
	var netErr net.Error

	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrRemoteNotConfigured):
		return reasonDisabled
	case errors.Is(err, adapter.ErrNoOwner):
		return reasonNoOwner
	case errors.Is(err, context.DeadlineExceeded):
		return reasonTimeout
	case errors.Is(err, adapter.ErrUnauthorized):
		return reasonUnauthorized
	case errors.Is(err, adapter.ErrForbidden):
		return reasonForbidden
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrConflict):
		return reasonRejected
	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return reasonServer
	case errors.As(err, &netErr):
		if netErr.Timeout() {
			return reasonTimeout
		}
		return reasonOffline
	default:
		return reasonUnknown
	}
}
