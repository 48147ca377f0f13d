// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-ledger-sync/internal/adapter"
)

type timeoutErr struct{ timeout bool }

func (e timeoutErr) Error() string   { return "net" }
func (e timeoutErr) Timeout() bool   { return e.timeout }
func (e timeoutErr) Temporary() bool { return false }

func TestRemoteFailureReason(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"disabled", adapter.ErrRemoteNotConfigured, reasonDisabled},
		{"no token yet", adapter.ErrNoOwner, reasonNoOwner},
		{"deadline", fmt.Errorf("fetch: %w", context.DeadlineExceeded), reasonTimeout},
		{"401", fmt.Errorf("%w: bad token", adapter.ErrUnauthorized), reasonUnauthorized},
		{"403", adapter.ErrForbidden, reasonForbidden},
		{"400", adapter.ErrBadRequest, reasonRejected},
		{"409", adapter.ErrConflict, reasonRejected},
		{"503", adapter.ErrServiceUnavailable, reasonServer},
		{"dial refused", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, reasonOffline},
		{"net timeout", fmt.Errorf("push: %w", timeoutErr{timeout: true}), reasonTimeout},
		{"anything else", errors.New("boom"), reasonUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, remoteFailureReason(tt.err))
		})
	}
}
