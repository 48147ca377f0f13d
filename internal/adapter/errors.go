// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrRemoteNotConfigured is returned by every call of the adapter built
	// without a backend address.
	ErrRemoteNotConfigured = errors.New("remote backend is not configured")

	// ErrNoOwner is returned by authenticated calls made before a profile
	// upsert handed out a token.
	ErrNoOwner = errors.New("no owner token")
)
