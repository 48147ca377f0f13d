// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Authorization header errors.
var (
	ErrEmptyAuthorizationHeader   = errors.New("empty `Authorization` header")
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
	ErrEmptyToken                 = errors.New("empty token in `Authorization` header")
)

var (
	ErrInvalidJSON      = errors.New("invalid JSON was passed")
	ErrIDMismatch       = errors.New("row id does not match the path")
	ErrIntegrityCheck   = errors.New("integrity check failed")
	ErrNoOwnerInRequest = errors.New("no owner id in request")
)
