// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// backend
var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrNoOwnerInContext        = errors.New("no owner id in request context")
)

// client
var (
	ErrInvalidTransaction       = errors.New("invalid transaction")
	ErrTransactionNotFound      = errors.New("transaction not found")
	ErrTransactionAlreadyExists = errors.New("transaction already exists")
	ErrInvalidAccount           = errors.New("invalid account")
	ErrInvalidCategory          = errors.New("invalid category")
	ErrNotLoaded                = errors.New("ledger is not loaded")
	ErrGuestMode                = errors.New("no owner id, running local-only")
	ErrAlreadySignedIn          = errors.New("another identity is already signed in")
	ErrSyncInProgress           = errors.New("sync pass already in progress")
	ErrSyncFailed               = errors.New("sync pass failed")
)
