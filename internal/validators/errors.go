// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID             = errors.New("invalid id")
	ErrInvalidOwnerID        = errors.New("invalid owner id")
	ErrInvalidType           = errors.New("invalid transaction type")
	ErrNegativeAmount        = errors.New("amount must not be negative")
	ErrEmptyCategory         = errors.New("category is required")
	ErrEmptyAccount          = errors.New("account is required")
	ErrMissingDestination    = errors.New("transfer requires a destination account")
	ErrUnexpectedDestination = errors.New("only transfers may have a destination account")
	ErrEmptyDate             = errors.New("date is required")
	ErrEmptyRows             = errors.New("rows list cannot be empty")
	ErrEmptyIDs              = errors.New("IDs list cannot be empty")
	ErrLengthMismatch        = errors.New("length does not match the number of entries")
	ErrEmptyExternalID       = errors.New("external id is required")
	ErrInvalidAccountName    = errors.New("account name is required")
	ErrInvalidAccountType    = errors.New("invalid account type")
	ErrInvalidCategoryName   = errors.New("category name is required")
	ErrInvalidCategoryKind   = errors.New("invalid category kind")
)
