// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks ledger records and backend requests before they
// reach storage.
//
// A [Validator] may be scoped to a subset of fields by passing their names;
// with no names every rule for the value's type is applied.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
