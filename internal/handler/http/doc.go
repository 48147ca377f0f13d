// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http is the REST surface of the hosted ledger backend.
//
// It wires chi routes for profile upsert, the owner-scoped transaction
// collection and the version probe. Tracing, access logging, gzip, bearer
// authentication and body integrity checks run as middleware before a
// request reaches the service layer.
package http
