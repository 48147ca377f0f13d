// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the ledger client and backend configuration.
//
// Values come from three sources, merged field by field:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path from CONFIG or -c/-config)
//
// A field set by an earlier source is never overwritten by a later one, so
// environment beats flags and flags beat the file.
//
// [GetClientConfig] and [GetServerConfig] project the merged
// [StructuredConfig] onto the settings each binary needs, apply defaults
// and validate the result.
package config
