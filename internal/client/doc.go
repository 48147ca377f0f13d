// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the headless ledger client: it loads the local
// ledger, signs in with the configured identity and keeps the foreground
// sync job running until the process is asked to stop.
package client
