// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the hosted backend's HTTP listener until SIGTERM,
// SIGINT or SIGQUIT and then shuts it down gracefully.
package server
