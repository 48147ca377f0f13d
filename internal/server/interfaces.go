// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server blocks in RunServer until shutdown is requested and releases its
// resources in Shutdown.
type Server interface {
	RunServer()
	Shutdown()
}
