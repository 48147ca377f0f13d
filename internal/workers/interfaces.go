// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background jobs as one unit.
package workers

import "context"

// Worker is a background job. Start must not block; Stop blocks until the
// job has exited and is safe to call on a stopped worker.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
