// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client runs until ctx is done.
type Client interface {
	Run(ctx context.Context) error
}
