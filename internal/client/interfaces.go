// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable front ends
// built on [App].
type Client interface {
	// Run blocks until the front end exits.
	Run(ctx context.Context) error
}
