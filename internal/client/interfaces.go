// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of the command-line client.
type Client interface {
	// Run executes the command named by args[0] with the remaining
	// arguments and returns when it completes.
	Run(ctx context.Context, args []string) error
}
