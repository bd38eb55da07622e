// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves requests until ctx is done or a termination signal
	// arrives, then shuts down gracefully. It returns early with an error
	// when the listener cannot be started.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight
	// requests, bounded by the configured shutdown timeout.
	Shutdown() error
}
