// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the HTTP server.
type Server interface {
	// RunServer binds the listener and serves requests until ctx is done or a
	// stop signal arrives, then shuts down gracefully. It returns an error if
	// binding fails or the server stops unexpectedly.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops a running server.
	Shutdown(ctx context.Context) error
}
