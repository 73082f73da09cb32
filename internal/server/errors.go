// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrListen is returned when the listening socket cannot be bound.
	ErrListen = errors.New("error binding listener")

	// ErrServe is returned when the server stops with an error other than a
	// regular shutdown.
	ErrServe = errors.New("http server stopped unexpectedly")

	// ErrShutdown is returned when graceful shutdown does not complete.
	ErrShutdown = errors.New("http server shutdown failed")
)
