// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the hyperdrive HTTP server.
//
// It binds the listener, reports the bound address once requests can be
// accepted, and shuts the server down gracefully on SIGINT, SIGTERM, SIGQUIT
// or cancellation of the run context.
package server
