// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app bootstraps a hyperdrive server.
//
// [New] resolves the configuration: it snapshots the environment, merges the
// override file, programmatic overrides and the database flag, resolves the
// option table and runs the derivation pass. [Hyperdrive.Start] validates
// the result, configures the backend adapters, mounts the routes, prints the
// startup summary and serves until the context is cancelled or the process
// receives a stop signal.
package app
