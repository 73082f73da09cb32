// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store inspects the database URI handed to the API server.
//
// Hyperdrive never opens the database itself. [Inspect] parses the URI with
// the parser of the matching driver (mongo-driver for mongodb, pgx for
// postgres), reports which backend is configured and produces a redacted
// form that is safe to print in the startup log.
package store
