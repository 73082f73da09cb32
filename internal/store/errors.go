// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrUnsupportedDatabase is returned for URIs whose scheme is neither
	// mongodb nor postgres.
	ErrUnsupportedDatabase = errors.New("unsupported database uri scheme")

	// ErrInvalidDatabaseURI is returned when the driver parser rejects the URI.
	ErrInvalidDatabaseURI = errors.New("invalid database uri")
)
