// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// mongodb+srv URIs are resolved through DNS by the parser.
func inspectMongo(uri string) (DatabaseInfo, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return DatabaseInfo{}, fmt.Errorf("%w: %w", ErrInvalidDatabaseURI, err)
	}

	return DatabaseInfo{
		Kind:     KindMongoDB,
		Hosts:    cs.Hosts,
		Database: cs.Database,
		User:     cs.Username,
		Redacted: redactURL(uri),
	}, nil
}
