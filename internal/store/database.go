// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"net/url"
	"strings"
)

// DatabaseKind is the backend selected by the URI scheme.
type DatabaseKind string

const (
	KindMongoDB  DatabaseKind = "mongodb"
	KindPostgres DatabaseKind = "postgres"
)

const redactedPassword = "xxxxx"

// DatabaseInfo describes a parsed database URI.
type DatabaseInfo struct {
	Kind     DatabaseKind
	Hosts    []string
	Database string
	User     string
	// Redacted is the URI with the password masked.
	Redacted string
}

// Inspect parses uri and reports its backend. Unknown schemes yield
// [ErrUnsupportedDatabase]; malformed URIs yield [ErrInvalidDatabaseURI].
func Inspect(uri string) (DatabaseInfo, error) {
	scheme, _, found := strings.Cut(uri, "://")
	if !found {
		if strings.Contains(uri, "=") {
			return inspectPostgres(uri)
		}
		return DatabaseInfo{}, fmt.Errorf("%w: %q", ErrUnsupportedDatabase, redactURL(uri))
	}

	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		return inspectMongo(uri)
	case "postgres", "postgresql":
		return inspectPostgres(uri)
	}

	return DatabaseInfo{}, fmt.Errorf("%w: %s", ErrUnsupportedDatabase, scheme)
}

// redactURL masks the password of a URL-style URI. Values that do not parse
// are returned as is when they carry no userinfo, and masked entirely
// otherwise.
func redactURL(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		if strings.Contains(uri, "@") {
			return redactedPassword
		}
		return uri
	}
	return u.Redacted()
}

// Redact returns uri with its password masked, for logging.
func Redact(uri string) string {
	if info, err := Inspect(uri); err == nil {
		return info.Redacted
	}
	return redactURL(uri)
}
