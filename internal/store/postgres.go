// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
)

func inspectPostgres(uri string) (DatabaseInfo, error) {
	cfg, err := pgconn.ParseConfig(uri)
	if err != nil {
		return DatabaseInfo{}, fmt.Errorf("%w: %w", ErrInvalidDatabaseURI, err)
	}

	host := net.JoinHostPort(cfg.Host, strconv.Itoa(int(cfg.Port)))
	hosts := []string{host}
	for _, fb := range cfg.Fallbacks {
		h := net.JoinHostPort(fb.Host, strconv.Itoa(int(fb.Port)))
		if h != host {
			hosts = append(hosts, h)
		}
	}

	redacted := &url.URL{Scheme: "postgres", Host: host, Path: "/" + cfg.Database}
	if cfg.User != "" {
		redacted.User = url.User(cfg.User)
		if cfg.Password != "" {
			redacted.User = url.UserPassword(cfg.User, redactedPassword)
		}
	}

	return DatabaseInfo{
		Kind:     KindPostgres,
		Hosts:    hosts,
		Database: cfg.Database,
		User:     cfg.User,
		Redacted: redacted.String(),
	}, nil
}
