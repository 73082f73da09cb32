// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/url"
)

// CacheAdapter describes the redis cache used by the API server.
type CacheAdapter struct {
	URL *url.URL
}

// NewCacheAdapter parses a redis URL. Only the redis and rediss schemes are
// accepted.
func NewCacheAdapter(raw string) (*CacheAdapter, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCacheURL, err)
	}
	if u.Scheme != "redis" && u.Scheme != "rediss" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidCacheURL, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidCacheURL)
	}

	return &CacheAdapter{URL: u}, nil
}

// String returns the URL with any password masked.
func (c *CacheAdapter) String() string {
	return c.URL.Redacted()
}
