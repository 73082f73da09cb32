// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"

	"github.com/caarlos0/env/v11"
)

const (
	// DefaultRedisURL replaces the "default" sentinel for the cache URL.
	DefaultRedisURL = "redis://localhost:6379"

	// DefaultDatabaseURI is used when no database variable is set at all.
	DefaultDatabaseURI = "mongodb://localhost:27017/parse"

	redisURLSentinel = "default"
)

// databaseURIFallbacks are probed in order when DATABASE_URI is empty.
var databaseURIFallbacks = []string{"MONGODB_URI", "DATABASE_URL", "PARSE_SERVER_DATABASE_URI"}

// Env is an immutable snapshot of the process environment. Resolution reads
// from a snapshot instead of the live process environment so that the
// normalization below never mutates global state.
type Env map[string]string

// NewEnv builds a normalized snapshot from KEY=VALUE pairs as returned by
// [os.Environ].
func NewEnv(environ []string) Env {
	return Env(env.ToMap(environ)).Normalize()
}

// ProcessEnv snapshots and normalizes the current process environment.
func ProcessEnv() Env {
	return NewEnv(os.Environ())
}

// Get returns the value of key, or "" when it is unset.
func (e Env) Get(key string) string {
	return e[key]
}

// FirstOf returns the first non-empty value among keys.
func (e Env) FirstOf(keys ...string) string {
	for _, k := range keys {
		if v := e[k]; v != "" {
			return v
		}
	}
	return ""
}

// Normalize returns a copy of e with the well-known rewrites applied:
// the REDIS_URL "default" sentinel is expanded and DATABASE_URI falls back
// to the first of MONGODB_URI, DATABASE_URL and PARSE_SERVER_DATABASE_URI.
func (e Env) Normalize() Env {
	out := make(Env, len(e)+1)
	for k, v := range e {
		out[k] = v
	}

	if out["REDIS_URL"] == redisURLSentinel {
		out["REDIS_URL"] = DefaultRedisURL
	}

	if out["DATABASE_URI"] == "" {
		if uri := out.FirstOf(databaseURIFallbacks...); uri != "" {
			out["DATABASE_URI"] = uri
		}
	}

	return out
}
