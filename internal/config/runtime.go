// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ModeDevelopment is the run mode in which secrets are printed in full and
// the dashboard does not require a login.
const ModeDevelopment = "development"

// Runtime holds settings of the hyperdrive process itself, as opposed to
// the options handed to the API server.
type Runtime struct {
	// Mode is the run mode, e.g. "development" or "production".
	// Env: HYPERDRIVE_ENV
	Mode string `env:"HYPERDRIVE_ENV" envDefault:"development"`

	// LogLevel is a zerolog level name.
	// Env: HYPERDRIVE_LOG_LEVEL
	LogLevel string `env:"HYPERDRIVE_LOG_LEVEL" envDefault:"info"`

	// ConfigFile is an override file loaded when no -c flag is given.
	// Env: HYPERDRIVE_CONFIG
	ConfigFile string `env:"HYPERDRIVE_CONFIG"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	// Env: HYPERDRIVE_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"HYPERDRIVE_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// IsDevelopment reports whether the process runs in development mode.
func (r Runtime) IsDevelopment() bool {
	return r.Mode == ModeDevelopment
}

// ParseRuntime reads [Runtime] from the environment snapshot.
func ParseRuntime(e Env) (Runtime, error) {
	var r Runtime
	if err := env.ParseWithOptions(&r, env.Options{Environment: e}); err != nil {
		return Runtime{}, fmt.Errorf("error getting runtime env configs: %w", err)
	}
	return r, nil
}
