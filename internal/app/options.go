// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"io"
	"net/http"

	"github.com/MKhiriev/hyperdrive/internal/adapter"
	"github.com/MKhiriev/hyperdrive/internal/config"
	"github.com/MKhiriev/hyperdrive/internal/logger"
	"github.com/MKhiriev/hyperdrive/models"
	"github.com/go-chi/chi/v5"
)

// APIFactory builds the API server mounted at parseMount. adapters carry
// the configured back-ends (cache, files, push, email, OAuth) for the API
// server to use.
type APIFactory func(values config.Values, adapters *adapter.Adapters) (http.Handler, error)

// DashboardFactory builds the dashboard mounted at dashboardMount.
type DashboardFactory func(opts models.DashboardOptions) (http.Handler, error)

// Hook receives the router before the server starts (BeforeBoot) or once it
// is listening (AfterBoot).
type Hook func(router chi.Router)

// Options configures a [Hyperdrive] instance. All fields are optional.
type Options struct {
	// Overrides take precedence over environment variables and the config
	// file. Keys are matched against option names case-insensitively.
	Overrides map[string]any
	// ConfigFile is an override file (json, yaml or toml). Defaults to
	// HYPERDRIVE_CONFIG.
	ConfigFile string
	// Database overrides databaseURI.
	Database string
	// Environ replaces os.Environ() as the environment source.
	Environ []string

	BuildInfo models.AppBuildInfo

	API       APIFactory
	Dashboard DashboardFactory

	BeforeBoot Hook
	AfterBoot  Hook

	// Logger defaults to a zerolog logger configured from the runtime
	// settings.
	Logger *logger.Logger
	// Output receives the startup summary. Defaults to os.Stdout.
	Output io.Writer
}
