// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/MKhiriev/hyperdrive/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodyBytes bounds request bodies read by hyperdrive's own routes.
const maxBodyBytes = 1 << 20

// Init builds the router. Disabled mounts (empty value) get no route.
func (h *Handler) Init() *chi.Mux {
	values := h.deps.Values

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.getServerVersion)

	if staticPath := values.String(config.KeyStaticFilesPath); staticPath != "" {
		h.mountStatic(router, staticPath)
	}

	if mount := values.String(config.KeyParseMount); mount != "" && h.deps.API != nil {
		router.Mount(mount, http.StripPrefix(mount, h.deps.API))
	}

	if mount := values.String(config.KeyDashboardMount); mount != "" && h.deps.Dashboard != nil {
		router.Mount(mount, http.StripPrefix(mount, h.deps.Dashboard))
	}

	if mount := values.String(config.KeyIncomingMount); mount != "" && h.deps.Runner != nil {
		router.With(middleware.RequestSize(maxBodyBytes)).
			Post(mount+"/{method}", h.incoming)
	}

	if route := ConfigRoute(values); route != "" {
		router.Get(route, h.serverConfig)
	}

	if mount := values.String(config.KeyMetricsMount); mount != "" && h.deps.Registry != nil {
		router.Handle(mount, promhttp.HandlerFor(h.deps.Registry, promhttp.HandlerOpts{}))
	}

	return router
}

// ConfigRoute returns the path of the configuration endpoint, see
// [config.ConfigRoute].
func ConfigRoute(values config.Values) string {
	return config.ConfigRoute(values)
}

func (h *Handler) mountStatic(router chi.Router, staticPath string) {
	cwd, err := os.Getwd()
	if err != nil {
		h.logger.Err(err).Str("path", staticPath).Msg("static files are not served")
		return
	}

	dir := filepath.Join(cwd, staticPath)
	fs := http.StripPrefix(staticPath, http.FileServer(http.Dir(dir)))
	router.Handle(staticPath+"/*", fs)
}
