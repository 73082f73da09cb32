// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/hyperdrive/internal/adapter"
	"github.com/MKhiriev/hyperdrive/internal/config"
	"github.com/MKhiriev/hyperdrive/internal/logger"
	"github.com/MKhiriev/hyperdrive/models"
	"github.com/prometheus/client_golang/prometheus"
)

// Dependencies are the collaborators of [Handler]. API, Dashboard, Runner
// and Registry are optional; the matching routes are skipped when nil.
type Dependencies struct {
	Values    config.Values
	Env       config.Env
	Runtime   config.Runtime
	BuildInfo models.AppBuildInfo

	Runner    adapter.CloudFunctionRunner
	API       http.Handler
	Dashboard http.Handler
	Registry  *prometheus.Registry
}

// Handler serves the hyperdrive routes.
type Handler struct {
	deps    Dependencies
	metrics *Metrics

	logger *logger.Logger
}

// NewHandler creates a Handler. Metrics are registered on deps.Registry
// when one is given.
func NewHandler(deps Dependencies, logger *logger.Logger) *Handler {
	h := &Handler{
		deps:   deps,
		logger: logger,
	}
	if deps.Registry != nil {
		h.metrics = NewMetrics(deps.Registry)
	}

	logger.Debug().Msg("http handler created")
	return h
}
