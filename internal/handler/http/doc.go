// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP surface hyperdrive mounts around the API
// server.
//
// [Handler.Init] wires the chi router: the version health check at GET /,
// static files, the API and dashboard sub-handlers, incoming webhooks routed
// to cloud functions, the configuration endpoint and Prometheus metrics.
// Every request passes through panic recovery, trace id, body size limit and
// access logging middleware.
package http
