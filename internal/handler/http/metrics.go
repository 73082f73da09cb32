// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSucceeded = "succeeded"
	outcomeFailed    = "failed"
	outcomeRejected  = "rejected"
)

// Metrics contains Prometheus metrics for incoming webhooks.
type Metrics struct {
	webhooks        *prometheus.CounterVec
	webhookDuration *prometheus.HistogramVec
}

// NewMetrics registers the webhook collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		webhooks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hyperdrive_incoming_webhooks_total",
				Help: "Total number of incoming webhooks routed to cloud functions",
			},
			[]string{"function", "outcome"},
		),

		webhookDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hyperdrive_incoming_webhook_duration_seconds",
				Help:    "Time spent routing an incoming webhook",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"function"},
		),
	}
}

// observeWebhook is a no-op on a nil receiver.
func (m *Metrics) observeWebhook(function, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.webhooks.WithLabelValues(function, outcome).Inc()
	m.webhookDuration.WithLabelValues(function).Observe(took.Seconds())
}
