// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/hyperdrive/internal/utils"
)

// getServerVersion is the health check: the API server version as plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteText(w, h.deps.BuildInfo.APIServerVersion(), http.StatusOK)
}
