// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/hyperdrive/internal/config"
	"github.com/MKhiriev/hyperdrive/internal/utils"
)

// serverConfig publishes the client-facing configuration as environment
// style keys, plus every publishEnvKeys variable set in the environment.
func (h *Handler) serverConfig(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.ServerConfig(), http.StatusOK)
}

// ServerConfig builds the body of the configuration endpoint. Unset values
// are omitted.
func (h *Handler) ServerConfig() map[string]string {
	v := h.deps.Values

	fields := []struct {
		key   string
		value string
	}{
		{"PARSE_APPLICATION_ID", v.String(config.KeyAppID)},
		{"PARSE_SERVER_APPLICATION_ID", v.String(config.KeyAppID)},
		{"PARSE_CLIENT_KEY", v.String(config.KeyClientKey)},
		{"PARSE_SERVER_CLIENT_KEY", v.String(config.KeyClientKey)},
		{"PARSE_SERVER_JAVASCRIPT_KEY", v.String(config.KeyJavascriptKey)},
		{"PARSE_SERVER_MASTER_KEY", v.String(config.KeyMasterKey)},
		{"PARSE_SERVER_REST_API_KEY", v.String(config.KeyRestAPIKey)},
		{"PARSE_SERVER_URL", v.String(config.KeyServerURL)},
		{"PARSE_SERVER_VERSION", h.deps.BuildInfo.APIServerVersion()},
		{"PARSE_DATABASE_URI", v.String(config.KeyDatabaseURI)},
		{"DATABASE_URI", v.String(config.KeyDatabaseURI)},
		{"PARSE_SERVER_WEBHOOK_KEY", v.String(config.KeyWebhookKey)},
		{"AWS_ACCESS_KEY_ID", v.String(config.KeyAccessKeyID)},
		{"AWS_SECRET_ACCESS_KEY", v.String(config.KeySecretAccessKey)},
		{"AWS_REGION", v.String(config.KeyAWSRegion)},
	}

	out := make(map[string]string, len(fields))
	for _, f := range fields {
		if f.value != "" {
			out[f.key] = f.value
		}
	}

	for _, key := range v.Strings(config.KeyPublishEnvKeys) {
		if value := h.deps.Env.Get(key); value != "" {
			out[key] = value
		}
	}

	return out
}
