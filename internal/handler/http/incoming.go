// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/MKhiriev/hyperdrive/internal/adapter"
	"github.com/MKhiriev/hyperdrive/internal/logger"
	"github.com/MKhiriev/hyperdrive/internal/utils"
	"github.com/MKhiriev/hyperdrive/models"
	"github.com/go-chi/chi/v5"
)

// incoming routes POST {incomingMount}/{method} to the cloud function named
// method. The result is returned with 200; any failure with 400 and the
// error body.
func (h *Handler) incoming(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	method := chi.URLParam(r, "method")
	start := time.Now()

	body, err := decodeWebhookBody(r)
	if err != nil {
		log.Warn().Err(err).Str("method", method).Msg("incoming webhook rejected")
		h.metrics.observeWebhook(method, outcomeRejected, time.Since(start))
		_, _ = utils.WriteJSON(w, adapter.CloudError{Code: codeInvalidJSON, Message: err.Error()}, http.StatusBadRequest)
		return
	}

	req := models.WebhookRequest{
		Method:     method,
		Parameters: map[string]string{"method": method},
		Query:      queryParams(r.URL.Query()),
		Body:       body,
	}

	log.Info().Str("method", method).Interface("body", body).Msg("incoming webhook received")

	result, err := h.deps.Runner.Run(r.Context(), method, req.Params())
	if err != nil {
		log.Error().Err(err).Str("method", method).Msg("failed to route incoming webhook")
		h.metrics.observeWebhook(method, outcomeFailed, time.Since(start))
		_, _ = utils.WriteJSON(w, webhookError(err), http.StatusBadRequest)
		return
	}

	h.metrics.observeWebhook(method, outcomeSucceeded, time.Since(start))
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func webhookError(err error) *adapter.CloudError {
	var cloudErr *adapter.CloudError
	if errors.As(err, &cloudErr) {
		return cloudErr
	}
	return &adapter.CloudError{Code: codeInternalServer, Message: err.Error()}
}

// decodeWebhookBody accepts JSON and urlencoded bodies. Other content types
// and empty bodies decode to an empty object.
func decodeWebhookBody(r *http.Request) (any, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/json":
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidWebhookBody, err)
		}
		if len(raw) == 0 {
			return map[string]any{}, nil
		}
		var body any
		if err = json.Unmarshal(raw, &body); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidWebhookBody, err)
		}
		return body, nil
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidWebhookBody, err)
		}
		return queryParams(r.PostForm), nil
	}

	return map[string]any{}, nil
}

// queryParams flattens single values; repeated keys stay lists.
func queryParams(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		if len(v) == 1 {
			out[k] = v[0]
			continue
		}
		out[k] = v
	}
	return out
}
