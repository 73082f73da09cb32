// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// WebhookRequest is the parameter object passed to the cloud function that
// handles an incoming webhook.
type WebhookRequest struct {
	Method     string            `json:"method"`
	Parameters map[string]string `json:"parameters"`
	Query      map[string]any    `json:"query"`
	Body       any               `json:"body"`
}

// Params converts the request into cloud function parameters.
func (w WebhookRequest) Params() map[string]any {
	return map[string]any{
		"method":     w.Method,
		"parameters": w.Parameters,
		"query":      w.Query,
		"body":       w.Body,
	}
}
