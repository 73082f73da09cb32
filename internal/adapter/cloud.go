// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/hyperdrive/internal/logger"
	"github.com/MKhiriev/hyperdrive/internal/utils"
)

const (
	headerApplicationID = "X-Parse-Application-Id"
	headerMasterKey     = "X-Parse-Master-Key"

	defaultRunnerTimeout = 30 * time.Second
)

// CloudRunnerConfig holds what the runner needs to reach the API server.
type CloudRunnerConfig struct {
	ServerURL string
	AppID     string
	MasterKey string
	Timeout   time.Duration
}

type httpCloudRunner struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewCloudFunctionRunner constructs a REST implementation of
// [CloudFunctionRunner]. Every request carries the application id and the
// master key.
//
// Returns [ErrInvalidRunnerConfig] if the server URL is not absolute or the
// application id is empty.
func NewCloudFunctionRunner(cfg CloudRunnerConfig, log *logger.Logger) (CloudFunctionRunner, error) {
	u, err := url.Parse(strings.TrimSpace(cfg.ServerURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: server url %q must include scheme and host", ErrInvalidRunnerConfig, cfg.ServerURL)
	}
	if cfg.AppID == "" {
		return nil, fmt.Errorf("%w: application id is empty", ErrInvalidRunnerConfig)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultRunnerTimeout
	}

	client := utils.NewHTTPClient(strings.TrimRight(u.String(), "/"), cfg.Timeout)
	client.SetHeader(headerApplicationID, cfg.AppID)
	if cfg.MasterKey != "" {
		client.SetHeader(headerMasterKey, cfg.MasterKey)
	}

	return &httpCloudRunner{client: client, logger: log}, nil
}

// Run implements [CloudFunctionRunner].
func (r *httpCloudRunner) Run(ctx context.Context, name string, params map[string]any) (json.RawMessage, error) {
	if params == nil {
		params = map[string]any{}
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(params).
		Post("/functions/" + url.PathEscape(name))
	if err != nil {
		return nil, fmt.Errorf("cloud function %s request: %w", name, err)
	}
	if err = mapCloudError(resp); err != nil {
		r.logger.Debug().Str("function", name).Int("status", resp.StatusCode()).Err(err).Msg("cloud function failed")
		return nil, err
	}

	var payload struct {
		Result json.RawMessage `json:"result"`
	}
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCloudResponse, err)
	}

	result := bytes.TrimSpace(payload.Result)
	if len(result) == 0 {
		return json.RawMessage("null"), nil
	}

	return json.RawMessage(result), nil
}
