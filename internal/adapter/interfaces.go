// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cloud_runner_mock.go -package=mock

// CloudFunctionRunner invokes cloud code functions on the API server.
type CloudFunctionRunner interface {
	// Run calls the cloud function name with params and returns the raw JSON
	// of its result. A failure reported by the server is returned as a
	// [*CloudError].
	Run(ctx context.Context, name string, params map[string]any) (json.RawMessage, error)
}
