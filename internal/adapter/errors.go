// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCacheURL      = errors.New("invalid redis url")
	ErrInvalidRunnerConfig  = errors.New("invalid cloud runner config")
	ErrCloudFunctionFailed  = errors.New("cloud function failed")
	ErrInvalidCloudResponse = errors.New("invalid cloud function response")
	ErrLoadingAWSConfig     = errors.New("error loading aws config")
)

// ScriptFailed is the error code used when the server did not report one.
const ScriptFailed = 141

// CloudError is the error body returned by the API server when a cloud
// function fails.
type CloudError struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
}

func (e *CloudError) Error() string {
	return fmt.Sprintf("cloud error %d: %s", e.Code, e.Message)
}

func (e *CloudError) Unwrap() error {
	return ErrCloudFunctionFailed
}
