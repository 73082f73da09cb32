// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapCloudError converts a non-2xx response into a *CloudError. Bodies that
// are not in the {"code","error"} shape are kept verbatim as the message.
func mapCloudError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var cloudErr CloudError
	if err := json.Unmarshal(resp.Body(), &cloudErr); err == nil && cloudErr.Message != "" {
		if cloudErr.Code == 0 {
			cloudErr.Code = ScriptFailed
		}
		return &cloudErr
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return &CloudError{Code: ScriptFailed, Message: body}
}
