// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strconv"
)

// Derive fills the options that depend on other resolved options. It must
// run after [Resolve] and mutates values in place:
//   - serverURL defaults to https://{serverHost}{parseMount}, or
//     http://localhost:{port}{parseMount} without a host;
//   - a redisURL equal to "default" is expanded to [DefaultRedisURL];
//   - appName defaults to the hostname of serverURL;
//   - systemEmailAddress defaults to no-reply@{hostname}.
//
// It returns the parsed server URL.
func Derive(values Values) (*url.URL, error) {
	if values.String(KeyServerURL) == "" {
		base := "http://localhost:" + portString(values)
		if host := values.String(KeyServerHost); host != "" {
			base = "https://" + host
		}
		values[KeyServerURL] = base + values.String(KeyParseMount)
	}

	serverURL, err := url.Parse(values.String(KeyServerURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidServerURL, err)
	}

	if values.String(KeyRedisURL) == redisURLSentinel {
		values[KeyRedisURL] = DefaultRedisURL
	}

	hostname := serverURL.Hostname()

	if values.String(KeyAppName) == "" && hostname != "" {
		values[KeyAppName] = hostname
	}

	if values.String(KeySystemEmailAddress) == "" && hostname != "" {
		values[KeySystemEmailAddress] = "no-reply@" + hostname
	}

	return serverURL, nil
}

func portString(values Values) string {
	if port, ok := values.Int(KeyPort); ok {
		return strconv.Itoa(port)
	}
	return values.String(KeyPort)
}
