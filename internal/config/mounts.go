// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// routeMetachars are reserved by the router's pattern syntax.
const routeMetachars = "{}*"

// mountKeys are the options naming a path on the server, in mount order.
var mountKeys = []string{
	KeyStaticFilesPath,
	KeyParseMount,
	KeyDashboardMount,
	KeyIncomingMount,
	KeyMetricsMount,
}

// ConfigRoute returns the path of the configuration endpoint: "/" followed by
// configKey, or by the master key when configKey is unset. It is empty when
// the endpoint is disabled with "-" or no key is available.
func ConfigRoute(values Values) string {
	key := values.String(KeyConfigKey)
	if key == "-" {
		return ""
	}
	if key == "" {
		key = values.String(KeyMasterKey)
	}
	if key == "" {
		return ""
	}
	return "/" + key
}

// validateMounts checks that every configured path starts with a slash,
// holds no route pattern characters and is not shared with another option.
func validateMounts(values Values) error {
	type mount struct{ key, path string }

	mounts := make([]mount, 0, len(mountKeys)+1)
	for _, key := range mountKeys {
		if p := values.String(key); p != "" {
			mounts = append(mounts, mount{key, p})
		}
	}
	if route := ConfigRoute(values); route != "" {
		mounts = append(mounts, mount{KeyConfigKey, route})
	}

	seen := make(map[string]string, len(mounts))
	for _, m := range mounts {
		switch {
		case !strings.HasPrefix(m.path, "/"):
			return &MountPathError{Key: m.key, Path: m.path, Reason: "must begin with '/'"}
		case strings.ContainsAny(m.path, routeMetachars):
			return &MountPathError{Key: m.key, Path: m.path, Reason: fmt.Sprintf("must not contain any of %q", routeMetachars)}
		}
		if other, dup := seen[m.path]; dup {
			return &MountPathError{Key: m.key, Path: m.path, Reason: "already used by " + other}
		}
		seen[m.path] = m.key
	}
	return nil
}
