// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/hyperdrive/internal/config"
	"github.com/MKhiriev/hyperdrive/models"
)

// NewDashboardOptions builds the dashboard configuration for the single
// configured app. A login is required outside development mode when a
// dashboard user is set.
func NewDashboardOptions(values config.Values, runtime config.Runtime) models.DashboardOptions {
	appName := values.String(config.KeyAppName)
	if appName == "" {
		appName = models.DefaultDashboardAppName
	}

	opts := models.DashboardOptions{
		Apps: []models.DashboardApp{{
			ServerURL:     values.String(config.KeyServerURL),
			AppID:         values.String(config.KeyAppID),
			MasterKey:     values.String(config.KeyMasterKey),
			JavascriptKey: values.String(config.KeyJavascriptKey),
			AppName:       appName,
		}},
		Settings: models.DashboardSettings{AllowInsecureHTTP: true},
	}

	if user := values.String(config.KeyDashboardUser); user != "" && !runtime.IsDevelopment() {
		opts.Users = []models.DashboardUser{{
			User: user,
			Pass: values.String(config.KeyDashboardPassword),
		}}
	}

	return opts
}
