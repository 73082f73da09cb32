// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/hyperdrive/internal/adapter"
	"github.com/MKhiriev/hyperdrive/internal/config"
	handler "github.com/MKhiriev/hyperdrive/internal/handler/http"
	"github.com/MKhiriev/hyperdrive/internal/store"
	"github.com/MKhiriev/hyperdrive/models"
	"github.com/charmbracelet/lipgloss"
)

const (
	redactedSuffix = "**REDACTED**"
	unset          = "-"
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	labelStyle  = lipgloss.NewStyle().Width(15)
)

type logRow struct {
	label string
	value string
}

// redactKey keeps the first five characters of a secret.
func redactKey(key string) string {
	if len(key) > config.MinKeyLength {
		key = key[:config.MinKeyLength]
	}
	return key + redactedSuffix
}

func orUnset(s string) string {
	if s == "" {
		return unset
	}
	return s
}

// startupRows lists what the startup summary prints. Secrets are shown in
// full only in development mode.
func startupRows(values config.Values, runtime config.Runtime, adapters *adapter.Adapters) []logRow {
	dev := runtime.IsDevelopment()

	masterKey := values.String(config.KeyMasterKey)
	databaseURI := values.String(config.KeyDatabaseURI)
	if !dev {
		masterKey = redactKey(masterKey)
		if databaseURI != "" {
			databaseURI = store.Redact(databaseURI)
		}
	}

	rows := []logRow{
		{"ENV", runtime.Mode},
		{"SERVER URL", values.String(config.KeyServerURL)},
		{"DATABASE URI", orUnset(databaseURI)},
		{"APP ID", values.String(config.KeyAppID)},
		{"MASTER KEY", masterKey},
		{"REST API KEY", values.String(config.KeyRestAPIKey)},
		{"CLIENT KEY", values.String(config.KeyClientKey)},
		{"JAVASCRIPT KEY", values.String(config.KeyJavascriptKey)},
		{"WEBHOOKS KEY", values.String(config.KeyWebhookKey)},
		{"CLOUD CODE", orUnset(values.String(config.KeyCloud))},
		{"INCOMING PATH", orUnset(values.String(config.KeyIncomingMount))},
		{"CONFIG ROUTE", orUnset(handler.ConfigRoute(values))},
		{"DASHBOARD", orUnset(values.String(config.KeyDashboardMount))},
		{"REDIS URL", orUnset(cacheString(adapters))},
	}

	if adapters == nil {
		return rows
	}

	if adapters.Email != nil && values.String(config.KeySystemEmailAddress) != "" {
		rows = append(rows, logRow{"SYSTEM EMAIL", values.String(config.KeySystemEmailAddress)})
	}

	rows = append(rows, logRow{"FILES STORE", adapters.Files.String()})
	if adapters.S3Configured() && adapters.Files.S3.BaseURL != "" {
		rows = append(rows, logRow{"AWS BASE URL", adapters.Files.S3.BaseURL})
	}

	if adapters.AWSConfigured() {
		rows = append(rows, logRow{"AWS ACCESS KEY", values.String(config.KeyAccessKeyID) + ":" + adapters.AWS.Region})

		if push := adapters.Push; push != nil {
			if push.IOS != nil {
				rows = append(rows,
					logRow{"APNS BUNDLE ID", push.IOS.BundleID},
					logRow{"APNS SNS", push.IOS.ARN},
				)
			}
			if push.Android != nil {
				rows = append(rows, logRow{"FIREBASE SNS", push.Android.ARN})
			}
		}
	}

	if fb, ok := adapters.OAuth[adapter.ProviderFacebook]; ok {
		rows = append(rows, logRow{"FACEBOOK IDS", strings.Join(fb.AppIDs, ",")})
	}

	return rows
}

func cacheString(adapters *adapter.Adapters) string {
	if adapters == nil || adapters.Cache == nil {
		return ""
	}
	return adapters.Cache.String()
}

func writeStartupLog(out io.Writer, info models.AppBuildInfo, rows []logRow) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, bannerStyle.Render(fmt.Sprintf("------------ %s ------------", info.Banner())))
	for _, r := range rows {
		fmt.Fprintf(out, "%s: %s\n", labelStyle.Render(r.label), r.value)
	}
}

func (h *Hyperdrive) printStartupLog() {
	writeStartupLog(h.out, h.opts.BuildInfo, startupRows(h.values, h.runtime, h.adapters))
}
