// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultDashboardAppName is shown in the dashboard when no app name is set.
const DefaultDashboardAppName = "Hyperdrive App"

// DashboardOptions is handed to the dashboard factory. Its JSON form matches
// the dashboard's own configuration file.
type DashboardOptions struct {
	Apps     []DashboardApp    `json:"apps"`
	Users    []DashboardUser   `json:"users,omitempty"`
	Settings DashboardSettings `json:"-"`
}

// DashboardApp is one application managed by the dashboard.
type DashboardApp struct {
	ServerURL     string `json:"serverURL"`
	AppID         string `json:"appId"`
	MasterKey     string `json:"masterKey"`
	JavascriptKey string `json:"javascriptKey"`
	AppName       string `json:"appName"`
}

// DashboardUser is a dashboard login.
type DashboardUser struct {
	User string `json:"user"`
	Pass string `json:"pass"`
}

// DashboardSettings are options of the dashboard server itself.
type DashboardSettings struct {
	AllowInsecureHTTP bool
}
