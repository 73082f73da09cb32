// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo carries immutable build-time metadata embedded into the
// hyperdrive binary, plus the version of the API server it was built
// against.
//
// Values are injected by linker flags during CI/CD and shown by
// `hyperdrive --version`, the startup banner and GET /.
type AppBuildInfo struct {
	buildVersion     string
	buildDate        string
	buildCommit      string
	apiServerVersion string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit, apiServerVersion string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion:     orNA(buildVersion),
		buildDate:        orNA(buildDate),
		buildCommit:      orNA(buildCommit),
		apiServerVersion: orNA(apiServerVersion),
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// APIServerVersion returns the version of the mounted API server.
func (a AppBuildInfo) APIServerVersion() string {
	return a.apiServerVersion
}

// Banner returns "v{build}[{api server}]" as printed in the startup log.
func (a AppBuildInfo) Banner() string {
	return fmt.Sprintf("v%s[%s]", a.buildVersion, a.apiServerVersion)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
