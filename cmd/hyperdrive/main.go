// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command hyperdrive configures and starts a Parse server from environment
// variables, an optional override file and command line flags.
package main

import (
	"context"
	"os"

	"github.com/MKhiriev/hyperdrive/internal/cli"
	"github.com/MKhiriev/hyperdrive/models"
	"github.com/subosito/gotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string

	// apiServerVersion is the version of the API server this build mounts.
	apiServerVersion string
)

func main() {
	// a missing .env is not an error
	_ = gotenv.Load()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit, apiServerVersion)

	os.Exit(cli.Execute(context.Background(), cli.Deps{BuildInfo: buildInfo}))
}
