// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"bytes"
	"context"
	"net/url"
	"runtime"
	"testing"

	"github.com/MKhiriev/hyperdrive/internal/adapter"
	"github.com/MKhiriev/hyperdrive/internal/config"
	"github.com/MKhiriev/hyperdrive/internal/logger"
	"github.com/MKhiriev/hyperdrive/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowMap(rows []logRow) map[string]string {
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.label] = r.value
	}
	return out
}

func startupValues() config.Values {
	return config.Values{
		config.KeyAppID:          testAppID,
		config.KeyMasterKey:      testMasterKey,
		config.KeyServerURL:      "http://localhost:1337/parse",
		config.KeyDatabaseURI:    "postgres://user:secret@db:5432/app",
		config.KeyIncomingMount:  "/incoming",
		config.KeyDashboardMount: "/dashboard",
		config.KeyConfigKey:      "cfg",
	}
}

func TestRedactKey(t *testing.T) {
	assert.Equal(t, "klmno**REDACTED**", redactKey(testMasterKey))
	assert.Equal(t, "abc**REDACTED**", redactKey("abc"))
}

func TestStartupRows_ProductionRedactsSecrets(t *testing.T) {
	rows := rowMap(startupRows(startupValues(), config.Runtime{Mode: "production"}, nil))

	assert.Equal(t, "production", rows["ENV"])
	assert.Equal(t, "klmno**REDACTED**", rows["MASTER KEY"])
	assert.Equal(t, "postgres://user:xxxxx@db:5432/app", rows["DATABASE URI"])
	assert.Equal(t, "/cfg", rows["CONFIG ROUTE"])
	assert.Equal(t, "-", rows["CLOUD CODE"])
	assert.Equal(t, "-", rows["REDIS URL"])
	assert.NotContains(t, rows, "FILES STORE")
}

func TestStartupRows_DevelopmentShowsSecrets(t *testing.T) {
	rows := rowMap(startupRows(startupValues(), config.Runtime{Mode: config.ModeDevelopment}, nil))

	assert.Equal(t, testMasterKey, rows["MASTER KEY"])
	assert.Equal(t, "postgres://user:secret@db:5432/app", rows["DATABASE URI"])
}

func TestStartupRows_Adapters(t *testing.T) {
	values := startupValues()
	values[config.KeyAccessKeyID] = "AKIAEXAMPLE"
	values[config.KeySecretAccessKey] = "secret"
	values[config.KeyAWSRegion] = "eu-west-1"
	values[config.KeyS3Bucket] = "bucket"
	values[config.KeyS3BucketPrefix] = "files/"
	values[config.KeySNSFCM] = "arn:aws:sns:eu-west-1:1:app/GCM/x"
	values[config.KeyRedisURL] = "redis://:pw@cache:6379"
	values[config.KeySystemEmailAddress] = "no-reply@localhost"
	values[config.KeyFacebookAppIDs] = []string{"1", "2"}

	serverURL, _ := url.Parse("http://localhost:1337/parse")
	adapters, err := adapter.Configure(context.Background(), values, serverURL, logger.Nop())
	require.NoError(t, err)

	rows := rowMap(startupRows(values, config.Runtime{Mode: "production"}, adapters))

	assert.Equal(t, "s3:bucket/files/", rows["FILES STORE"])
	assert.Equal(t, "AKIAEXAMPLE:eu-west-1", rows["AWS ACCESS KEY"])
	assert.Equal(t, "arn:aws:sns:eu-west-1:1:app/GCM/x", rows["FIREBASE SNS"])
	assert.NotContains(t, rows, "APNS SNS")
	assert.Equal(t, "no-reply@localhost", rows["SYSTEM EMAIL"])
	assert.Equal(t, "1,2", rows["FACEBOOK IDS"])
	assert.Equal(t, "redis://:xxxxx@cache:6379", rows["REDIS URL"])
}

func TestWriteStartupLog(t *testing.T) {
	var out bytes.Buffer
	writeStartupLog(&out, models.NewAppBuildInfo("2.0.0", "", "", "7.1.0"), []logRow{{"APP ID", testAppID}})

	assert.Contains(t, out.String(), "v2.0.0[7.1.0]")
	assert.Contains(t, out.String(), "APP ID")
	assert.Contains(t, out.String(), testAppID)
}

func TestClusterProcs(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{name: "true uses every cpu", value: true, want: runtime.NumCPU()},
		{name: "false uses one", value: false, want: 1},
		{name: "explicit count", value: 3, want: 3},
		{name: "unset uses every cpu", value: nil, want: runtime.NumCPU()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := config.Values{}
			if tt.value != nil {
				values[config.KeyCluster] = tt.value
			}
			assert.Equal(t, tt.want, clusterProcs(values))
		})
	}
}
