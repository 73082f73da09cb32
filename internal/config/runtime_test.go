// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRuntime_Defaults(t *testing.T) {
	r, err := ParseRuntime(Env{})
	require.NoError(t, err)

	assert.Equal(t, ModeDevelopment, r.Mode)
	assert.True(t, r.IsDevelopment())
	assert.Equal(t, "info", r.LogLevel)
	assert.Equal(t, "", r.ConfigFile)
	assert.Equal(t, 10*time.Second, r.ShutdownTimeout)
}

func TestParseRuntime_FromEnv(t *testing.T) {
	r, err := ParseRuntime(Env{
		"HYPERDRIVE_ENV":              "production",
		"HYPERDRIVE_LOG_LEVEL":        "debug",
		"HYPERDRIVE_CONFIG":           "/etc/hyperdrive.yaml",
		"HYPERDRIVE_SHUTDOWN_TIMEOUT": "3s",
	})
	require.NoError(t, err)

	assert.Equal(t, "production", r.Mode)
	assert.False(t, r.IsDevelopment())
	assert.Equal(t, "debug", r.LogLevel)
	assert.Equal(t, "/etc/hyperdrive.yaml", r.ConfigFile)
	assert.Equal(t, 3*time.Second, r.ShutdownTimeout)
}

func TestParseRuntime_InvalidDuration(t *testing.T) {
	_, err := ParseRuntime(Env{"HYPERDRIVE_SHUTDOWN_TIMEOUT": "soon"})
	assert.Error(t, err)
}
