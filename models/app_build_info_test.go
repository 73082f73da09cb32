// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "2026-10-01", "abc123", "7.4.0")

	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "7.4.0", info.APIServerVersion())
	assert.Equal(t, "v1.2.0[7.4.0]", info.Banner())
}

func TestAppBuildInfo_EmptyValuesAreNA(t *testing.T) {
	info := NewAppBuildInfo("", "", "", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "vN/A[N/A]", info.Banner())
}
