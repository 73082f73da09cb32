// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"runtime"

	"github.com/MKhiriev/hyperdrive/internal/config"
)

// clusterProcs maps the cluster option onto a GOMAXPROCS value: true means
// every CPU, false a single one, a positive number that many.
func clusterProcs(values config.Values) int {
	switch v := values[config.KeyCluster].(type) {
	case bool:
		if v {
			return runtime.NumCPU()
		}
		return 1
	case int:
		if v > 0 {
			return v
		}
	}
	return runtime.NumCPU()
}

func applyCluster(values config.Values) int {
	procs := clusterProcs(values)
	runtime.GOMAXPROCS(procs)
	return procs
}
