// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"

	"github.com/MKhiriev/hyperdrive/internal/config"
)

const keyBytes = 16

func printKey(out io.Writer) {
	fmt.Fprintf(out, "=>  %s\n", successStyle.Render(config.RandomKey(keyBytes)))
}
