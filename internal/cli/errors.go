// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "errors"

// ErrProjectExists is returned by --init when the target directory exists.
var ErrProjectExists = errors.New("directory already exists")
