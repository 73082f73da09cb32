// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the hyperdrive command line.
//
//	hyperdrive -s                      start with environment configuration
//	hyperdrive -c config.yaml          start with an override file
//	hyperdrive -d postgres://db/app    start with a database override
//	hyperdrive --info masterKey        describe one option
//	hyperdrive -k                      print a random key
//	hyperdrive -i myproject            scaffold a new project
package cli
