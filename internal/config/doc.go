// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config resolves the server configuration.
//
// The option table ([DefaultDefinitions]) declares every recognised option
// with its environment variable, default, transform and help text. [Resolve]
// applies, per option, the precedence
//  1. programmatic or file overrides
//  2. environment variables
//  3. static or computed defaults
//
// and omits options that end up without a value. [Derive] then fills the
// options that depend on other resolved options, and [ValidateStartup]
// checks the result before the server is started.
package config
