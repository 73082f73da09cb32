// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the resolver, the override loaders and the
// startup validation. Callers match them with [errors.Is].
var (
	// ErrValueParse is wrapped by every [ValueParseError].
	ErrValueParse = errors.New("invalid option value")

	// ErrMissingRequiredValue is wrapped by every [MissingRequiredValueError].
	ErrMissingRequiredValue = errors.New("missing required option value")

	// ErrPortUnresolved indicates that no listening port could be determined
	// after resolution. The server must not attempt to bind.
	ErrPortUnresolved = errors.New("no port defined to start server, verify the PORT environment variable is set")

	// ErrUnknownOption is returned by [Definitions.Lookup] for names that are
	// not part of the option table.
	ErrUnknownOption = errors.New("unknown option")

	// ErrReadingConfigFile is returned when the override file cannot be read
	// or decoded.
	ErrReadingConfigFile = errors.New("error reading config file")

	// ErrMergingOverrides is returned when override sources cannot be merged.
	ErrMergingOverrides = errors.New("error merging overrides")

	// ErrInvalidMountPath is wrapped by every [MountPathError].
	ErrInvalidMountPath = errors.New("invalid mount path")

	// ErrInvalidServerURL is returned by [Derive] when the final server URL
	// cannot be parsed.
	ErrInvalidServerURL = errors.New("invalid server url")
)

// ValueParseError reports that an option transform rejected its input.
// Resolution of the whole table is aborted when it occurs.
type ValueParseError struct {
	Key    string
	Raw    any
	Reason string
}

func (e *ValueParseError) Error() string {
	return fmt.Sprintf("key %s has invalid value %v: %s", e.Key, e.Raw, e.Reason)
}

func (e *ValueParseError) Unwrap() error {
	return ErrValueParse
}

// MissingRequiredValueError reports an option that is required to start the
// server but is absent or too short.
type MissingRequiredValueError struct {
	Key    string
	Reason string
}

func (e *MissingRequiredValueError) Error() string {
	return fmt.Sprintf("%s %s", e.Key, e.Reason)
}

func (e *MissingRequiredValueError) Unwrap() error {
	return ErrMissingRequiredValue
}

// MountPathError reports a route option that cannot be mounted: it does not
// begin with a slash, holds route pattern characters or collides with
// another route.
type MountPathError struct {
	Key    string
	Path   string
	Reason string
}

func (e *MountPathError) Error() string {
	return fmt.Sprintf("%s %q %s", e.Key, e.Path, e.Reason)
}

func (e *MountPathError) Unwrap() error {
	return ErrInvalidMountPath
}
