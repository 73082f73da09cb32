// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MinKeyLength is the minimum length of the application id and master key.
const MinKeyLength = 5

// ValidateStartup checks the resolved configuration before the server is
// started. It returns a [*MissingRequiredValueError] for a missing or too
// short application id or master key, and [ErrPortUnresolved] when no port
// is set, and a [*MountPathError] for a malformed or duplicated route.
func ValidateStartup(values Values) error {
	keyRules := []validation.Rule{
		validation.Required.Error("is required"),
		validation.RuneLength(MinKeyLength, 0).Error("should be at least 5 characters"),
	}

	for _, key := range []string{KeyAppID, KeyMasterKey} {
		if err := validation.Validate(values.String(key), keyRules...); err != nil {
			return &MissingRequiredValueError{Key: key, Reason: err.Error()}
		}
	}

	port, ok := values.Int(KeyPort)
	err := validation.Validate(port,
		validation.Required,
		validation.Min(1),
		validation.Max(65535),
	)
	if !ok || err != nil {
		return ErrPortUnresolved
	}

	return validateMounts(values)
}

// IsStartupError reports whether err was produced by [ValidateStartup].
func IsStartupError(err error) bool {
	return errors.Is(err, ErrMissingRequiredValue) || errors.Is(err, ErrPortUnresolved) ||
		errors.Is(err, ErrInvalidMountPath)
}
