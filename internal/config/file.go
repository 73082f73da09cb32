// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ReadFile decodes an override file. The format follows the extension:
// json, yaml, yml and toml are supported. Keys come back lowercased; the
// resolver matches them case-insensitively.
func ReadFile(path string) (map[string]any, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadingConfigFile, path, err)
	}

	return v.AllSettings(), nil
}
