// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// OverridesBuilder collects override sources; later sources win for
// non-empty values.
type OverridesBuilder struct {
	sources []map[string]any
	err     error
}

// NewOverridesBuilder starts an empty override chain.
func NewOverridesBuilder() *OverridesBuilder {
	return &OverridesBuilder{
		sources: make([]map[string]any, 0, 3),
	}
}

// WithFile adds the decoded content of path. An empty path is a no-op.
func (b *OverridesBuilder) WithFile(path string) *OverridesBuilder {
	if path == "" {
		return b
	}

	fileOverrides, err := ReadFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, fileOverrides)
	return b
}

// WithValues adds programmatic overrides.
func (b *OverridesBuilder) WithValues(values map[string]any) *OverridesBuilder {
	if len(values) > 0 {
		b.sources = append(b.sources, values)
	}
	return b
}

// WithDatabase adds the database URI given on the command line.
func (b *OverridesBuilder) WithDatabase(uri string) *OverridesBuilder {
	if uri != "" {
		b.sources = append(b.sources, map[string]any{KeyDatabaseURI: uri})
	}
	return b
}

// Build merges all sources into a single override map.
func (b *OverridesBuilder) Build() (map[string]any, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during loading overrides: %w", b.err)
	}

	merged := make(map[string]any)
	for _, src := range b.sources {
		if err := mergo.Merge(&merged, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMergingOverrides, err)
		}
	}

	return merged, nil
}
