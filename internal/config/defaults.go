// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

type defaultKind int

const (
	noDefault defaultKind = iota
	staticDefault
	computedDefault
)

// Default is the fallback value of an option: nothing, a static value, or a
// value computed from the environment snapshot. The zero value is "no
// default".
type Default struct {
	kind    defaultKind
	value   any
	compute func(Env) any
}

// NoDefault declares that the option is omitted when it is not set.
func NoDefault() Default {
	return Default{kind: noDefault}
}

// Static declares a fixed default value.
func Static(v any) Default {
	return Default{kind: staticDefault, value: v}
}

// Computed declares a default evaluated lazily against the environment
// snapshot, only when neither an override nor an env value is present.
func Computed(fn func(Env) any) Default {
	return Default{kind: computedDefault, compute: fn}
}

// Declared reports whether a default exists.
func (d Default) Declared() bool {
	return d.kind != noDefault
}

// Value returns the default for env and whether one is declared.
// A computed default may still return nil.
func (d Default) Value(env Env) (any, bool) {
	switch d.kind {
	case staticDefault:
		return cloneValue(d.value), true
	case computedDefault:
		if d.compute == nil {
			return nil, true
		}
		return d.compute(env), true
	default:
		return nil, false
	}
}

// Describe renders the default for help output.
func (d Default) Describe() string {
	switch d.kind {
	case staticDefault:
		return describeValue(d.value)
	case computedDefault:
		return "(computed)"
	default:
		return "-"
	}
}

// cloneValue keeps static slice defaults from being shared between
// resolved configurations.
func cloneValue(v any) any {
	if s, ok := v.([]string); ok {
		out := make([]string, len(s))
		copy(out, s)
		return out
	}
	return v
}
