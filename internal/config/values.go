// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Values is the resolved configuration: option name to value. Keys are
// present only when a value was determined. Values are strings, ints,
// bools or []string.
type Values map[string]any

// Has reports whether key was resolved.
func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// String returns the value of key as a string, or "" when absent.
func (v Values) String(key string) string {
	raw, ok := v[key]
	if !ok || raw == nil {
		return ""
	}
	return cast.ToString(raw)
}

// Int returns the value of key as an int and whether it could be read as one.
func (v Values) Int(key string) (int, bool) {
	raw, ok := v[key]
	if !ok {
		return 0, false
	}
	n, err := cast.ToIntE(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Bool returns the value of key as a bool; absent keys are false.
func (v Values) Bool(key string) bool {
	raw, ok := v[key]
	if !ok {
		return false
	}
	b, _ := raw.(bool)
	return b
}

// Strings returns the value of key as a list, or nil when it is not one.
func (v Values) Strings(key string) []string {
	s, _ := v[key].([]string)
	return s
}

// Clone returns a shallow copy; slices are copied.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = cloneValue(val)
	}
	return out
}

// isEmpty reports whether a raw value counts as unset: nil, an empty string
// or an empty list. Booleans and numbers are never empty.
func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []string:
		return len(val) == 0
	case []any:
		return len(val) == 0
	}
	return false
}

func describeValue(v any) string {
	switch val := v.(type) {
	case []string:
		return "[" + strings.Join(val, ",") + "]"
	case string:
		if val == "" {
			return `""`
		}
		return val
	}
	return fmt.Sprint(v)
}
