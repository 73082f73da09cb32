// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "sort"

// Resolve produces the configuration for defs. For every option the first
// non-empty value of override, environment variable and default is taken,
// the option's transform is applied to it, and absent results are omitted.
//
// The first transform failure aborts resolution and is returned as a
// [*ValueParseError]; no partial result is returned. Override keys that are
// not declared in defs are ignored, see [UnknownKeys].
func Resolve(defs Definitions, overrides map[string]any, env Env) (Values, error) {
	canonical := canonicalOverrides(defs, overrides)
	resolved := make(Values, defs.Len())

	for _, name := range defs.order {
		def := defs.byName[name]

		value, ok := resolveRaw(def, canonical, env)
		if !ok {
			continue
		}

		if def.Transform != nil && !isEmpty(value) {
			transformed, present, err := def.Transform(def.Name, value)
			if err != nil {
				return nil, err
			}
			if !present {
				continue
			}
			value = transformed
		}

		resolved[def.Name] = value
	}

	return resolved, nil
}

func resolveRaw(def Definition, overrides map[string]any, env Env) (any, bool) {
	if v, ok := overrides[def.Name]; ok && !isEmpty(v) {
		return v, true
	}
	if def.Env != "" {
		if v := env.Get(def.Env); v != "" {
			return v, true
		}
	}
	v, declared := def.Default.Value(env)
	if !declared || v == nil {
		return nil, false
	}
	return v, true
}

// canonicalOverrides maps override keys onto declared option names,
// case-insensitively. An exact-case key wins over a folded one.
func canonicalOverrides(defs Definitions, overrides map[string]any) map[string]any {
	out := make(map[string]any, len(overrides))
	for k, v := range overrides {
		name, ok := defs.Canonical(k)
		if !ok {
			continue
		}
		if _, exact := overrides[name]; exact && k != name {
			continue
		}
		out[name] = v
	}
	return out
}

// UnknownKeys lists override keys that do not match any option, sorted.
func UnknownKeys(defs Definitions, overrides map[string]any) []string {
	var unknown []string
	for k := range overrides {
		if _, ok := defs.Canonical(k); !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// Load resolves the default option table against the process environment.
func Load(overrides map[string]any) (Values, Env, error) {
	env := ProcessEnv()
	values, err := Resolve(DefaultDefinitions(), overrides, env)
	if err != nil {
		return nil, nil, err
	}
	return values, env, nil
}
