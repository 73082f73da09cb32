// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Parser transforms a raw option value into its final form. It returns
// ok=false when the result is absent (for example a disabled mount path).
type Parser func(key string, raw any) (value any, ok bool, err error)

// NumberParser accepts integers, integral floats and numeric strings.
func NumberParser(key string, raw any) (any, bool, error) {
	switch v := raw.(type) {
	case int:
		return v, true, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, false, &ValueParseError{Key: key, Raw: raw, Reason: "not an integer"}
		}
		return n, true, nil
	case bool:
		return nil, false, &ValueParseError{Key: key, Raw: raw, Reason: "not an integer"}
	case float32, float64:
		f := cast.ToFloat64(v)
		if f != float64(int(f)) {
			return nil, false, &ValueParseError{Key: key, Raw: raw, Reason: "not an integer"}
		}
		return int(f), true, nil
	}

	// remaining integer kinds coming from decoded config files
	n, err := cast.ToIntE(raw)
	if err != nil {
		return nil, false, &ValueParseError{Key: key, Raw: raw, Reason: "not an integer"}
	}
	return n, true, nil
}

// NumberOrBoolParser accepts booleans, "true"/"false", or anything
// [NumberParser] accepts.
func NumberOrBoolParser(key string, raw any) (any, bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, true, nil
	case string:
		switch v {
		case "true":
			return true, true, nil
		case "false":
			return false, true, nil
		}
	}
	return NumberParser(key, raw)
}

// BooleanParser maps true, "true" and "1" to true and everything else to
// false. It never fails.
func BooleanParser(_ string, raw any) (any, bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, true, nil
	case string:
		return v == "true" || v == "1", true, nil
	case int:
		return v == 1, true, nil
	}
	return false, true, nil
}

// ArrayParser accepts a list of strings or a comma delimited string.
func ArrayParser(key string, raw any) (any, bool, error) {
	switch v := raw.(type) {
	case []string:
		return v, true, nil
	case string:
		return strings.Split(v, ","), true, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false, &ValueParseError{Key: key, Raw: raw, Reason: "should be a comma separated string or an array of strings"}
			}
			out = append(out, s)
		}
		return out, true, nil
	}
	return nil, false, &ValueParseError{Key: key, Raw: raw, Reason: "should be a comma separated string or an array"}
}

// MountPathParser treats "", "-", "false" and any non-string value as "do
// not mount". Other values get a leading slash and lose one trailing slash.
func MountPathParser(_ string, raw any) (any, bool, error) {
	s, ok := raw.(string)
	if !ok || s == "" || s == "-" || s == "false" {
		return nil, false, nil
	}
	if !strings.HasPrefix(s, "/") {
		s = "/" + s
	}
	return RemoveTrailingSlash(s), true, nil
}

// TrailingSlashParser strips one trailing slash from string values.
func TrailingSlashParser(key string, raw any) (any, bool, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, false, &ValueParseError{Key: key, Raw: raw, Reason: "must be a string"}
	}
	return RemoveTrailingSlash(s), true, nil
}

// AppendPathParser resolves a relative path against the working directory
// and appends a trailing slash.
func AppendPathParser(key string, raw any) (any, bool, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, false, &ValueParseError{Key: key, Raw: raw, Reason: "must be a path string"}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, false, &ValueParseError{Key: key, Raw: raw, Reason: err.Error()}
	}
	return AppendPath(cwd, s), true, nil
}

// AppendPath joins p onto base and terminates the result with a slash.
func AppendPath(base, p string) string {
	return filepath.Join(base, RemoveTrailingSlash(p)) + string(filepath.Separator)
}

// RemoveTrailingSlash strips exactly one trailing slash.
func RemoveTrailingSlash(s string) string {
	return strings.TrimSuffix(s, "/")
}
