// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Section lookup and typed getters over decoded JSON values.

package config

import (
	"math"
	"strconv"
	"time"
)

// Section returns the named section, or the top level for "". Nil when the
// section is missing or is not an object.
func (c Config) Section(name string) Section {
	if name == "" {
		return Section(c)
	}
	switch v := c[name].(type) {
	case Section:
		return v
	case map[string]interface{}:
		return Section(v)
	}
	return nil
}

// RegisterDefaults adds the keys of defaults that the section lacks.
func (c Config) RegisterDefaults(name string, defaults Section) {
	if c == nil {
		return
	}
	section := c.Section(name)
	if section == nil {
		section = make(Section, len(defaults))
		c[name] = section
	}
	for key, value := range defaults {
		if _, ok := section[key]; !ok {
			section[key] = value
		}
	}
}

func (c Config) lookup(section, key string) (interface{}, bool) {
	s := c.Section(section)
	if s == nil {
		return nil, false
	}
	v, ok := s[key]
	return v, ok
}

// GetString returns a string value, or def when missing or not a string.
func (c Config) GetString(section, key, def string) string {
	v, _ := c.lookup(section, key)
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

// GetInt returns a whole number. Fractional numbers count as invalid.
func (c Config) GetInt(section, key string, def int) int {
	v, _ := c.lookup(section, key)
	if n, ok := asInt(v); ok {
		return n
	}
	return def
}

func (c Config) GetFloat(section, key string, def float64) float64 {
	v, _ := c.lookup(section, key)
	if f, ok := asFloat(v); ok {
		return f
	}
	return def
}

func (c Config) GetBool(section, key string, def bool) bool {
	v, _ := c.lookup(section, key)
	if b, ok := asBool(v); ok {
		return b
	}
	return def
}

// GetDuration reads a non-negative millisecond count.
func (c Config) GetDuration(section, key string, def time.Duration) time.Duration {
	v, _ := c.lookup(section, key)
	if ms, ok := asInt(v); ok && ms >= 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return def
}

// GetStringMap returns the string-valued entries of a section.
func (c Config) GetStringMap(section string) map[string]string {
	s := c.Section(section)
	if s == nil {
		return nil
	}
	out := make(map[string]string, len(s))
	for key, value := range s {
		if str, ok := value.(string); ok {
			out[key] = str
		}
	}
	return out
}

// GetStringSlice returns the non-empty strings of a top-level list.
func (c Config) GetStringSlice(key string) []string {
	var out []string
	switch list := c[key].(type) {
	case []string:
		for _, s := range list {
			if s != "" {
				out = append(out, s)
			}
		}
	case []interface{}:
		for _, item := range list {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// Decoded JSON numbers are float64; defaults written in Go are int. Strings
// are accepted because hand-edited files often quote numbers.

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

func asInt(v interface{}) (int, bool) {
	f, ok := asFloat(v)
	if !ok || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func asBool(v interface{}) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(b)
		return parsed, err == nil
	}
	if f, ok := asFloat(v); ok {
		return f != 0, true
	}
	return false, false
}
