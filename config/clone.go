// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/clone.go
// Summary: Clone helpers for config maps.

package config

// Clone returns a copy of the config with each section copied one level deep.
func Clone(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	clone := make(Config, len(cfg))
	for name, value := range cfg {
		if section, ok := asSection(value); ok {
			clone[name] = cloneSection(section)
			continue
		}
		clone[name] = value
	}
	return clone
}

func cloneSection(s Section) Section {
	out := make(Section, len(s))
	for key, value := range s {
		out[key] = value
	}
	return out
}

func asSection(v interface{}) (Section, bool) {
	switch s := v.(type) {
	case Section:
		return s, true
	case map[string]interface{}:
		return Section(s), true
	}
	return nil, false
}
