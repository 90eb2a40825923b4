// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for the sgrcat configuration file.

package config

import "log"

// defaultSystemConfig returns the embedded defaults with any keys missing
// from them filled in.
func defaultSystemConfig() Config {
	cfg, err := embeddedSystemDefaults()
	if err != nil {
		log.Printf("Config: Failed to load embedded defaults: %v", err)
	}
	cfg = Clone(cfg)
	if cfg == nil {
		cfg = make(Config)
	}
	applySystemDefaults(cfg)
	return cfg
}

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("", Section{
		"mode": "slices",
	})
	cfg.RegisterDefaults("highlight", Section{
		"style":     "monokai",
		"formatter": "terminal16",
	})
	cfg.RegisterDefaults("capture", Section{
		"cols": 80,
		"rows": 24,
	})
	cfg.RegisterDefaults("index", Section{
		"path":  "",
		"limit": 50,
	})
}
