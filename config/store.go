// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Load logic for the config store.

package config

import "log"

// loadSystemLocked reads the config file, falling back to embedded defaults
// and writing them out when no file exists yet. Callers hold mu.
func loadSystemLocked() error {
	path, err := systemConfigPath()
	if err != nil {
		log.Printf("Config: Failed to resolve config path: %v", err)
		system = defaultSystemConfig()
		return err
	}

	cfg, exists, readErr := readConfig(path)
	if readErr != nil {
		log.Printf("Config: Failed to read config %s: %v", path, readErr)
		cfg = nil
	}

	if len(cfg) == 0 {
		cfg = defaultSystemConfig()
		if !exists {
			if err := writeConfig(path, cfg); err != nil {
				log.Printf("Config: Failed to write default config: %v", err)
				if readErr == nil {
					readErr = err
				}
			}
		}
	}

	applySystemDefaults(cfg)
	system = cfg
	return readErr
}
