// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Built-in defaults for the imgrid configuration sections.

package config

func applyDefaults(cfg Config) {
	cfg.RegisterDefaults("input", Section{
		"suppress_frames": 10,
		"danger_pairs": map[string]interface{}{
			"4": "left",
			"6": "right",
			"8": "up",
			"2": "down",
		},
	})
	cfg.RegisterDefaults("render", Section{
		"placeholder_glyph": "?",
	})
	cfg.RegisterDefaults("settings", Section{
		"path": "",
	})
}
