// Copyright 2024 The Ix Authors
// This file is part of ixc.
//
// ixc is free software: you can redistribute it and/or modify it under the
// terms of the GNU Lesser General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// Package ixconfig loads optional default CLI flag values from an
// ixc.toml file.
package ixconfig

import (
	"os"

	"github.com/naoina/toml"
)

// Config holds default values for flags that would otherwise be required
// on every invocation. Flags passed on the command line always override
// these.
type Config struct {
	OutputDir      string `toml:"output_dir"`
	TargetLanguage string `toml:"target_language"`
}

// Load reads and parses the TOML file at path. A missing file is not an
// error: it returns a zero Config, so the CLI falls back to requiring
// the flags explicitly.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Merge returns a Config with any field in override set, falling back to
// the receiver's field otherwise. Used to apply CLI flags (override) on
// top of a loaded file's defaults (the receiver).
func (c Config) Merge(override Config) Config {
	merged := c
	if override.OutputDir != "" {
		merged.OutputDir = override.OutputDir
	}
	if override.TargetLanguage != "" {
		merged.TargetLanguage = override.TargetLanguage
	}
	return merged
}
