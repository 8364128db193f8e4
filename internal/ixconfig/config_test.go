// Copyright 2024 The Ix Authors
// This file is part of ixc.
//
// ixc is free software: you can redistribute it and/or modify it under the
// terms of the GNU Lesser General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

package ixconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsZeroValue(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "ixc.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "" || cfg.TargetLanguage != "" {
		t.Fatalf("expected zero-value Config, got %+v", cfg)
	}
}

func TestLoadParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ixc.toml")
	content := "output_dir = \"/tmp/out\"\ntarget_language = \"C\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "/tmp/out" || cfg.TargetLanguage != "C" {
		t.Fatalf("got %+v, want OutputDir=/tmp/out TargetLanguage=C", cfg)
	}
}

func TestMergePrefersOverride(t *testing.T) {
	base := Config{OutputDir: "/from/file", TargetLanguage: "C"}
	override := Config{OutputDir: "/from/flag"}
	merged := base.Merge(override)
	if merged.OutputDir != "/from/flag" {
		t.Fatalf("OutputDir = %q, want override to win", merged.OutputDir)
	}
	if merged.TargetLanguage != "C" {
		t.Fatalf("TargetLanguage = %q, want base to survive when override is empty", merged.TargetLanguage)
	}
}
