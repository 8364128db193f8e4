// Copyright 2024 The Ix Authors
// This file is part of ixc.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ixlang/ixc/internal/diagnostic"
	"github.com/ixlang/ixc/internal/tree"
)

func TestRunEmitTokensOnMissingSource(t *testing.T) {
	reporter := diagnostic.NewStderr()
	err := runEmit([]string{filepath.Join(t.TempDir(), "missing.ix")}, "tokens", reporter)
	if err == nil {
		t.Fatal("expected an error for a missing source file")
	}
}

func TestRunEmitUnknownStage(t *testing.T) {
	reporter := diagnostic.NewStderr()
	if err := runEmit(nil, "bogus", reporter); err == nil {
		t.Fatal("expected an error for an unknown emit stage")
	}
}

func TestRunEmitTokensOnRealFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.ix")
	if err := os.WriteFile(path, []byte("0xFF;"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	reporter := diagnostic.NewStderr()
	if err := emitTokens([]string{path}, reporter); err != nil {
		t.Fatalf("emitTokens: %v", err)
	}
}

func TestPrintNodeDoesNotPanicOnEmptyRoot(t *testing.T) {
	printNode(tree.NewRoot(), 0)
}
