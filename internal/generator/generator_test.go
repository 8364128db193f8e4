// Copyright 2024 The Ix Authors
// This file is part of ixc.
//
// ixc is free software: you can redistribute it and/or modify it under the
// terms of the GNU Lesser General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

package generator

import (
	"errors"
	"testing"

	"github.com/ixlang/ixc/internal/ast"
	"github.com/ixlang/ixc/internal/tree"
)

func TestNewSupportedTarget(t *testing.T) {
	g, err := New("C")
	if err != nil {
		t.Fatalf("New(C) error: %v", err)
	}
	a := ast.New(tree.New())
	if err := g.Generate(a, "in.ix", "/tmp/out"); err != nil {
		t.Fatalf("Generate: %v", err)
	}
}

func TestNewUnsupportedTarget(t *testing.T) {
	_, err := New("Rust")
	if !errors.Is(err, ErrUnsupportedTarget) {
		t.Fatalf("New(Rust) error = %v, want wrapping ErrUnsupportedTarget", err)
	}
}
