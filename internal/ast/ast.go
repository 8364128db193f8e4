// Copyright 2024 The Ix Authors
// This file is part of ixc.
//
// ixc is free software: you can redistribute it and/or modify it under the
// terms of the GNU Lesser General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// Package ast defines AST, the thin handoff object between Parser and
// Generator: exclusive owner of one Tree.
package ast

import "github.com/ixlang/ixc/internal/tree"

// AST exclusively owns a single Tree. It exists as its own type, rather
// than the Parser just returning a *tree.Tree, because it is the
// documented boundary object the Generator receives: the exclusive
// owner of one completed Tree, handed off once parsing finishes.
type AST struct {
	t *tree.Tree
}

// New wraps t in an AST. The caller should not retain t after this call;
// Go's GC makes that a convention rather than an enforced move, see
// internal/tree's Node doc comment for the analogous point.
func New(t *tree.Tree) *AST {
	return &AST{t: t}
}

// Tree returns the owned Tree. This is the surface the Generator
// traverses: Tree().Root() yields an ordered tree of Nodes, each
// carrying a Token with (lexeme, group, type).
func (a *AST) Tree() *tree.Tree {
	return a.t
}
