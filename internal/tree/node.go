// Copyright 2024 The Ix Authors
// This file is part of ixc.
//
// ixc is free software: you can redistribute it and/or modify it under the
// terms of the GNU Lesser General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// Package tree implements the ordered n-ary Node/Tree structure the
// parser builds: a lossless, untyped syntactic scaffold over the token
// stream.
package tree

import "github.com/ixlang/ixc/internal/token"

// Node carries at most one Token (nil only for a Tree's root) and an
// ordered sequence of children. The parent field is a non-owning
// back-reference used only for navigation.
//
// The source models this relation as something that must never become a
// reference-counted ownership cycle, and suggests an arena index or
// borrowed handle to keep it that way. Go's garbage collector already
// traces through cycles correctly, so a plain *Node parent pointer is
// safe here without an arena: nothing leaks and nothing double-frees
// because nothing is manually freed. See DESIGN.md for this divergence
// recorded as a deliberate call, not a guess.
type Node struct {
	tok      *token.Token
	children []*Node
	parent   *Node
}

// NewRoot constructs an unattached root Node: no token, no parent.
func NewRoot() *Node {
	return &Node{}
}

// newChild constructs a Node wrapping tok, parented to p.
func newChild(tok token.Token, p *Node) *Node {
	return &Node{tok: &tok, parent: p}
}

// AddChild wraps tok in a new Node, appends it to n's children, and
// returns it. The source nulls the caller's token handle after this
// call; in Go the value is simply copied into the Node and the caller's
// local variable, if any, is no longer the node of record — there is
// nothing to null.
func (n *Node) AddChild(tok token.Token) *Node {
	child := newChild(tok, n)
	n.children = append(n.children, child)
	return child
}

// LastChild returns the most recently appended child. It panics if n has
// no children: callers in this package only ever call it once they have
// just appended at least one child, mirroring the source's documented
// precondition.
func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		panic("tree: LastChild called on a Node with no children")
	}
	return n.children[len(n.children)-1]
}

// HasChildren reports whether n has at least one child.
func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

// Token returns n's token, or nil for the root.
func (n *Node) Token() *token.Token {
	return n.tok
}

// Parent returns n's non-owning parent back-reference, or nil at the
// root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns n's children in insertion order. The returned slice
// must not be mutated by callers.
func (n *Node) Children() []*Node {
	return n.children
}

// Iterator returns a finite, non-restartable iterator over n's children
// in insertion order.
func (n *Node) Iterator() *ChildIterator {
	return &ChildIterator{nodes: n.children}
}

// ChildIterator walks a Node's children once, in order.
type ChildIterator struct {
	nodes []*Node
	pos   int
}

// Next returns the next child and true, or nil and false once exhausted.
func (it *ChildIterator) Next() (*Node, bool) {
	if it.pos >= len(it.nodes) {
		return nil, false
	}
	n := it.nodes[it.pos]
	it.pos++
	return n, true
}
