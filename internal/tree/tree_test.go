// Copyright 2024 The Ix Authors
// This file is part of ixc.
//
// ixc is free software: you can redistribute it and/or modify it under the
// terms of the GNU Lesser General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

package tree

import (
	"testing"

	"github.com/ixlang/ixc/internal/token"
)

func tokenAt(lexeme string, offset int) token.Token {
	return token.New([]byte(lexeme), token.Alphanumeric, offset)
}

func TestSetRootThenRoot(t *testing.T) {
	tr := New()
	r := NewRoot()
	tr.SetRoot(r)
	if tr.Root() != r {
		t.Fatal("Root() should return the node passed to SetRoot")
	}
}

func TestSetRootTwicePanics(t *testing.T) {
	tr := New()
	tr.SetRoot(NewRoot())
	defer func() {
		if recover() == nil {
			t.Fatal("expected a second SetRoot to panic")
		}
	}()
	tr.SetRoot(NewRoot())
}

func TestNewTreeHasNilRoot(t *testing.T) {
	tr := New()
	if tr.Root() != nil {
		t.Fatal("fresh Tree should have a nil root until SetRoot is called")
	}
}

// TestInOrderTraversalPreservesSourceOrder checks that a depth-first walk
// over Children() yields tokens in original source order.
func TestInOrderTraversalPreservesSourceOrder(t *testing.T) {
	tr := New()
	root := NewRoot()
	tr.SetRoot(root)

	a := root.AddChild(tokenAt("a", 0))
	a.AddChild(tokenAt("b", 1))
	a.AddChild(tokenAt("c", 2))
	root.AddChild(tokenAt("d", 3))

	var order []int
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Token() != nil {
			order = append(order, n.Token().Offset)
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(root)

	want := []int{0, 1, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}
