// Copyright 2024 The Ix Authors
// This file is part of ixc.
//
// ixc is free software: you can redistribute it and/or modify it under the
// terms of the GNU Lesser General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

package token

import "fmt"

// Token is an immutable lexeme together with its Group and Type. The
// source models a Token as something a Tokenizer constructs once and
// hands off by move into a Node; Go's garbage collector makes that
// handoff discipline a documentation convention here rather than an
// enforced one (see internal/tree for where that matters) — nothing
// about Token itself needs a destructor or an explicit free.
type Token struct {
	Lexeme []byte
	Group  Group
	Type   Type
	Offset int
}

// New constructs a Token, computing its Type from the given Group and
// lexeme via TypeOf. The caller's lexeme slice is not retained by
// reference elsewhere; Token owns it from this point on.
func New(lexeme []byte, g Group, offset int) Token {
	return Token{
		Lexeme: lexeme,
		Group:  g,
		Type:   TypeOf(g, lexeme),
		Offset: offset,
	}
}

// Text returns the lexeme as a string.
func (t Token) Text() string {
	return string(t.Lexeme)
}

func (t Token) String() string {
	return fmt.Sprintf("%s/%s(%q)@%d", t.Group, t.Type, t.Lexeme, t.Offset)
}
