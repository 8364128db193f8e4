// Copyright 2024 The Ix Authors
// This file is part of ixc.
//
// ixc is free software: you can redistribute it and/or modify it under the
// terms of the GNU Lesser General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// Package token defines the lexical vocabulary of Ix: token groups, token
// types, and the immutable Token value the tokenizer produces.
//
// Classification is two-layered by design: Group is a pure function of a
// lexeme's first byte (ByteToGroup), and Type refines (Group, lexeme) to a
// fine-grained tag (see type.go). Group classification is a 256-entry
// table and keyword refinement is a map; the Symbolic, Whitespace, Open
// and Close refinements in type.go are switch statements.
package token

import "fmt"

// Group is the coarse lexical class of a token, determined solely from the
// first byte of its lexeme.
type Group int

const (
	Unknown Group = iota
	Whitespace
	Open
	Close
	Symbolic
	Escape
	Alphanumeric
	String
	Char
	Value
	// HexValue exists for closed-set fidelity with the source's group
	// enumeration. ByteToGroup never produces it: hex literals such as
	// 0xFF stay in the Value group end-to-end, and are only promoted to
	// the Hex *type* once the lexeme is complete (see type.go). No byte
	// maps here directly.
	HexValue

	groupCount
)

var groupNames = [...]string{
	Unknown:      "Unknown",
	Whitespace:   "Whitespace",
	Open:         "Open",
	Close:        "Close",
	Symbolic:     "Symbolic",
	Escape:       "Escape",
	Alphanumeric: "Alphanumeric",
	String:       "String",
	Char:         "Char",
	Value:        "Value",
	HexValue:     "HexValue",
}

func (g Group) String() string {
	if int(g) >= 0 && int(g) < len(groupNames) {
		return groupNames[g]
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

// byteGroupTable is the 256-byte lookup table backing ByteToGroup. Built
// once at package init; kept as data so adding a byte class is a table
// edit, not a new case arm.
var byteGroupTable [256]Group

func init() {
	for i := range byteGroupTable {
		byteGroupTable[i] = Unknown
	}
	for _, b := range []byte("!@#$%^&*-+=|:;,.?/") {
		byteGroupTable[b] = Symbolic
	}
	byteGroupTable['\\'] = Escape
	for _, b := range []byte("({[<") {
		byteGroupTable[b] = Open
	}
	for _, b := range []byte(")}]>") {
		byteGroupTable[b] = Close
	}
	byteGroupTable['"'] = String
	byteGroupTable['\''] = Char
	byteGroupTable['_'] = Alphanumeric
	for b := byte('a'); b <= 'z'; b++ {
		byteGroupTable[b] = Alphanumeric
	}
	for b := byte('A'); b <= 'Z'; b++ {
		byteGroupTable[b] = Alphanumeric
	}
	for b := byte('0'); b <= '9'; b++ {
		byteGroupTable[b] = Value
	}
	// TAB(9) LF(10) VT(11) FF(12) CR(13) SO(14) SI(15) ... SPACE(32)
	for b := byte(9); b <= 15; b++ {
		byteGroupTable[b] = Whitespace
	}
	byteGroupTable[32] = Whitespace
}

// ByteToGroup maps a single byte to its TokenGroup. A pure function of
// the byte value: the same byte always yields the same Group.
func ByteToGroup(b byte) Group {
	return byteGroupTable[b]
}

// Accepts reports whether a lexeme of group g may absorb byte b as a
// continuation character. Expressed as one case per group rather than a
// single cascading switch so each group's continuation rule reads on its
// own.
func Accepts(g Group, b byte) bool {
	switch g {
	case Symbolic:
		return ByteToGroup(b) == Symbolic
	case Alphanumeric:
		bg := ByteToGroup(b)
		return bg == Alphanumeric || bg == Value
	case Value:
		if ByteToGroup(b) == Value {
			return true
		}
		return isHexContinuation(b)
	case Whitespace:
		return ByteToGroup(b) == Whitespace
	case String:
		return b != '"'
	case Char:
		return b != '\''
	case Unknown:
		return ByteToGroup(b) == Unknown
	default: // Open, Close, Escape, HexValue
		return false
	}
}

// isHexContinuation reports whether b extends a Value lexeme as part of a
// hex literal prefix/digit: 'A'-'F', 'a'-'f', or 'x' (to admit "0xFF" as a
// single Value token; see Accepts(Value, ...) and TypeOf's hex promotion
// in type.go). Only lowercase 'x' is accepted; the hex digits themselves
// are case-insensitive but the prefix marker is not.
func isHexContinuation(b byte) bool {
	switch {
	case b >= 'A' && b <= 'F':
		return true
	case b >= 'a' && b <= 'f':
		return true
	case b == 'x':
		return true
	default:
		return false
	}
}
