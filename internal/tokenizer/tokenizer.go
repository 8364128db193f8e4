// Copyright 2024 The Ix Authors
// This file is part of ixc.
//
// ixc is free software: you can redistribute it and/or modify it under the
// terms of the GNU Lesser General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// Package tokenizer aggregates bytes pulled from a source.Reader into
// Tokens, one group-classified lexeme at a time.
package tokenizer

import (
	"github.com/ixlang/ixc/internal/source"
	"github.com/ixlang/ixc/internal/token"
)

// Tokenizer produces Tokens lazily from a Reader. A one-element
// lookahead queue is primed on construction and after every NextToken
// call so HasMoreTokens is always accurate without re-reading.
type Tokenizer struct {
	r      *source.Reader
	offset int
	next   *token.Token
}

// New wraps r and primes the lookahead queue.
func New(r *source.Reader) *Tokenizer {
	t := &Tokenizer{r: r}
	t.advanceQueue()
	return t
}

// HasMoreTokens reports whether NextToken would return a token.
func (t *Tokenizer) HasMoreTokens() bool {
	return t.next != nil
}

// NextToken returns the next Token, or false if the stream is exhausted.
func (t *Tokenizer) NextToken() (token.Token, bool) {
	if t.next == nil {
		return token.Token{}, false
	}
	tok := *t.next
	t.advanceQueue()
	return tok, true
}

// Tokenize drains the Tokenizer, returning every Token in source order.
func (t *Tokenizer) Tokenize() []token.Token {
	var toks []token.Token
	for t.HasMoreTokens() {
		tok, _ := t.NextToken()
		toks = append(toks, tok)
	}
	return toks
}

// advanceQueue reads one token (if any remain) into t.next.
func (t *Tokenizer) advanceQueue() {
	t.next = t.readOne()
}

// readOne reads and classifies the next single token from the source,
// or returns nil once the source is exhausted.
func (t *Tokenizer) readOne() *token.Token {
	startOffset := t.offset
	c1, ok := t.readByte()
	if !ok {
		return nil
	}
	g := token.ByteToGroup(c1)
	lexeme := []byte{c1}

loop:
	for {
		c2, ok := t.readByte()
		if !ok {
			break
		}
		switch {
		case g == token.Escape:
			// The escape and its payload form one token; the byte after
			// the payload is not pushed back but appended to that same
			// token.
			lexeme = append(lexeme, c2)
			if c3, ok := t.readByte(); ok {
				lexeme = append(lexeme, c3)
			}
			break loop
		case token.Accepts(g, c2):
			if c2 == '\\' {
				// In-lexeme escape: the backslash and whatever follows
				// it are both absorbed into the current lexeme, even
				// inside a group (String, Char, ...) that would
				// otherwise have stopped on that next byte.
				lexeme = append(lexeme, c2)
				if c3, ok := t.readByte(); ok {
					lexeme = append(lexeme, c3)
				}
				continue
			}
			lexeme = append(lexeme, c2)
		case g == token.String || g == token.Char:
			// Closing quote ends the token and is consumed, not pushed
			// back.
			lexeme = append(lexeme, c2)
			break loop
		default:
			t.pushback()
			break loop
		}
	}
	tok := token.New(lexeme, g, startOffset)
	return &tok
}

func (t *Tokenizer) readByte() (byte, bool) {
	b, ok := t.r.Read()
	if ok {
		t.offset++
	}
	return b, ok
}

func (t *Tokenizer) pushback() {
	t.r.Pushback()
	t.offset--
}
