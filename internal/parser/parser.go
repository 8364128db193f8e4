// Copyright 2024 The Ix Authors
// This file is part of ixc.
//
// ixc is free software: you can redistribute it and/or modify it under the
// terms of the GNU Lesser General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// Package parser implements the recursive-descent parser that turns a
// token stream into a Tree wrapped in an AST: a lossless syntactic
// scaffold, not a typed abstract syntax tree. Every token — including
// whitespace and comments — is attached to the tree in source order;
// semantic interpretation is left entirely to the generator.
package parser

import (
	"errors"
	"fmt"

	"github.com/ixlang/ixc/internal/ast"
	"github.com/ixlang/ixc/internal/token"
	"github.com/ixlang/ixc/internal/tokenizer"
	"github.com/ixlang/ixc/internal/tree"
)

// ErrUnknownByte and ErrUnterminatedConstruct are never fatal: both are
// recorded as oddities on the Parser rather than aborting the parse, so
// a single malformed file still yields a complete, lossless tree.
var (
	ErrUnknownByte           = errors.New("parser: byte does not belong to any recognized group")
	ErrUnterminatedConstruct = errors.New("parser: construct not closed before end of input")
)

// tokenSource abstracts "the next token, if any" so the Parser's
// internals depend only on that shape. New and Parse still take a
// concrete *tokenizer.Tokenizer.
type tokenSource interface {
	NextToken() (token.Token, bool)
}

// Parser drives a recursive descent over a token source, building a
// Tree one construct at a time while collecting non-fatal oddities.
type Parser struct {
	src      tokenSource
	oddities []error
}

// New wraps a Tokenizer.
func New(src *tokenizer.Tokenizer) *Parser {
	return &Parser{src: src}
}

// Parse runs a Parser to completion over tz and returns the resulting
// AST along with any oddities collected along the way. This is the
// entry point internal/pipeline calls per source file.
func Parse(tz *tokenizer.Tokenizer) (*ast.AST, []error) {
	p := New(tz)
	t := tree.New()
	root := tree.NewRoot()
	t.SetRoot(root)
	p.parseRoot(root)
	return ast.New(t), p.oddities
}

func (p *Parser) next() (token.Token, bool) {
	return p.src.NextToken()
}

// attach adds tok as a child of parent and records an oddity if tok's
// byte did not resolve to any recognized group.
func (p *Parser) attach(parent *tree.Node, tok token.Token) *tree.Node {
	if tok.Group == token.Unknown {
		p.oddities = append(p.oddities, fmt.Errorf("%w: %q at offset %d", ErrUnknownByte, tok.Text(), tok.Offset))
	}
	return parent.AddChild(tok)
}

// unterminated records that construct ran out of tokens before reaching
// its terminator.
func (p *Parser) unterminated(construct string) {
	p.oddities = append(p.oddities, fmt.Errorf("%w: %s", ErrUnterminatedConstruct, construct))
}

// parseRoot loops over every remaining token, attaching each to parent
// in source order, and dispatches the two top-level constructs the
// grammar recognizes: one-liner copyright/license statements and
// modifier-led class/method declarations. Every other token is simply
// recorded and the loop continues — malformed or unrecognized top-level
// input still produces a flat, lossless tree.
func (p *Parser) parseRoot(parent *tree.Node) {
	for {
		tok, ok := p.next()
		if !ok {
			return
		}
		child := p.attach(parent, tok)
		switch {
		case tok.Group == token.Alphanumeric && isOneLinerLead(tok.Type):
			p.parseStatement(child, true)
		case tok.Group == token.Alphanumeric && tok.Type == token.TypeModifier:
			p.parseComplex(child)
		}
	}
}

func isOneLinerLead(t token.Type) bool {
	return t == token.TypeCopyright || t == token.TypeLicense
}

// parseComplex consumes tokens until an EndBlock, recognizing the three
// constructs a modifier may lead into. Every branch (including the
// EndBlock terminator) returns; parseComplex handles exactly one
// construct per call.
func (p *Parser) parseComplex(parent *tree.Node) {
	for {
		tok, ok := p.next()
		if !ok {
			p.unterminated("complex declaration")
			return
		}
		child := p.attach(parent, tok)
		switch {
		case tok.Type == token.TypeClass:
			p.parseClass(child)
			return
		case tok.Group == token.Alphanumeric && tok.Type == token.TypeWord:
			p.parseMethod(child)
			return
		case tok.Type == token.TypeStartBlock:
			p.parseBlock(child)
			return
		case tok.Type == token.TypeEndBlock:
			return
		}
	}
}

// parseClass consumes tokens until an EndBlock; a StartBlock recurses
// into the class body via parseBlock.
func (p *Parser) parseClass(parent *tree.Node) {
	for {
		tok, ok := p.next()
		if !ok {
			p.unterminated("class")
			return
		}
		child := p.attach(parent, tok)
		switch tok.Type {
		case token.TypeStartBlock:
			p.parseBlock(child)
			return
		case token.TypeEndBlock:
			return
		}
	}
}

// parseMethod consumes tokens until an EndBlock. A parameter list
// (StartExpression) is parsed and the loop continues, since a method
// signature is followed by its body; a StartBlock parses the body and
// ends the call.
func (p *Parser) parseMethod(parent *tree.Node) {
	for {
		tok, ok := p.next()
		if !ok {
			p.unterminated("method")
			return
		}
		child := p.attach(parent, tok)
		switch tok.Type {
		case token.TypeStartExpression:
			p.parseExpression(child)
		case token.TypeStartBlock:
			p.parseBlock(child)
			return
		case token.TypeEndBlock:
			return
		}
	}
}

// parseStatement consumes tokens until a Stop (";"), or a Newline when
// oneLiner is set — the representation used for copyright/license lines,
// which end at end-of-line rather than a semicolon.
func (p *Parser) parseStatement(parent *tree.Node, oneLiner bool) {
	for {
		tok, ok := p.next()
		if !ok {
			p.unterminated("statement")
			return
		}
		child := p.attach(parent, tok)
		switch tok.Type {
		case token.TypeStartExpression:
			p.parseExpression(child)
		case token.TypeStartBlock:
			p.parseBlock(child)
			return
		case token.TypeStop:
			return
		case token.TypeNewline:
			if oneLiner {
				return
			}
		}
	}
}

// parseBlock consumes tokens until an EndBlock. An annotation-like
// Symbol token starting with '@' or '%' leads a one-liner statement; any
// other Alphanumeric token leads an ordinary (semicolon-terminated)
// statement.
func (p *Parser) parseBlock(parent *tree.Node) {
	for {
		tok, ok := p.next()
		if !ok {
			p.unterminated("block")
			return
		}
		child := p.attach(parent, tok)
		switch {
		case tok.Type == token.TypeEndBlock:
			return
		case isAnnotationSymbol(tok):
			p.parseStatement(child, true)
		case tok.Group == token.Alphanumeric:
			p.parseStatement(child, false)
		}
	}
}

func isAnnotationSymbol(tok token.Token) bool {
	if tok.Group != token.Symbolic || tok.Type != token.TypeSymbol {
		return false
	}
	if len(tok.Lexeme) == 0 {
		return false
	}
	return tok.Lexeme[0] == '@' || tok.Lexeme[0] == '%'
}

// parseExpression consumes tokens until an EndExpression; nested
// expressions recurse.
func (p *Parser) parseExpression(parent *tree.Node) {
	for {
		tok, ok := p.next()
		if !ok {
			p.unterminated("expression")
			return
		}
		child := p.attach(parent, tok)
		switch tok.Type {
		case token.TypeEndExpression:
			return
		case token.TypeStartExpression:
			p.parseExpression(child)
		}
	}
}
