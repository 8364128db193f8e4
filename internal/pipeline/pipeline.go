// Copyright 2024 The Ix Authors
// This file is part of ixc.
//
// ixc is free software: you can redistribute it and/or modify it under the
// terms of the GNU Lesser General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// Package pipeline drives CharReader -> Tokenizer -> Parser -> AST ->
// Generator for each source file in a run, surfacing precondition
// failures as sentinel errors and collecting the never-fatal
// lexical/syntactic oddities the parser accumulates along the way.
package pipeline

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/ixlang/ixc/internal/generator"
	"github.com/ixlang/ixc/internal/parser"
	"github.com/ixlang/ixc/internal/source"
	"github.com/ixlang/ixc/internal/tokenizer"
	"github.com/ixlang/ixc/internal/tree"
)

// Precondition errors are detected at the boundary, before the file (or
// run) they concern is tokenized, and are always fatal to the whole run.
// A source file's readability is checked when its turn comes, so files
// earlier in the run may already have been parsed.
var (
	ErrSourceUnreadable  = errors.New("pipeline: source file unreadable")
	ErrOutputDirInvalid  = errors.New("pipeline: output directory missing or unwritable")
	ErrTargetUnsupported = errors.New("pipeline: target language unsupported")
	ErrNoSources         = errors.New("pipeline: no source files given")
)

// Options configures a Run.
type Options struct {
	OutputDir      string
	TargetLanguage string
	DryRun         bool
	Sources        []string
}

// FileResult is the outcome of compiling a single source file: its path
// and any lexical/syntactic oddities the parser collected along the way.
type FileResult struct {
	Path     string
	Oddities []error
}

// Result is the outcome of an entire Run: the compile session id used to
// correlate diagnostics across files, and one FileResult per source.
type Result struct {
	SessionID string
	Files     []FileResult
}

// Run validates preconditions, then compiles every source file in
// opts.Sources in order, stopping at the first file whose precondition
// fails: any single file's precondition failure aborts the whole run.
func Run(opts Options) (Result, error) {
	sessionID := uuid.NewString()
	result := Result{SessionID: sessionID}

	if len(opts.Sources) == 0 {
		return result, ErrNoSources
	}
	if !opts.DryRun {
		if err := checkOutputDir(opts.OutputDir); err != nil {
			return result, err
		}
		if !generator.SupportedTargets[opts.TargetLanguage] {
			return result, fmt.Errorf("%w: %s", ErrTargetUnsupported, opts.TargetLanguage)
		}
	}

	var gen generator.Generator = generator.NoopGenerator{}
	if !opts.DryRun {
		g, err := generator.New(opts.TargetLanguage)
		if err != nil {
			return result, err
		}
		gen = g
	}

	for _, path := range opts.Sources {
		fr, err := compileFile(path, opts.OutputDir, gen, opts.DryRun)
		if err != nil {
			return result, err
		}
		result.Files = append(result.Files, fr)
	}
	return result, nil
}

func compileFile(path, outputDir string, gen generator.Generator, dryRun bool) (FileResult, error) {
	if _, err := os.Stat(path); err != nil {
		return FileResult{}, fmt.Errorf("%w: %s", ErrSourceUnreadable, path)
	}

	r := source.Open(path)
	tz := tokenizer.New(r)
	a, oddities := parser.Parse(tz)

	fr := FileResult{Path: path, Oddities: oddities}
	if !dryRun {
		if err := gen.Generate(a, path, outputDir); err != nil {
			return fr, err
		}
	}
	return fr, nil
}

func checkOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrOutputDirInvalid, dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s (not a directory)", ErrOutputDirInvalid, dir)
	}
	probe := dir + string(os.PathSeparator) + ".ixc-write-probe"
	f, err := os.Create(probe)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrOutputDirInvalid, dir)
	}
	f.Close()
	os.Remove(probe)
	return nil
}

// Tokens tokenizes path without parsing, for the --emit tokens debug
// mode. Precondition failure on an unreadable source surfaces the same
// sentinel Run does.
func Tokens(path string) ([]TokenEntry, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceUnreadable, path)
	}
	r := source.Open(path)
	tz := tokenizer.New(r)
	var out []TokenEntry
	for _, tok := range tz.Tokenize() {
		out = append(out, TokenEntry{
			Group:  tok.Group.String(),
			Type:   tok.Type.String(),
			Lexeme: tok.Text(),
			Offset: tok.Offset,
		})
	}
	return out, nil
}

// TokenEntry is the flattened, display-friendly shape of a Token
// that cmd/ixc renders as a table row.
type TokenEntry struct {
	Group  string
	Type   string
	Lexeme string
	Offset int
}

// Values renders the entry as a table row (offset, group, type, lexeme)
// for cmd/ixc's tablewriter rendering.
func (e TokenEntry) Values() []string {
	return []string{fmt.Sprintf("%d", e.Offset), e.Group, e.Type, e.Lexeme}
}

// Tree parses path and returns its root Node, for the --emit tree debug
// mode. The generator is never invoked.
func Tree(path string) (*tree.Node, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceUnreadable, path)
	}
	r := source.Open(path)
	tz := tokenizer.New(r)
	a, _ := parser.Parse(tz)
	return a.Tree().Root(), nil
}
