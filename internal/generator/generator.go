// Copyright 2024 The Ix Authors
// This file is part of ixc.
//
// ixc is free software: you can redistribute it and/or modify it under the
// terms of the GNU Lesser General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// Package generator defines the Generator boundary: the collaborator
// that consumes a parsed AST and emits target-language source. The
// backend mapping from Ix constructs to target-language constructs is
// out of scope for this repository; this package only defines the
// interface contract and a no-op implementation, which is what New
// returns for every supported target.
package generator

import (
	"fmt"

	"github.com/ixlang/ixc/internal/ast"
)

// Generator consumes an AST for a single source file and writes
// target-language output under outputDir. Implementations own the
// backend-specific mapping from Ix's syntactic scaffold to a concrete
// target language; none is provided here.
type Generator interface {
	Generate(a *ast.AST, sourcePath, outputDir string) error
}

// SupportedTargets lists the target-language names this front end is
// prepared to validate a --target-language flag against. Only "C" is
// recognized today; other target languages may be added later, each
// with its own backend.
var SupportedTargets = map[string]bool{
	"C": true,
}

// NoopGenerator implements Generator by doing nothing. New returns it
// for the "C" target, so a full (non-dry) run parses every file and
// then generates no output. --dry-run and the --emit debug modes never
// call Generate at all.
type NoopGenerator struct{}

// Generate implements Generator by performing no output.
func (NoopGenerator) Generate(a *ast.AST, sourcePath, outputDir string) error {
	_ = a
	_ = sourcePath
	_ = outputDir
	return nil
}

// New returns the Generator for targetLanguage, or an error if no
// backend is registered for it. Only a no-op stand-in is wired today:
// no concrete target-language backend is implemented in this
// repository, so there is no real generator body to construct here.
func New(targetLanguage string) (Generator, error) {
	if !SupportedTargets[targetLanguage] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTarget, targetLanguage)
	}
	return NoopGenerator{}, nil
}

var ErrUnsupportedTarget = fmt.Errorf("generator: unsupported target language")
