// Copyright 2024 The Ix Authors
// This file is part of ixc.
//
// ixc is free software: you can redistribute it and/or modify it under the
// terms of the GNU Lesser General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// Package diagnostic renders the two error kinds the core recognizes:
// fatal precondition errors and non-fatal lexical/syntactic oddities, as
// single colored lines when stderr is a terminal.
package diagnostic

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Reporter writes diagnostics to a single output stream, coloring them
// when that stream is a terminal.
type Reporter struct {
	out    io.Writer
	fatal  *color.Color
	oddity *color.Color
}

// NewStderr builds a Reporter over os.Stderr, using go-isatty to decide
// whether to color and go-colorable to make that coloring work on
// Windows consoles as well as ANSI terminals.
func NewStderr() *Reporter {
	colorEnabled := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	out := colorable.NewColorableStderr()
	fatal := color.New(color.FgRed, color.Bold)
	oddity := color.New(color.FgYellow)
	if !colorEnabled {
		fatal.DisableColor()
		oddity.DisableColor()
	}
	return &Reporter{out: out, fatal: fatal, oddity: oddity}
}

// Abort prints a single fatal precondition-error line. The caller is
// responsible for the process exit code.
func (r *Reporter) Abort(err error) {
	r.fatal.Fprintf(r.out, "ixc: %v\n", err)
}

// Oddity prints a single non-fatal lexical/syntactic diagnostic line for
// path. Oddities never abort the pipeline; they are collected and
// reported after the file they concern has otherwise finished parsing.
func (r *Reporter) Oddity(path string, err error) {
	r.oddity.Fprintf(r.out, "ixc: %s: %v\n", path, err)
}

// Oddities prints every error in errs via Oddity, in order.
func (r *Reporter) Oddities(path string, errs []error) {
	for _, err := range errs {
		r.Oddity(path, err)
	}
}

// AbortSession is Abort tagged with a compile session id, so a user
// diagnosing a multi-file run can correlate which invocation a fatal
// line came from.
func (r *Reporter) AbortSession(sessionID string, err error) {
	r.fatal.Fprintf(r.out, "ixc: %s\n", sessionLine(sessionID, err))
}

// OddityForSession is Oddity tagged with a compile session id.
func (r *Reporter) OddityForSession(sessionID, path string, err error) {
	r.oddity.Fprintf(r.out, "ixc: %s: %s\n", path, sessionLine(sessionID, err))
}

// OdditiesForSession prints every error in errs via OddityForSession, in
// order, so a multi-file run's non-fatal oddities carry the same session
// id its fatal path (AbortSession) already does.
func (r *Reporter) OdditiesForSession(sessionID, path string, errs []error) {
	for _, err := range errs {
		r.OddityForSession(sessionID, path, err)
	}
}

// sessionLine is the shared format for a diagnostic tagged with a
// compile session id (internal/pipeline's UUID correlation id).
func sessionLine(sessionID string, err error) string {
	return fmt.Sprintf("[%s] %v", sessionID, err)
}
