// Copyright 2024 The Ix Authors
// This file is part of ixc.
//
// ixc is free software: you can redistribute it and/or modify it under the
// terms of the GNU Lesser General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

package diagnostic

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func newTestReporter(buf *bytes.Buffer) *Reporter {
	fatal := color.New(color.FgRed, color.Bold)
	oddity := color.New(color.FgYellow)
	fatal.DisableColor()
	oddity.DisableColor()
	return &Reporter{out: buf, fatal: fatal, oddity: oddity}
}

func TestAbortWritesSingleLine(t *testing.T) {
	var buf bytes.Buffer
	r := newTestReporter(&buf)
	r.Abort(errors.New("output dir missing"))
	if got := buf.String(); !strings.Contains(got, "output dir missing") {
		t.Fatalf("Abort output = %q, missing error text", got)
	}
}

func TestOdditiesWritesEachError(t *testing.T) {
	var buf bytes.Buffer
	r := newTestReporter(&buf)
	r.Oddities("foo.ix", []error{errors.New("unmatched bracket"), errors.New("missing semicolon")})
	got := buf.String()
	if !strings.Contains(got, "unmatched bracket") || !strings.Contains(got, "missing semicolon") {
		t.Fatalf("Oddities output = %q, missing expected lines", got)
	}
}

func TestAbortSessionIncludesSessionID(t *testing.T) {
	var buf bytes.Buffer
	r := newTestReporter(&buf)
	r.AbortSession("abc-123", errors.New("no sources"))
	if got := buf.String(); !strings.Contains(got, "abc-123") {
		t.Fatalf("AbortSession output = %q, missing session id", got)
	}
}

func TestOdditiesForSessionIncludesSessionIDAndPath(t *testing.T) {
	var buf bytes.Buffer
	r := newTestReporter(&buf)
	r.OdditiesForSession("abc-123", "foo.ix", []error{errors.New("unmatched bracket")})
	got := buf.String()
	if !strings.Contains(got, "abc-123") || !strings.Contains(got, "foo.ix") || !strings.Contains(got, "unmatched bracket") {
		t.Fatalf("OdditiesForSession output = %q, missing expected content", got)
	}
}
