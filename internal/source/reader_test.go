// Copyright 2024 The Ix Authors
// This file is part of ixc.
//
// ixc is free software: you can redistribute it and/or modify it under the
// terms of the GNU Lesser General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadEmptyInput(t *testing.T) {
	r := FromBytes(nil)
	if _, ok := r.Read(); ok {
		t.Fatal("Read on empty input should report end-of-input")
	}
}

func TestReadReturnsBytesInOrder(t *testing.T) {
	r := FromBytes([]byte("ab"))
	b, ok := r.Read()
	if !ok || b != 'a' {
		t.Fatalf("Read() = (%q, %v), want ('a', true)", b, ok)
	}
	b, ok = r.Read()
	if !ok || b != 'b' {
		t.Fatalf("Read() = (%q, %v), want ('b', true)", b, ok)
	}
	if _, ok := r.Read(); ok {
		t.Fatal("Read past end should report end-of-input")
	}
}

func TestPushbackReplaysLastByte(t *testing.T) {
	r := FromBytes([]byte("xy"))
	b, _ := r.Read() // 'x'
	if b != 'x' {
		t.Fatalf("got %q, want 'x'", b)
	}
	r.Pushback()
	b, ok := r.Read()
	if !ok || b != 'x' {
		t.Fatalf("Read() after Pushback = (%q, %v), want ('x', true)", b, ok)
	}
	b, ok = r.Read()
	if !ok || b != 'y' {
		t.Fatalf("Read() after replay = (%q, %v), want ('y', true)", b, ok)
	}
}

func TestOpenUnreadablePathYieldsEmptyReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.ix")
	r := Open(path)
	if _, ok := r.Read(); ok {
		t.Fatal("Open on a missing path should yield a reader with no tokens available")
	}
}

func TestOpenReadsFullFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.ix")
	if err := os.WriteFile(path, []byte("hi"), 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}
	r := Open(path)
	var got []byte
	for {
		b, ok := r.Read()
		if !ok {
			break
		}
		got = append(got, b)
	}
	if string(got) != "hi" {
		t.Fatalf("got %q, want %q", got, "hi")
	}
}
