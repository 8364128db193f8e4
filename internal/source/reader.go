// Copyright 2024 The Ix Authors
// This file is part of ixc.
//
// ixc is free software: you can redistribute it and/or modify it under the
// terms of the GNU Lesser General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// Package source implements CharReader, a pull-mode byte source with
// exactly one byte of pushback. It is the leaf dependency of the
// pipeline: everything else reads through it rather than the filesystem
// directly.
package source

import "os"

// Reader is a pull-mode reader over a file's full contents, read once
// into memory at construction. It supports pushing back exactly the last
// byte returned by Read; the caller must not push back twice in a row.
type Reader struct {
	buf []byte
	pos int
	// pushed is the number of positions to rewind on the next Read: 0 or
	// 1. The reader does not defend against a caller pushing back twice
	// consecutively, matching CharReader's documented contract.
	pushed int
}

// Open reads path fully into memory and returns a Reader over it. If the
// path cannot be opened, Open returns a Reader with an empty buffer
// rather than an error: Read immediately reports end-of-input, and the
// tokenizer built on top treats that as "no tokens" rather than a
// distinct failure mode (see internal/pipeline for where unreadable
// sources actually surface as a precondition error).
func Open(path string) *Reader {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Reader{}
	}
	return &Reader{buf: data}
}

// FromBytes builds a Reader directly over in-memory content, used by
// tests and by any caller that already has source text rather than a
// file path.
func FromBytes(data []byte) *Reader {
	return &Reader{buf: data}
}

// Read returns the next byte and true, or 0 and false at end-of-input.
func (r *Reader) Read() (byte, bool) {
	if r.pushed > 0 {
		r.pushed = 0
		return r.buf[r.pos-1], true
	}
	if r.pos >= len(r.buf) {
		return 0, false
	}
	b := r.buf[r.pos]
	r.pos++
	return b, true
}

// Pushback rewinds the reader by one position, so the next Read returns
// the same byte again. Pushback depth is exactly one.
func (r *Reader) Pushback() {
	r.pushed = 1
}
