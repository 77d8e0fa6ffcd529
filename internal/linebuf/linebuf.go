// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package linebuf provides a bounded output buffer that also remembers the
// last complete line written to it, so long running processes can report
// progress while their output is being captured.
package linebuf

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
)

// ErrBufferOverflow is returned by Err when more bytes were written than the buffer holds.
var ErrBufferOverflow = errors.New("output exceeds buffer limit")

// Buffer is an io.Writer that keeps at most limit bytes and tracks the last complete line.
// It is safe for concurrent use.
type Buffer struct {
	mu       sync.RWMutex
	data     bytes.Buffer
	limit    int64
	written  int64
	partial  []byte
	lastLine string
}

// New returns a buffer holding at most limit bytes. A limit of zero or less means unbounded.
func New(limit int64) *Buffer {
	return &Buffer{limit: limit}
}

// Write implements io.Writer. Bytes past the limit are dropped but still
// counted as written so that the producer is never blocked or failed.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.written += int64(len(p))
	b.track(p)

	keep := p
	if b.limit > 0 {
		room := max(b.limit-int64(b.data.Len()), 0)
		if int64(len(keep)) > room {
			keep = keep[:room]
		}
	}

	b.data.Write(keep)

	return len(p), nil
}

// track updates the last line. Must be called with the write lock held.
func (b *Buffer) track(p []byte) {
	end := bytes.LastIndexByte(p, '\n')
	if end < 0 {
		b.partial = append(b.partial, p...)
		return
	}

	if start := bytes.LastIndexByte(p[:end], '\n'); start >= 0 {
		b.lastLine = string(p[start+1 : end])
	} else {
		b.lastLine = string(append(b.partial, p[:end]...))
	}

	b.partial = append(b.partial[:0], p[end+1:]...)
}

// Bytes returns a copy of the captured output.
func (b *Buffer) Bytes() []byte {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return bytes.Clone(b.data.Bytes())
}

// LastLine returns the last complete line, truncated with "..." to maxLength when maxLength > 3.
func (b *Buffer) LastLine(maxLength int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if maxLength > 3 && len(b.lastLine) > maxLength {
		return b.lastLine[:maxLength-3] + "..."
	}

	return b.lastLine
}

// Partial returns the data written after the last newline.
func (b *Buffer) Partial() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return string(b.partial)
}

// Err reports ErrBufferOverflow if output was dropped.
func (b *Buffer) Err() error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.limit > 0 && b.written > b.limit {
		return fmt.Errorf("%w: %d of %d bytes kept", ErrBufferOverflow, b.limit, b.written)
	}

	return nil
}

// Reset discards all captured data.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data.Reset()
	b.written = 0
	b.partial = nil
	b.lastLine = ""
}
