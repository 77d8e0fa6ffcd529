// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package xdotool

import (
	"errors"
	"strings"
	"unicode"
)

// ErrOutputExhausted is returned when a parser needs more lines than the process printed.
var ErrOutputExhausted = errors.New("no more output lines")

// Cursor walks the output lines of one run. It is shared by every parser of
// the batch, each one resuming where the previous one stopped.
type Cursor struct {
	lines []string
	pos   int
}

// NewCursor splits stdout into lines, ignoring trailing whitespace.
// Empty output yields a cursor with no lines.
func NewCursor(stdout string) *Cursor {
	stdout = strings.TrimRightFunc(stdout, unicode.IsSpace)
	if stdout == "" {
		return &Cursor{}
	}

	return &Cursor{lines: strings.Split(stdout, "\n")}
}

// Next returns the next line.
func (c *Cursor) Next() (string, error) {
	if c.Done() {
		return "", ErrOutputExhausted
	}

	line := c.lines[c.pos]
	c.pos++

	return line, nil
}

// Take returns the next n lines. On a short read nothing is consumed.
func (c *Cursor) Take(n int) ([]string, error) {
	if c.Remaining() < n {
		return nil, ErrOutputExhausted
	}

	out := c.lines[c.pos : c.pos+n]
	c.pos += n

	return out, nil
}

// Rest returns every remaining line.
func (c *Cursor) Rest() []string {
	out := c.lines[c.pos:]
	c.pos = len(c.lines)

	return out
}

// Remaining is the number of unread lines.
func (c *Cursor) Remaining() int {
	return len(c.lines) - c.pos
}

// Done reports whether every line has been read.
func (c *Cursor) Done() bool {
	return c.Remaining() == 0
}
