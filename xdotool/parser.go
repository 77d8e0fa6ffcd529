// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package xdotool

import (
	"regexp"
	"strconv"
	"strings"
)

// Parser turns the lines an instruction printed into a value.
// It decides itself how many lines it reads from the cursor.
type Parser interface {
	Parse(*Cursor) (any, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(*Cursor) (any, error)

// Parse implements Parser.
func (f ParserFunc) Parse(c *Cursor) (any, error) {
	return f(c)
}

// ParserKind names the output format of a command.
type ParserKind string

// Output formats.
const (
	ParseNone            ParserKind = ""                 // No output
	ParseInt             ParserKind = "int"              // One integer line
	ParseIntList         ParserKind = "int-list"         // Every remaining line as integers
	ParseString          ParserKind = "string"           // One line as is
	ParseGeometry        ParserKind = "geometry"         // Window position and size
	ParseMouseLocation   ParserKind = "mouse-location"   // Pointer position, screen and window
	ParseViewport        ParserKind = "viewport"         // Desktop viewport offset
	ParseDisplayGeometry ParserKind = "display-geometry" // Display width and height
)

// For returns the parser for an instruction, or nil for commands without output.
// Scalar and geometry kinds read every remaining line when a per-window
// command targets all windows with %@.
func (k ParserKind) For(ins Instruction) Parser {
	all := ins.AllWindows() && commandTable[ins.Command()].PerWindow
	shell := ins.Shell()

	switch k {
	case ParseInt:
		return lineParser(all, atoi)
	case ParseIntList:
		return lineParser(true, atoi)
	case ParseString:
		return lineParser(all, func(s string) (string, error) { return s, nil })
	case ParseGeometry:
		keys := geometryKeys
		if shell {
			keys = geometryShellKeys
		}

		return recordParser(keys, shell, all, newGeometry)
	case ParseMouseLocation:
		return recordParser(mouseKeys, shell, false, newMouseLocation)
	case ParseViewport:
		return recordParser(viewportKeys, shell, false, newViewport)
	case ParseDisplayGeometry:
		return recordParser(displayKeys, shell, false, newDisplayGeometry)
	}

	return nil
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// lineParser converts one line, or every remaining line when all is set.
func lineParser[T any](all bool, conv func(string) (T, error)) Parser {
	return ParserFunc(func(c *Cursor) (any, error) {
		if !all {
			line, err := c.Next()
			if err != nil {
				return nil, err
			}

			return conv(line)
		}

		rest := c.Rest()
		out := make([]T, 0, len(rest))

		for _, line := range rest {
			v, err := conv(line)
			if err != nil {
				return nil, err
			}

			out = append(out, v)
		}

		return out, nil
	})
}

var intPattern = regexp.MustCompile(`-?\d+`)

// scanInts returns every integer found in the lines, in order.
func scanInts(lines ...string) ([]int, error) {
	var out []int

	for _, line := range lines {
		for _, tok := range intPattern.FindAllString(line, -1) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, err
			}

			out = append(out, n)
		}
	}

	return out, nil
}

// recordParser fills the keys, in order, with the integers of one record.
// In shell mode a record is exactly one line per key. Otherwise lines are read
// until enough integers have been seen.
func recordParser[T any](keys []string, shell, all bool, build func(map[string]int) T) Parser {
	read := func(c *Cursor) (T, error) {
		var (
			zero T
			vals []int
		)

		if shell {
			lines, err := c.Take(len(keys))
			if err != nil {
				return zero, err
			}

			if vals, err = scanInts(lines...); err != nil {
				return zero, err
			}
		}

		for !shell && len(vals) < len(keys) {
			line, err := c.Next()
			if err != nil {
				return zero, err
			}

			more, err := scanInts(line)
			if err != nil {
				return zero, err
			}

			vals = append(vals, more...)
		}

		fields := make(map[string]int, len(keys))
		for i, k := range keys {
			if i < len(vals) {
				fields[k] = vals[i]
			}
		}

		return build(fields), nil
	}

	return ParserFunc(func(c *Cursor) (any, error) {
		if !all {
			return read(c)
		}

		out := make([]T, 0, 1)

		for !c.Done() {
			rec, err := read(c)
			if err != nil {
				return nil, err
			}

			out = append(out, rec)
		}

		return out, nil
	})
}
