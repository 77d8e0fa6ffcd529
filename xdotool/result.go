// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package xdotool

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every error returned while distributing output to parsers.
	ErrParse = errors.New("failed to parse xdotool output")
	// ErrNoOutput is returned when an output index is out of range.
	ErrNoOutput = errors.New("no such output")
	// ErrOutputType is returned when an output does not have the requested type.
	ErrOutputType = errors.New("output has a different type")
)

// ParseError reports which instruction of the batch failed to parse its output.
type ParseError struct {
	Command Command
	Index   int // Position of the instruction in the batch
	Err     error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: instruction %d (%s): %v", ErrParse, e.Index, e.Command, e.Err)
}

// Unwrap allows errors.Is to match both ErrParse and the underlying cause.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// Output is the parsed value of one instruction.
type Output struct {
	Index   int     `json:"index" yaml:"index"`
	Command Command `json:"command" yaml:"command"`
	Value   any     `json:"value" yaml:"value"`
}

// Result is the outcome of one batch run.
type Result struct {
	StdOut  string   // Raw standard output
	StdErr  string   // Raw standard error, never inspected by the batch
	Status  int      // Exit code, -1 when the process did not start or was killed
	Err     error    // Process level error, if any
	Args    []string // Arguments passed to the binary
	Outputs []Output // Parsed values in instruction order
}

// Failed reports whether the process exited unsuccessfully.
func (r *Result) Failed() bool {
	return r.Status != 0 || r.Err != nil
}

// Values returns the parsed values without their instruction metadata.
func (r *Result) Values() []any {
	out := make([]any, len(r.Outputs))
	for i, o := range r.Outputs {
		out[i] = o.Value
	}

	return out
}

// Value returns output i of the result as a T.
func Value[T any](r *Result, i int) (T, error) {
	var zero T

	if r == nil || i < 0 || i >= len(r.Outputs) {
		return zero, fmt.Errorf("%w: %d", ErrNoOutput, i)
	}

	v, ok := r.Outputs[i].Value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: output %d is %T, want %T", ErrOutputType, i, r.Outputs[i].Value, zero)
	}

	return v, nil
}
