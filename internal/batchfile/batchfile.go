// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package batchfile decodes batch definitions from YAML or HCL files and from
// xdotool style argument chains, and turns them into xdotool batches.
//
// A YAML definition looks like this:
//
//	name: focus firefox
//	display: ":0"
//	steps:
//	  - command: search
//	    flags:
//	      onlyvisible: true
//	      limit: 1
//	    args: [firefox]
//	  - command: windowactivate
//	    flags:
//	      sync: true
//	  - command: getwindowgeometry
//
// A flag set to true is rendered as a switch, a flag set to false is omitted
// and any other scalar is rendered as a valued flag.
package batchfile

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/matt-FFFFFF/xdt/xdotool"
)

var (
	// ErrDecode is returned when a definition cannot be decoded.
	ErrDecode = errors.New("failed to decode batch definition")
	// ErrNoSteps is returned when a definition has no steps.
	ErrNoSteps = errors.New("batch definition has no steps")
	// ErrFlagValue is returned when a flag value is not a scalar.
	ErrFlagValue = errors.New("flag value must be a string, number or bool")
	// ErrArgValue is returned when a positional argument is not a scalar.
	ErrArgValue = errors.New("argument must be a string or number")
)

// Definition is a named list of steps run as one batch.
type Definition struct {
	Name    string
	Display string
	Source  string // Where the definition was read from, for messages
	Steps   []Step
}

// Step is one sub-command of a definition.
type Step struct {
	Command xdotool.Command
	Flags   []xdotool.Flag
	Args    []string
}

// StepError records which step of a definition could not be decoded.
type StepError struct {
	Index   int
	Command string
	Err     error
}

// Error implements the error interface for StepError.
func (e *StepError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("step %d: %v", e.Index, e.Err)
	}

	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *StepError) Unwrap() error {
	return e.Err
}

// Batch queues the steps on a new batch. The definition's display is applied
// before opts, so an explicit display option takes precedence.
func (d *Definition) Batch(opts ...xdotool.Option) *xdotool.Batch {
	all := make([]xdotool.Option, 0, len(opts)+1)
	all = append(all, xdotool.WithDisplay(d.Display))
	all = append(all, opts...)

	return d.Queue(xdotool.New(all...))
}

// Queue adds the steps to an existing batch.
func (d *Definition) Queue(b *xdotool.Batch) *xdotool.Batch {
	for _, s := range d.Steps {
		b.Add(s.Command, s.arguments()...)
	}

	return b
}

// Label returns the name of the definition, or its source when unnamed.
func (d *Definition) Label() string {
	if d.Name != "" {
		return d.Name
	}

	return d.Source
}

func (s Step) arguments() []xdotool.Arg {
	args := make([]xdotool.Arg, 0, len(s.Flags)+1)
	for _, f := range s.Flags {
		args = append(args, f)
	}

	if len(s.Args) > 0 {
		args = append(args, xdotool.Positional(s.Args))
	}

	return args
}

// command checks the sub-command name against the command table.
func command(name string) (xdotool.Command, error) {
	spec, err := xdotool.Lookup(name)
	if err != nil {
		return "", err
	}

	return spec.Command, nil
}

// flag converts a decoded value into a flag. The second result is false when
// the flag is omitted.
func flag(name string, v any) (xdotool.Flag, bool, error) {
	switch x := v.(type) {
	case bool:
		if !x {
			return xdotool.Flag{}, false, nil
		}

		return xdotool.Switch(name), true, nil
	case nil:
		return xdotool.Flag{}, false, nil
	}

	s, err := scalar(v)
	if err != nil {
		return xdotool.Flag{}, false, fmt.Errorf("%w: --%s", ErrFlagValue, name)
	}

	return xdotool.Opt(name, s), true, nil
}

// scalar renders strings and numbers.
func scalar(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case int, int64, uint64, int32, uint32, uint:
		return fmt.Sprint(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case *big.Float:
		return x.Text('f', -1), nil
	}

	return "", ErrArgValue
}
