// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package batchfile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/xdt/xdotool"
)

// ErrNoCommand is returned when an argument chain does not start with a sub-command.
var ErrNoCommand = errors.New("argument chain must start with an xdotool command")

// FromArgs parses an xdotool style chain such as
//
//	search --onlyvisible --class firefox windowactivate --sync getwindowgeometry
//
// A token naming a known sub-command starts a new step. A flag is written as
// --name=value, or as --name value when the command takes a value for it;
// other flags are switches. Everything else is positional.
//
// The token "--" is kept as a positional of the current step, since xdotool
// reads it as the end of options, as in "mousemove_relative -- -20 15". The
// token after it is also positional even if it names a command.
func FromArgs(tokens []string) (*Definition, error) {
	def := &Definition{Source: "arguments"}

	var (
		spec    xdotool.Spec
		literal bool
	)

	cur := func() *Step { return &def.Steps[len(def.Steps)-1] }

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if !literal && tok == "--" {
			if len(def.Steps) == 0 {
				return nil, fmt.Errorf("%w: %q", ErrNoCommand, tok)
			}

			cur().Args = append(cur().Args, tok)
			literal = true

			continue
		}

		if !literal {
			if s, err := xdotool.Lookup(tok); err == nil {
				def.Steps = append(def.Steps, Step{Command: s.Command})
				spec = s

				continue
			}
		}

		if len(def.Steps) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoCommand, tok)
		}

		if !literal && strings.HasPrefix(tok, "--") {
			name, value, valued := strings.Cut(strings.TrimPrefix(tok, "--"), "=")

			fs, known := spec.Flag(name)

			switch {
			case valued:
				cur().Flags = append(cur().Flags, xdotool.Opt(name, value))
			case known && fs.Valued && i+1 < len(tokens):
				i++
				cur().Flags = append(cur().Flags, xdotool.Opt(name, tokens[i]))
			default:
				cur().Flags = append(cur().Flags, xdotool.Switch(name))
			}

			continue
		}

		literal = false

		cur().Args = append(cur().Args, tok)
	}

	if len(def.Steps) == 0 {
		return nil, ErrNoSteps
	}

	return def, nil
}
