// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package xdotool

import (
	"fmt"
)

// StackAll is the window stack reference that selects every window matched
// by a preceding search.
const StackAll = "%@"

// Arg is an argument to one of the fluent batch methods.
// It is either a Flag or a Positional.
type Arg interface {
	apply(*Instruction)
}

// Flag is rendered as `--name`, followed by its value unless it is a switch.
type Flag struct {
	Name   string
	Value  string
	Switch bool
}

func (f Flag) apply(i *Instruction) {
	i.flags = append(i.flags, f)
}

// Tokens renders the flag as command line tokens.
func (f Flag) Tokens() []string {
	if f.Switch {
		return []string{"--" + f.Name}
	}

	return []string{"--" + f.Name, f.Value}
}

// Switch returns a presence-only flag.
func Switch(name string) Flag {
	return Flag{Name: name, Switch: true}
}

// Opt returns a valued flag. The value is formatted with fmt.Sprint.
// Passing the boolean true yields a switch, while false is rendered as the
// value "false". Definition files omit a flag set to false instead.
func Opt(name string, value any) Flag {
	if b, ok := value.(bool); ok && b {
		return Switch(name)
	}

	return Flag{Name: name, Value: fmt.Sprint(value)}
}

// Positional holds positional tokens, rendered after all flags.
type Positional []string

func (p Positional) apply(i *Instruction) {
	i.args = append(i.args, p...)
}

// Pos formats each value with fmt.Sprint and returns them as positional tokens.
func Pos(values ...any) Positional {
	p := make(Positional, 0, len(values))
	for _, v := range values {
		p = append(p, fmt.Sprint(v))
	}

	return p
}

// Window refers to a window by id.
func Window(id int) Positional {
	return Pos(id)
}

var (
	// Shell requests the `--shell` output format from commands that support it.
	Shell = Switch("shell")
	// Sync waits for the requested change to take effect.
	Sync = Switch("sync")
	// AllWindows applies the command to every window on the window stack.
	AllWindows = Positional{StackAll}
)
