// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package xdotool

import (
	"slices"
)

// Instruction is one queued sub-command with its rendered arguments.
// It is not modified after it has been added to a batch.
type Instruction struct {
	command Command
	flags   []Flag
	args    []string
}

// NewInstruction renders a command and its arguments.
func NewInstruction(cmd Command, args ...Arg) Instruction {
	i := Instruction{command: cmd}
	for _, a := range args {
		if a != nil {
			a.apply(&i)
		}
	}

	return i
}

// Command returns the sub-command of the instruction.
func (i Instruction) Command() Command {
	return i.command
}

// Tokens returns the sub-command name followed by flag tokens, then positional tokens.
func (i Instruction) Tokens() []string {
	out := make([]string, 0, 1+2*len(i.flags)+len(i.args))
	out = append(out, string(i.command))

	for _, f := range i.flags {
		out = append(out, f.Tokens()...)
	}

	return append(out, i.args...)
}

// HasFlag reports whether a flag with the given name was passed, whatever its value.
func (i Instruction) HasFlag(name string) bool {
	return slices.ContainsFunc(i.flags, func(f Flag) bool { return f.Name == name })
}

// HasArg reports whether the positional token was passed.
func (i Instruction) HasArg(token string) bool {
	return slices.Contains(i.args, token)
}

// Shell reports whether the command was asked for shell formatted output.
func (i Instruction) Shell() bool {
	return i.HasFlag("shell")
}

// AllWindows reports whether the command targets the whole window stack.
func (i Instruction) AllWindows() bool {
	return i.HasArg(StackAll)
}
