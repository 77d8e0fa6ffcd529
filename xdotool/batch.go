// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package xdotool

import (
	"context"
	"maps"
	"slices"

	"github.com/matt-FFFFFF/xdt/internal/ctxlog"
)

// Batch queues xdotool sub-commands and runs them as one process.
// A Batch is not safe for concurrent use.
type Batch struct {
	runner Runner
	binary string
	env    map[string]string

	instructions []Instruction
	parsers      []Parser
	modifiers    map[Command]struct{}

	last *Result
}

// Option configures a Batch.
type Option func(*Batch)

// WithRunner replaces the process runner, mainly for tests.
func WithRunner(r Runner) Option {
	return func(b *Batch) {
		b.runner = r
	}
}

// WithBinary sets the path of the xdotool executable.
func WithBinary(path string) Option {
	return func(b *Batch) {
		if path != "" {
			b.binary = path
		}
	}
}

// WithDisplay sets DISPLAY in the environment of the child process.
func WithDisplay(display string) Option {
	return func(b *Batch) {
		if display != "" {
			b.env["DISPLAY"] = display
		}
	}
}

// WithEnv adds variables to the environment of the child process.
func WithEnv(env map[string]string) Option {
	return func(b *Batch) {
		maps.Copy(b.env, env)
	}
}

// New returns an empty batch.
func New(opts ...Option) *Batch {
	b := &Batch{
		runner:    &OSRunner{},
		binary:    DefaultBinary,
		env:       make(map[string]string),
		modifiers: make(map[Command]struct{}),
	}

	for _, o := range opts {
		o(b)
	}

	return b
}

// Add queues a sub-command. The parser is chosen from the command table.
// Unknown commands are queued without a parser.
func (b *Batch) Add(cmd Command, args ...Arg) *Batch {
	ins := NewInstruction(cmd, args...)
	spec := commandTable[cmd]

	b.instructions = append(b.instructions, ins)
	b.parsers = append(b.parsers, spec.Parse.For(ins))

	if spec.Modifier {
		b.modifiers[cmd] = struct{}{}
	}

	return b
}

// Len is the number of queued instructions.
func (b *Batch) Len() int {
	return len(b.instructions)
}

// Instructions returns a copy of the queued instructions.
func (b *Batch) Instructions() []Instruction {
	return slices.Clone(b.instructions)
}

// Args returns the argument vector the next run would pass to the binary.
func (b *Batch) Args() []string {
	var argv []string
	for _, ins := range b.instructions {
		argv = append(argv, ins.Tokens()...)
	}

	return argv
}

// Binary returns the executable the batch runs.
func (b *Batch) Binary() string {
	return b.binary
}

// Last returns the result of the most recent run, or nil.
func (b *Batch) Last() *Result {
	return b.last
}

// Reset discards every queued instruction.
func (b *Batch) Reset() {
	b.instructions = nil
	b.parsers = nil
	clear(b.modifiers)
}

// Run executes the queued instructions as a single process and distributes
// its output to their parsers in order. The batch is empty afterwards.
//
// A process that fails to start or exits non-zero is not an error: the
// returned result carries the status and no outputs. A *ParseError is
// returned when the output does not match what the instructions expect,
// together with the outputs parsed up to that point.
func (b *Batch) Run(ctx context.Context) (*Result, error) {
	defer b.Reset()

	argv := b.Args()
	logger := ctxlog.Logger(ctx).With("binary", b.binary)
	logger.Debug("running batch", "args", argv, "instructions", len(b.instructions))

	proc := b.runner.Run(ctx, Invocation{Path: b.binary, Args: argv, Env: b.env})

	res := &Result{
		StdOut: string(proc.StdOut),
		StdErr: string(proc.StdErr),
		Status: proc.ExitCode,
		Err:    proc.Err,
		Args:   argv,
	}
	b.last = res

	if res.Status != 0 {
		logger.Debug("batch failed", "status", res.Status, "error", res.Err)
		return res, nil
	}

	cursor := NewCursor(res.StdOut)
	lastIdx := len(b.instructions) - 1

	for i, ins := range b.instructions {
		p := b.parsers[i]
		if p == nil {
			continue
		}

		if _, mod := b.modifiers[ins.Command()]; mod && i != lastIdx {
			logger.Debug("skipping modifier output", "index", i, "command", ins.Command())
			continue
		}

		v, err := p.Parse(cursor)
		if err != nil {
			return res, &ParseError{Command: ins.Command(), Index: i, Err: err}
		}

		res.Outputs = append(res.Outputs, Output{Index: i, Command: ins.Command(), Value: v})
	}

	logger.Debug("batch finished", "outputs", len(res.Outputs), "unread", cursor.Remaining())

	return res, nil
}
