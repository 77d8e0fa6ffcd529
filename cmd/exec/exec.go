// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package exec

import (
	"context"

	"github.com/matt-FFFFFF/xdt/cmd/cmdstate"
	"github.com/matt-FFFFFF/xdt/internal/batchfile"
	"github.com/urfave/cli/v3"
)

// ExecCmd runs an xdotool argument chain given on the command line.
var ExecCmd = New()

// New returns a new exec command.
func New() *cli.Command {
	return &cli.Command{
		Name:      "exec",
		Usage:     "Run an xdotool command chain and parse its output",
		UsageText: "xdt [options] exec -- search --name term getwindowgeometry %@",
		Description: `Build a batch from an xdotool style command chain and run it.
Put the chain after -- so its flags are not read as xdt flags.
A token that names an xdotool command starts a new command. Use -- inside
the chain to pass the next token as a plain argument.`,
		Before: cmdstate.Before,
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	s, err := cmdstate.FromContext(ctx)
	if err != nil {
		return err
	}

	tokens := cmd.Args().Slice()
	if len(tokens) > 0 && tokens[0] == "--" {
		tokens = tokens[1:]
	}

	def, err := batchfile.FromArgs(tokens)
	if err != nil {
		return err
	}

	return s.Execute(ctx, cmd.Root().Writer, def)
}
