// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/xdt/cmd/cmdstate"
	"github.com/matt-FFFFFF/xdt/cmd/commands"
	"github.com/matt-FFFFFF/xdt/cmd/exec"
	"github.com/matt-FFFFFF/xdt/cmd/run"
	"github.com/matt-FFFFFF/xdt/cmd/schema"
	"github.com/matt-FFFFFF/xdt/cmd/watch"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		run.RunCmd,
		exec.ExecCmd,
		commands.CommandsCmd,
		watch.WatchCmd,
		schema.SchemaCmd,
	},
	Flags:     cmdstate.NewFlags(),
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "xdt",
	Description: `xdt runs batches of xdotool commands as a single xdotool invocation and
splits the combined output back into one typed result per command.
Batches come from YAML or HCL files, or from an xdotool style command chain.

Settings are read from XDT_* environment variables and can be overridden with flags.`,
	Usage:     "xdt exec -- getmouselocation",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}
