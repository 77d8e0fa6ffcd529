// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package run

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/xdt/cmd/cmdstate"
	"github.com/matt-FFFFFF/xdt/internal/batchfile"
	"github.com/matt-FFFFFF/xdt/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

const fileFlag = "file"

var (
	// ErrNoFiles is returned when no batch file is given.
	ErrNoFiles = errors.New("specify at least one batch file with --file or -f")
	// ErrEmptyURL is returned for an empty batch file argument.
	ErrEmptyURL = errors.New("empty batch file URL")
)

// RunCmd runs the batches defined in one or more files.
var RunCmd = New()

// New returns a new run command.
func New() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run batches defined in YAML or HCL files",
		Description: `Run one or more batches of xdotool commands defined in files.
Each file holds one batch and is run as a single xdotool invocation.
Files ending in .hcl are read as HCL, anything else as YAML.

File URLs use Hashicorp's go-getter syntax, which allows for fetching files from various sources.
See https://github.com/hashicorp/go-getter.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    fileFlag,
				Aliases: []string{"f"},
				Usage: "URL or path of a batch file. " +
					"Specify multiple times to run multiple files in order.",
				TakesFile: true,
			},
		},
		Before: cmdstate.Before,
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	s, err := cmdstate.FromContext(ctx)
	if err != nil {
		return err
	}

	urls := cmd.StringSlice(fileFlag)
	if len(urls) == 0 {
		return ErrNoFiles
	}

	loadCtx, cancel := s.WithTimeout(ctx)
	defer cancel()

	defs := make([]*batchfile.Definition, 0, len(urls))

	for i, u := range urls {
		if u == "" {
			return fmt.Errorf("%w at index %d", ErrEmptyURL, i)
		}

		def, err := batchfile.Load(loadCtx, u)
		if err != nil {
			return err
		}

		defs = append(defs, def)
	}

	logger.Debug("running batches", "count", len(defs))

	return s.Execute(ctx, cmd.Root().Writer, defs...)
}
