// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package watch

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/matt-FFFFFF/xdt/cmd/cmdstate"
	"github.com/matt-FFFFFF/xdt/internal/batchfile"
	"github.com/matt-FFFFFF/xdt/internal/ctxlog"
	"github.com/matt-FFFFFF/xdt/internal/report"
	"github.com/matt-FFFFFF/xdt/internal/tui"
	"github.com/urfave/cli/v3"
)

const (
	fileFlag        = "file"
	intervalFlag    = "interval"
	defaultInterval = 2 * time.Second
)

var (
	// ErrInterval is returned for an interval that is not positive.
	ErrInterval = errors.New("interval must be greater than zero")
	// ErrNoBatch is returned when neither a file nor a command chain is given.
	ErrNoBatch = errors.New("specify a batch file with --file or a command chain after --")
)

// Watch runs the terminal UI. It is replaced in tests.
var Watch = tui.Watch

// WatchCmd re-runs a batch on an interval and shows the latest outputs.
var WatchCmd = New()

// New returns a new watch command.
func New() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "Re-run a batch on an interval in a terminal UI",
		UsageText: "xdt watch --interval 1s -- getmouselocation",
		Description: `Run a batch repeatedly and show the outputs of the latest run.
The batch comes from a file given with --file, or from a command chain after --.
Press 'p' to pause, 'r' to run immediately and 'q' to quit.
With --out the results of the last run are written to a file on exit.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      fileFlag,
				Aliases:   []string{"f"},
				Usage:     "URL or path of a batch file",
				TakesFile: true,
			},
			&cli.DurationFlag{
				Name:    intervalFlag,
				Aliases: []string{"i"},
				Usage:   "Time between the end of one run and the start of the next",
				Value:   defaultInterval,
			},
		},
		Before: cmdstate.Before,
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	s, err := cmdstate.FromContext(ctx)
	if err != nil {
		return err
	}

	interval := cmd.Duration(intervalFlag)
	if interval <= 0 {
		return ErrInterval
	}

	def, err := definition(ctx, s, cmd)
	if err != nil {
		return err
	}

	if s.DryRun {
		return s.Write(ctx, cmd.Root().Writer, report.Report{s.RunDefinition(ctx, def)})
	}

	// Logs would corrupt the screen, so they are held until the UI exits.
	logs := new(bytes.Buffer)
	tuiCtx := ctxlog.New(ctx, slog.New(ctxlog.NewConsoleHandler(logs, &slog.HandlerOptions{Level: ctxlog.LevelVar})))

	last, err := Watch(tuiCtx, def.Label(), interval, func(ctx context.Context) report.Entry {
		return s.RunDefinition(ctx, def)
	})

	logs.WriteTo(cmd.Root().ErrWriter) //nolint:errcheck

	if err != nil {
		return err
	}

	if last == nil {
		return nil
	}

	return s.Write(ctx, cmd.Root().Writer, report.Report{*last})
}

func definition(ctx context.Context, s *cmdstate.State, cmd *cli.Command) (*batchfile.Definition, error) {
	if src := cmd.String(fileFlag); src != "" {
		loadCtx, cancel := s.WithTimeout(ctx)
		defer cancel()

		return batchfile.Load(loadCtx, src)
	}

	tokens := cmd.Args().Slice()
	if len(tokens) > 0 && tokens[0] == "--" {
		tokens = tokens[1:]
	}

	if len(tokens) == 0 {
		return nil, ErrNoBatch
	}

	return batchfile.FromArgs(tokens)
}
