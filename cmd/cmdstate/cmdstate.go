// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdstate holds the settings shared by the sub-commands.
// The environment configuration is loaded once per sub-command and the
// persistent flags of the root command are applied on top of it.
package cmdstate

import (
	"context"
	"errors"

	"github.com/matt-FFFFFF/xdt/internal/config"
	"github.com/matt-FFFFFF/xdt/internal/ctxlog"
	"github.com/matt-FFFFFF/xdt/internal/report"
	"github.com/matt-FFFFFF/xdt/xdotool"
	"github.com/urfave/cli/v3"
)

const (
	displayFlag   = "display"
	binaryFlag    = "binary"
	timeoutFlag   = "timeout"
	formatFlag    = "format"
	dryRunFlag    = "dry-run"
	outFlag       = "out"
	logLevelFlag  = "log-level"
	logFormatFlag = "log-format"
)

// ErrNoState is returned when a sub-command runs without Before.
var ErrNoState = errors.New("command state not initialised")

type stateKey struct{}

// NewRunner creates the process runner for a configuration.
var NewRunner = func(c *config.Config) xdotool.Runner {
	return c.Runner()
}

// NewFlags returns the persistent flags of the root command.
func NewFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  displayFlag,
			Usage: "X display to run against, overrides " + config.Prefix + "_DISPLAY and the batch file",
		},
		&cli.StringFlag{
			Name:      binaryFlag,
			Usage:     "Path to the xdotool executable, overrides " + config.Prefix + "_BINARY",
			TakesFile: true,
		},
		&cli.DurationFlag{
			Name:  timeoutFlag,
			Usage: "Maximum time for one xdotool invocation, 0 disables the limit",
		},
		&cli.StringFlag{
			Name:    formatFlag,
			Aliases: []string{"o"},
			Usage:   "Result format: text, json or yaml",
			Value:   string(report.FormatText),
		},
		&cli.BoolFlag{
			Name:    dryRunFlag,
			Aliases: []string{"n"},
			Usage:   "Print the command lines instead of running them",
		},
		&cli.StringFlag{
			Name:      outFlag,
			Usage:     "Also write the results to this file",
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:  logLevelFlag,
			Usage: "Log level: DEBUG, INFO, WARN or ERROR",
		},
		&cli.StringFlag{
			Name:  logFormatFlag,
			Usage: "Log format: pretty or json",
		},
	}
}

// State is the resolved configuration of one sub-command.
type State struct {
	Config *config.Config
	Format report.Format
	DryRun bool
	Out    string
}

// Before loads the configuration, applies the flags and configures logging.
// It is the Before hook of every sub-command.
func Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.Load()
	if err != nil {
		return ctx, err
	}

	if cmd.IsSet(displayFlag) {
		cfg.Display = cmd.String(displayFlag)
	}

	if cmd.IsSet(binaryFlag) {
		cfg.Binary = cmd.String(binaryFlag)
	}

	if cmd.IsSet(timeoutFlag) {
		cfg.Timeout = cmd.Duration(timeoutFlag)
	}

	if cmd.IsSet(logLevelFlag) {
		cfg.LogLevel = cmd.String(logLevelFlag)
	}

	if cmd.IsSet(logFormatFlag) {
		cfg.LogFormat = cmd.String(logFormatFlag)
	}

	if err := cfg.Validate(); err != nil {
		return ctx, err
	}

	format, err := report.ParseFormat(cmd.String(formatFlag))
	if err != nil {
		return ctx, err
	}

	ctxlog.LevelVar.Set(cfg.Level())
	ctx = ctxlog.New(ctx, ctxlog.ForFormat(cfg.LogFormat))

	s := &State{
		Config: cfg,
		Format: format,
		DryRun: cmd.Bool(dryRunFlag),
		Out:    cmd.String(outFlag),
	}

	ctxlog.Debug(ctx, "command state", "binary", cfg.Binary, "display", cfg.Display,
		"timeout", cfg.Timeout.String(), "format", string(format), "dryRun", s.DryRun)

	return context.WithValue(ctx, stateKey{}, s), nil
}

// FromContext returns the state stored by Before.
func FromContext(ctx context.Context) (*State, error) {
	s, ok := ctx.Value(stateKey{}).(*State)
	if !ok {
		return nil, ErrNoState
	}

	return s, nil
}

// Options returns the batch options for the state.
func (s *State) Options() []xdotool.Option {
	return append(s.Config.BatchOptions(), xdotool.WithRunner(NewRunner(s.Config)))
}

// WithTimeout bounds ctx by the configured timeout. A zero timeout leaves it unbounded.
func (s *State) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.Config.Timeout == 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, s.Config.Timeout)
}
