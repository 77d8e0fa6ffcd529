// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config reads the environment configuration of the xdt command.
// Every setting can be overridden by a command line flag.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/matt-FFFFFF/xdt/internal/ctxlog"
	"github.com/matt-FFFFFF/xdt/xdotool"
)

// Prefix is prepended to every environment variable name, e.g. XDT_BINARY.
const Prefix = "XDT"

// ErrInvalidConfig is returned when an environment value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings read from the environment.
type Config struct {
	// Path or name of the xdotool executable.
	Binary string `envconfig:"BINARY" default:"xdotool"`
	// X display for the child process, inherited from DISPLAY when empty.
	Display   string        `envconfig:"DISPLAY"`
	LogLevel  string        `envconfig:"LOG_LEVEL" default:"WARN"`
	LogFormat string        `envconfig:"LOG_FORMAT" default:"pretty"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"30s"`
	MaxOutput int64         `envconfig:"MAX_OUTPUT" default:"8388608"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process(Prefix, &c); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks that the values are usable.
func (c *Config) Validate() error {
	if c.Binary == "" {
		return fmt.Errorf("%w: %s_BINARY is required", ErrInvalidConfig, Prefix)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("%w: %s_TIMEOUT must not be negative", ErrInvalidConfig, Prefix)
	}

	if c.MaxOutput <= 0 {
		return fmt.Errorf("%w: %s_MAX_OUTPUT must be greater than 0", ErrInvalidConfig, Prefix)
	}

	switch strings.ToLower(c.LogFormat) {
	case "pretty", "json":
	default:
		return fmt.Errorf("%w: %s_LOG_FORMAT must be pretty or json, got %q", ErrInvalidConfig, Prefix, c.LogFormat)
	}

	return nil
}

// Level returns the configured log level.
func (c *Config) Level() slog.Level {
	return ctxlog.ParseLevel(c.LogLevel)
}

// Runner returns the process runner for this configuration.
func (c *Config) Runner() xdotool.Runner {
	return &xdotool.OSRunner{
		MaxOutput:      c.MaxOutput,
		ForwardSignals: true,
	}
}

// BatchOptions returns the batch options for this configuration.
func (c *Config) BatchOptions() []xdotool.Option {
	return []xdotool.Option{
		xdotool.WithBinary(c.Binary),
		xdotool.WithDisplay(c.Display),
		xdotool.WithRunner(c.Runner()),
	}
}
