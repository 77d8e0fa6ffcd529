// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/xdt/cmd/cmdstate"
	"github.com/matt-FFFFFF/xdt/internal/report"
	"github.com/matt-FFFFFF/xdt/xdotool"
	"github.com/urfave/cli/v3"
)

const filterArg = "filter"

// ErrNoMatch is returned when the filter matches no command.
var ErrNoMatch = errors.New("no command matches")

// CommandsCmd lists the supported xdotool sub-commands.
var CommandsCmd = New()

// New returns a new commands command.
func New() *cli.Command {
	return &cli.Command{
		Name:  "commands",
		Usage: "List the supported xdotool commands",
		Description: `List the xdotool commands that can be used in batches, with the kind of
output each one produces and the flags it recognises.
Flags shown as name=VALUE take a value, the others are switches.
Modifier commands only produce output when they end a batch.`,
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      filterArg,
				UsageText: "[GROUP|COMMAND]",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Before: cmdstate.Before,
		Action: actionFunc,
	}
}

type row struct {
	Command  string   `json:"command" yaml:"command"`
	Group    string   `json:"group" yaml:"group"`
	Output   string   `json:"output,omitempty" yaml:"output,omitempty"`
	Modifier bool     `json:"modifier" yaml:"modifier"`
	Flags    []string `json:"flags" yaml:"flags"`
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	s, err := cmdstate.FromContext(ctx)
	if err != nil {
		return err
	}

	rows := filter(cmd.StringArg(filterArg))
	if len(rows) == 0 {
		return fmt.Errorf("%w %q", ErrNoMatch, cmd.StringArg(filterArg))
	}

	return write(cmd.Root().Writer, s.Format, rows)
}

// filter returns the commands whose group or name equals f, or all of them when f is empty.
func filter(f string) []row {
	var rows []row

	for _, spec := range xdotool.Commands() {
		if f != "" && !strings.EqualFold(f, string(spec.Group)) && !strings.EqualFold(f, string(spec.Command)) {
			continue
		}

		r := row{
			Command:  string(spec.Command),
			Group:    string(spec.Group),
			Output:   string(spec.Parse),
			Modifier: spec.Modifier,
			Flags:    make([]string, 0, len(spec.Flags)),
		}

		for _, fl := range spec.Flags {
			name := "--" + fl.Name
			if fl.Valued {
				name += "=VALUE"
			}

			r.Flags = append(r.Flags, name)
		}

		rows = append(rows, r)
	}

	return rows
}

func write(w io.Writer, format report.Format, rows []row) error {
	var (
		b   []byte
		err error
	)

	switch format {
	case report.FormatJSON:
		b, err = json.MarshalIndent(rows, "", "  ")
		b = append(b, '\n')
	case report.FormatYAML:
		b, err = yaml.MarshalWithOptions(rows, yaml.IndentSequence(true))
	default:
		b = []byte(render(rows, report.IsTerminal(w)) + "\n")
	}

	if err != nil {
		return errors.Join(report.ErrWrite, err)
	}

	if _, err := w.Write(b); err != nil {
		return errors.Join(report.ErrWrite, err)
	}

	return nil
}

func render(rows []row, colour bool) string {
	headerStyle := lipgloss.NewStyle().Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	if colour {
		headerStyle = headerStyle.Bold(true).Foreground(lipgloss.Color("12"))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("COMMAND", "GROUP", "OUTPUT", "MODIFIER", "FLAGS").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})

	for _, r := range rows {
		modifier := ""
		if r.Modifier {
			modifier = "yes"
		}

		t.Row(r.Command, r.Group, r.Output, modifier, strings.Join(r.Flags, " "))
	}

	return t.Render()
}
