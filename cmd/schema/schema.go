// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package schema provides the schema command for documenting batch files.
package schema

import (
	"context"

	"github.com/matt-FFFFFF/xdt/cmd/cmdstate"
	"github.com/matt-FFFFFF/xdt/internal/report"
	"github.com/matt-FFFFFF/xdt/internal/schema"
	"github.com/urfave/cli/v3"
)

// SchemaCmd writes the schema of batch definition files.
var SchemaCmd = New()

// New returns a new schema command.
func New() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Describe the batch definition file format",
		Description: `Write the batch definition file format for the selected --format:
JSON Schema for json, the same schema as YAML for yaml and Markdown
reference documentation for text.

Point your editor's YAML language server at the JSON Schema to get
completion for commands and flags.`,
		Before: cmdstate.Before,
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	s, err := cmdstate.FromContext(ctx)
	if err != nil {
		return err
	}

	g := schema.NewGenerator()
	w := cmd.Root().Writer

	switch s.Format {
	case report.FormatJSON:
		return g.WriteJSONSchema(w)
	case report.FormatYAML:
		return g.WriteYAMLSchema(w)
	default:
		return g.WriteMarkdownDoc(w)
	}
}
