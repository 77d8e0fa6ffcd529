// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package schema generates the JSON Schema and the reference documentation of
// batch definition files from the xdotool command table.
package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/xdt/xdotool"
)

// ID is the draft the generated schema conforms to.
const ID = "https://json-schema.org/draft/2020-12/schema"

// Generator builds schemas for a set of command specs.
type Generator struct {
	specs []xdotool.Spec
}

// NewGenerator creates a generator for every supported command.
func NewGenerator() *Generator {
	return &Generator{specs: xdotool.Commands()}
}

// scalar is the schema of a flag value or positional argument.
func scalar() map[string]any {
	return map[string]any{
		"type": []string{"string", "integer", "number"},
	}
}

// Generate returns the schema of a whole definition file.
func (g *Generator) Generate() map[string]any {
	return map[string]any{
		"$schema":     ID,
		"type":        "object",
		"title":       "xdt batch definition",
		"description": "A batch of xdotool commands run as a single invocation",
		"properties": map[string]any{
			"name": map[string]any{
				"type":        "string",
				"description": "Name of the batch, shown in results",
			},
			"display": map[string]any{
				"type":        "string",
				"description": "X display to run against, e.g. :0",
			},
			"steps": map[string]any{
				"type":        "array",
				"description": "Commands in the order they are run",
				"minItems":    1,
				"items": map[string]any{
					"anyOf": g.stepSchemas(),
				},
			},
		},
		"required":             []string{"steps"},
		"additionalProperties": false,
	}
}

func (g *Generator) stepSchemas() []map[string]any {
	schemas := make([]map[string]any, 0, len(g.specs))
	for _, s := range g.specs {
		schemas = append(schemas, StepSchema(s))
	}

	return schemas
}

// StepSchema returns the schema of one step running the given command.
func StepSchema(s xdotool.Spec) map[string]any {
	flags := make(map[string]any, len(s.Flags))

	for _, f := range s.Flags {
		if f.Valued {
			flags[f.Name] = map[string]any{
				"description": "--" + f.Name + " VALUE, omitted when false",
				"type":        []string{"string", "integer", "number", "boolean"},
			}

			continue
		}

		flags[f.Name] = map[string]any{
			"description": "--" + f.Name + " when true",
			"type":        "boolean",
		}
	}

	return map[string]any{
		"type":        "object",
		"description": Describe(s),
		"properties": map[string]any{
			"command": map[string]any{
				"const": string(s.Command),
			},
			"flags": map[string]any{
				"type":                 "object",
				"properties":           flags,
				"additionalProperties": false,
			},
			"args": map[string]any{
				"anyOf": []any{
					scalar(),
					map[string]any{"type": "array", "items": scalar()},
				},
			},
		},
		"required":             []string{"command"},
		"additionalProperties": false,
	}
}

// Describe summarises what a command produces.
func Describe(s xdotool.Spec) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s command", s.Group)

	switch {
	case s.Parse == xdotool.ParseNone:
		sb.WriteString(", no output")
	case s.Modifier:
		fmt.Fprintf(&sb, ", %s output when last in the batch", s.Parse)
	default:
		fmt.Fprintf(&sb, ", %s output", s.Parse)
	}

	return sb.String()
}

// WriteJSONSchema writes the schema as indented JSON.
func (g *Generator) WriteJSONSchema(w io.Writer) error {
	b, err := json.MarshalIndent(g.Generate(), "", "  ")
	if err != nil {
		return err
	}

	_, err = w.Write(append(b, '\n'))

	return err
}

// WriteYAMLSchema writes the schema as YAML.
func (g *Generator) WriteYAMLSchema(w io.Writer) error {
	b, err := yaml.MarshalWithOptions(g.Generate(), yaml.IndentSequence(true))
	if err != nil {
		return err
	}

	_, err = w.Write(b)

	return err
}

// WriteMarkdownDoc writes reference documentation of the file format.
func (g *Generator) WriteMarkdownDoc(w io.Writer) error {
	var sb strings.Builder

	sb.WriteString(`# xdt batch definition

| Field | Type | Required | Description |
|-------|------|----------|-------------|
| ` + "`name`" + ` | string | No | Name of the batch, shown in results |
| ` + "`display`" + ` | string | No | X display to run against |
| ` + "`steps`" + ` | array | Yes | Commands in the order they are run |

Each step has a ` + "`command`" + `, optional ` + "`flags`" + ` and optional ` + "`args`" + `.
A flag set to true is passed as a switch, false omits it and any other value
is passed after the flag.

## Commands

| Command | Output | Flags |
|---------|--------|-------|
`)

	for _, s := range g.specs {
		names := make([]string, 0, len(s.Flags))
		for _, f := range s.Flags {
			if f.Valued {
				names = append(names, "`"+f.Name+"=VALUE`")
				continue
			}

			names = append(names, "`"+f.Name+"`")
		}

		fmt.Fprintf(&sb, "| `%s` | %s | %s |\n", s.Command, Describe(s), strings.Join(names, " "))
	}

	_, err := io.WriteString(w, sb.String())

	return err
}
