// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package batchfile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// An HCL definition has one step block per sub-command:
//
//	name    = "focus firefox"
//	display = env.DISPLAY
//
//	step "search" {
//	  flags = { onlyvisible = true, limit = 1 }
//	  args  = ["firefox"]
//	}
//
//	step "windowactivate" {
//	  flags = { sync = true }
//	}
//
// HCL objects are unordered, so flags are rendered sorted by name.
type hclDefinition struct {
	Name    string    `hcl:"name,optional"`
	Display string    `hcl:"display,optional"`
	Steps   []hclStep `hcl:"step,block"`
}

type hclStep struct {
	Command string         `hcl:"command,label"`
	Flags   hcl.Expression `hcl:"flags,optional"`
	Args    hcl.Expression `hcl:"args,optional"`
}

// evalContext exposes the environment as `env` and a few string functions.
func evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = cty.StringVal(v)
		}
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
		Functions: map[string]function.Function{
			"format": stdlib.FormatFunc,
			"join":   stdlib.JoinFunc,
			"lower":  stdlib.LowerFunc,
			"upper":  stdlib.UpperFunc,
		},
	}
}

// DecodeHCL decodes an HCL definition. The filename is used in diagnostics.
func DecodeHCL(filename string, data []byte) (*Definition, error) {
	file, diags := hclsyntax.ParseConfig(data, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, errors.Join(ErrDecode, diags)
	}

	ctx := evalContext()

	var raw hclDefinition
	if diags := gohcl.DecodeBody(file.Body, ctx, &raw); diags.HasErrors() {
		return nil, errors.Join(ErrDecode, diags)
	}

	if len(raw.Steps) == 0 {
		return nil, errors.Join(ErrDecode, ErrNoSteps)
	}

	def := &Definition{
		Name:    raw.Name,
		Display: raw.Display,
		Steps:   make([]Step, 0, len(raw.Steps)),
	}

	var result error

	for i, rs := range raw.Steps {
		s, err := rs.step(ctx)
		if err != nil {
			result = multierror.Append(result, &StepError{Index: i, Command: rs.Command, Err: err})
			continue
		}

		def.Steps = append(def.Steps, s)
	}

	if result != nil {
		return nil, errors.Join(ErrDecode, result)
	}

	return def, nil
}

func (rs hclStep) step(ctx *hcl.EvalContext) (Step, error) {
	cmd, err := command(rs.Command)
	if err != nil {
		return Step{}, err
	}

	s := Step{Command: cmd}

	flags, diags := rs.Flags.Value(ctx)
	if diags.HasErrors() {
		return Step{}, diags
	}

	if !flags.IsNull() {
		if !flags.Type().IsObjectType() && !flags.Type().IsMapType() {
			return Step{}, fmt.Errorf("%w: flags must be an object", ErrFlagValue)
		}

		for it := flags.ElementIterator(); it.Next(); {
			k, v := it.Element()

			val, err := goValue(v)
			if err != nil {
				return Step{}, fmt.Errorf("%w: --%s", ErrFlagValue, k.AsString())
			}

			f, ok, err := flag(k.AsString(), val)
			if err != nil {
				return Step{}, err
			}

			if ok {
				s.Flags = append(s.Flags, f)
			}
		}
	}

	args, diags := rs.Args.Value(ctx)
	if diags.HasErrors() {
		return Step{}, diags
	}

	if args.IsNull() {
		return s, nil
	}

	if !args.CanIterateElements() {
		args = cty.TupleVal([]cty.Value{args})
	}

	for it := args.ElementIterator(); it.Next(); {
		_, v := it.Element()

		val, err := goValue(v)
		if err != nil {
			return Step{}, err
		}

		a, err := scalar(val)
		if err != nil {
			return Step{}, fmt.Errorf("%w: %s", ErrArgValue, v.GoString())
		}

		s.Args = append(s.Args, a)
	}

	return s, nil
}

// goValue converts a known primitive cty value.
func goValue(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}

	if !v.IsWhollyKnown() {
		return nil, ErrArgValue
	}

	switch v.Type() {
	case cty.Bool:
		return v.True(), nil
	case cty.String:
		return v.AsString(), nil
	case cty.Number:
		return v.AsBigFloat(), nil
	}

	return nil, ErrArgValue
}
