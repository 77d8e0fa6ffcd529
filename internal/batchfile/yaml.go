// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package batchfile

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
)

type yamlDefinition struct {
	Name    string     `yaml:"name"`
	Display string     `yaml:"display"`
	Steps   []yamlStep `yaml:"steps"`
}

type yamlStep struct {
	Command string `yaml:"command"`
	// MapSlice keeps the flags in the order they are written.
	Flags yaml.MapSlice `yaml:"flags"`
	// Args is a list of scalars or a single scalar.
	Args any `yaml:"args"`
}

// DecodeYAML decodes a YAML definition. JSON is accepted as well.
// Every invalid step is reported.
func DecodeYAML(data []byte) (*Definition, error) {
	var raw yamlDefinition
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
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
		s, err := rs.step()
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

func (rs yamlStep) step() (Step, error) {
	cmd, err := command(rs.Command)
	if err != nil {
		return Step{}, err
	}

	s := Step{Command: cmd}

	for _, item := range rs.Flags {
		name := fmt.Sprint(item.Key)

		f, ok, err := flag(name, item.Value)
		if err != nil {
			return Step{}, err
		}

		if ok {
			s.Flags = append(s.Flags, f)
		}
	}

	values, ok := rs.Args.([]any)
	if !ok && rs.Args != nil {
		values = []any{rs.Args}
	}

	for _, v := range values {
		a, err := scalar(v)
		if err != nil {
			return Step{}, fmt.Errorf("%w: %v", ErrArgValue, v)
		}

		s.Args = append(s.Args, a)
	}

	return s, nil
}
