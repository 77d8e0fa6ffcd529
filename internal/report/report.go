// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package report renders batch results as text, JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/TylerBrock/colorjson"
	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/xdt/xdotool"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

// Format is an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrUnknownFormat is returned for formats other than text, json and yaml.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrWrite is returned when the report cannot be written.
	ErrWrite = errors.New("failed to write report")
)

// FsFactory returns the filesystem report files are written to.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// ParseFormat returns the format named s, case insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Entry is the outcome of one batch.
type Entry struct {
	Name    string           `json:"name,omitempty" yaml:"name,omitempty"`
	Args    []string         `json:"args" yaml:"args"`
	Status  int              `json:"status" yaml:"status"`
	Error   string           `json:"error,omitempty" yaml:"error,omitempty"`
	StdErr  string           `json:"stderr,omitempty" yaml:"stderr,omitempty"`
	Outputs []xdotool.Output `json:"outputs" yaml:"outputs"`
	DryRun  bool             `json:"dryRun,omitempty" yaml:"dryRun,omitempty"`
}

// Failed reports whether the batch did not run cleanly.
func (e Entry) Failed() bool {
	return e.Status != 0 || e.Error != ""
}

// FromResult builds an entry from a run. err is the error returned by Run.
func FromResult(name string, res *xdotool.Result, err error) Entry {
	e := Entry{Name: name, Outputs: []xdotool.Output{}}

	if res != nil {
		e.Args = res.Args
		e.Status = res.Status
		e.StdErr = strings.TrimSpace(res.StdErr)

		if len(res.Outputs) > 0 {
			e.Outputs = res.Outputs
		}
	}

	if joined := errors.Join(resultErr(res), err); joined != nil {
		e.Error = joined.Error()
	}

	return e
}

// DryRun builds an entry for a batch that was not run.
func DryRun(name string, b *xdotool.Batch) Entry {
	return Entry{
		Name:    name,
		Args:    append([]string{b.Binary()}, b.Args()...),
		Outputs: []xdotool.Output{},
		DryRun:  true,
	}
}

func resultErr(res *xdotool.Result) error {
	if res == nil {
		return nil
	}

	return res.Err
}

// Report is an ordered list of entries.
type Report []Entry

// HasFailure reports whether any entry failed.
func (r Report) HasFailure() bool {
	for _, e := range r {
		if e.Failed() {
			return true
		}
	}

	return false
}

// Option configures rendering.
type Option func(*options)

type options struct {
	colour bool
}

// WithColour enables colour when true.
func WithColour(on bool) Option {
	return func(o *options) {
		o.colour = on
	}
}

// IsTerminal reports whether w is a terminal and NO_COLOR is unset.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd())) && os.Getenv("NO_COLOR") == ""
}

// Write renders the report to w.
func (r Report) Write(w io.Writer, format Format, opts ...Option) error {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var (
		b   []byte
		err error
	)

	switch format {
	case FormatText, "":
		return r.writeText(w, o)
	case FormatJSON:
		b, err = r.json(o.colour)
	case FormatYAML:
		b, err = yaml.MarshalWithOptions(r, yaml.IndentSequence(true))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err != nil {
		return errors.Join(ErrWrite, err)
	}

	if _, err := w.Write(b); err != nil {
		return errors.Join(ErrWrite, err)
	}

	return nil
}

func (r Report) json(colour bool) ([]byte, error) {
	if !colour {
		b, err := json.MarshalIndent(r, "", "  ")
		return append(b, '\n'), err
	}

	// colorjson renders generic values only.
	plain, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}

	var generic []any
	if err := json.Unmarshal(plain, &generic); err != nil {
		return nil, err
	}

	f := colorjson.NewFormatter()
	f.Indent = 2

	b, err := f.Marshal(generic)

	return append(b, '\n'), err
}

// WriteFile renders the report into a file, replacing it.
func (r Report) WriteFile(name string, format Format) (err error) {
	f, err := FsFactory().Create(name)
	if err != nil {
		return errors.Join(ErrWrite, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, ErrWrite, cerr)
		}
	}()

	return r.Write(f, format)
}

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dryRunStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (o *options) paint(s lipgloss.Style, text string) string {
	if !o.colour {
		return text
	}

	return s.Render(text)
}

func (r Report) writeText(w io.Writer, o *options) error {
	var sb strings.Builder

	for _, e := range r {
		status := o.paint(okStyle, "✓")

		switch {
		case e.DryRun:
			status = o.paint(dryRunStyle, "~")
		case e.Failed():
			status = o.paint(failStyle, "✗")
		}

		name := e.Name
		if name == "" {
			name = "[unnamed]"
		}

		fmt.Fprintf(&sb, "%s %s", status, o.paint(labelStyle, name))

		if e.Status != 0 {
			fmt.Fprintf(&sb, " (exit code: %d)", e.Status)
		}

		sb.WriteString("\n")

		if e.DryRun || e.Failed() {
			fmt.Fprintf(&sb, "  %s %s\n", o.paint(dimStyle, "args:"), strings.Join(e.Args, " "))
		}

		if e.Error != "" {
			fmt.Fprintf(&sb, "  %s %s\n", o.paint(failStyle, "➜ Error:"), e.Error)
		}

		if e.StdErr != "" && e.Failed() {
			fmt.Fprintf(&sb, "  %s\n", o.paint(dimStyle, "stderr:"))

			for line := range strings.SplitSeq(e.StdErr, "\n") {
				fmt.Fprintf(&sb, "    %s\n", line)
			}
		}

		for _, out := range e.Outputs {
			fmt.Fprintf(&sb, "  [%d] %s: %s\n", out.Index, out.Command, value(out.Value))
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Join(ErrWrite, err)
	}

	return nil
}

// value renders an output compactly, records as JSON objects.
func value(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return fmt.Sprint(x)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}

	return string(b)
}
