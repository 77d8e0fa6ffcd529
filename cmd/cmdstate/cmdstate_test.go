// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdstate

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/matt-FFFFFF/xdt/internal/batchfile"
	"github.com/matt-FFFFFF/xdt/internal/config"
	"github.com/matt-FFFFFF/xdt/internal/report"
	"github.com/matt-FFFFFF/xdt/xdotool"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type fakeRunner struct {
	proc      xdotool.Process
	calls     []xdotool.Invocation
	deadlines []bool
}

func (f *fakeRunner) Run(ctx context.Context, inv xdotool.Invocation) *xdotool.Process {
	_, ok := ctx.Deadline()
	f.calls = append(f.calls, inv)
	f.deadlines = append(f.deadlines, ok)
	p := f.proc

	return &p
}

// resolve runs a probe sub-command and returns the state it saw.
func resolve(t *testing.T, args ...string) (*State, error) {
	t.Helper()

	var got *State

	probe := &cli.Command{
		Name:   "probe",
		Before: Before,
		Action: func(ctx context.Context, _ *cli.Command) error {
			s, err := FromContext(ctx)
			got = s

			return err
		},
	}

	root := &cli.Command{
		Name:      "xdt",
		Flags:     NewFlags(),
		Commands:  []*cli.Command{probe},
		Writer:    io.Discard,
		ErrWriter: io.Discard,
	}

	err := root.Run(context.Background(), append([]string{"xdt"}, args...))

	return got, err
}

func newState(format report.Format) *State {
	return &State{
		Config: &config.Config{Binary: "xdotool", Timeout: time.Second, MaxOutput: 1024, LogLevel: "WARN", LogFormat: "pretty"},
		Format: format,
	}
}

func stubRunner(t *testing.T, r *fakeRunner) {
	t.Helper()

	stubs := gostub.Stub(&NewRunner, func(*config.Config) xdotool.Runner {
		return r
	})
	t.Cleanup(stubs.Reset)
}

func chain(t *testing.T, tokens ...string) *batchfile.Definition {
	t.Helper()

	def, err := batchfile.FromArgs(tokens)
	require.NoError(t, err)

	return def
}

func TestBefore_Defaults(t *testing.T) {
	s, err := resolve(t, "probe")
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, report.FormatText, s.Format)
	assert.False(t, s.DryRun)
	assert.Empty(t, s.Out)
}

func TestBefore_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("XDT_DISPLAY", ":1")
	t.Setenv("XDT_BINARY", "/usr/bin/xdotool")
	t.Setenv("XDT_TIMEOUT", "5s")

	s, err := resolve(t, "--display", ":2", "--timeout", "1m", "probe", "-o", "yaml", "--dry-run", "--out", "res.yaml")
	require.NoError(t, err)

	assert.Equal(t, ":2", s.Config.Display)
	assert.Equal(t, "/usr/bin/xdotool", s.Config.Binary)
	assert.Equal(t, time.Minute, s.Config.Timeout)
	assert.Equal(t, report.FormatYAML, s.Format)
	assert.True(t, s.DryRun)
	assert.Equal(t, "res.yaml", s.Out)
}

func TestBefore_Invalid(t *testing.T) {
	_, err := resolve(t, "probe", "--format", "xml")
	require.ErrorIs(t, err, report.ErrUnknownFormat)

	_, err = resolve(t, "probe", "--log-format", "xml")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = resolve(t, "probe", "--binary", "")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestFromContext_Missing(t *testing.T) {
	_, err := FromContext(context.Background())
	require.ErrorIs(t, err, ErrNoState)
}

func TestState_WithTimeout(t *testing.T) {
	s := newState(report.FormatText)

	ctx, cancel := s.WithTimeout(context.Background())
	defer cancel()

	_, ok := ctx.Deadline()
	assert.True(t, ok)

	s.Config.Timeout = 0
	ctx2, cancel2 := s.WithTimeout(context.Background())
	defer cancel2()

	_, ok = ctx2.Deadline()
	assert.False(t, ok)
}

func TestExecute_Success(t *testing.T) {
	r := &fakeRunner{proc: xdotool.Process{StdOut: []byte("1\n")}}
	stubRunner(t, r)

	s := newState(report.FormatText)
	s.Config.Display = ":7"

	var buf bytes.Buffer

	require.NoError(t, s.Execute(context.Background(), &buf, chain(t, "get_desktop")))

	require.Len(t, r.calls, 1)
	assert.Equal(t, []string{"get_desktop"}, r.calls[0].Args)
	assert.Equal(t, ":7", r.calls[0].Env["DISPLAY"])
	assert.True(t, r.deadlines[0])

	assert.Equal(t, "✓ arguments\n  [0] get_desktop: 1\n", buf.String())
}

func TestExecute_Failure(t *testing.T) {
	r := &fakeRunner{proc: xdotool.Process{ExitCode: 1, StdErr: []byte("Can't open display")}}
	stubRunner(t, r)

	var buf bytes.Buffer

	err := newState(report.FormatText).Execute(context.Background(), &buf, chain(t, "get_desktop"))
	require.ErrorIs(t, err, ErrBatchFailed)
	assert.Contains(t, buf.String(), "✗ arguments (exit code: 1)")
	assert.Contains(t, buf.String(), "    Can't open display\n")
}

func TestExecute_DryRun(t *testing.T) {
	r := &fakeRunner{}
	stubRunner(t, r)

	s := newState(report.FormatText)
	s.DryRun = true

	var buf bytes.Buffer

	require.NoError(t, s.Execute(context.Background(), &buf, chain(t, "key", "ctrl+l")))
	assert.Empty(t, r.calls)
	assert.Equal(t, "~ arguments\n  args: xdotool key ctrl+l\n", buf.String())
}

func TestExecute_SkipsWhenCancelled(t *testing.T) {
	r := &fakeRunner{}
	stubRunner(t, r)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, newState(report.FormatText).Execute(ctx, io.Discard, chain(t, "get_desktop")))
	assert.Empty(t, r.calls)
}

func TestExecute_WritesOutFile(t *testing.T) {
	r := &fakeRunner{proc: xdotool.Process{StdOut: []byte("3 4\n")}}
	stubRunner(t, r)

	fs := afero.NewMemMapFs()
	stubs := gostub.Stub(&report.FsFactory, func() afero.Fs {
		return fs
	})
	t.Cleanup(stubs.Reset)

	s := newState(report.FormatJSON)
	s.Out = "/viewport.json"

	require.NoError(t, s.Execute(context.Background(), io.Discard, chain(t, "get_desktop_viewport")))

	b, err := afero.ReadFile(fs, "/viewport.json")
	require.NoError(t, err)
	assert.Contains(t, string(b), `"name": "arguments"`)
	assert.Contains(t, string(b), `"x": 3`)
}
