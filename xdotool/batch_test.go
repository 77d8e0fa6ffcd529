// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package xdotool

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner returns a canned process and records the invocation it was given.
type fakeRunner struct {
	proc  Process
	calls []Invocation
}

func (f *fakeRunner) Run(_ context.Context, inv Invocation) *Process {
	f.calls = append(f.calls, inv)
	p := f.proc

	return &p
}

func stdout(s string) *fakeRunner {
	return &fakeRunner{proc: Process{StdOut: []byte(s)}}
}

func TestBatch_RunOutputsInOrder(t *testing.T) {
	r := stdout("1\n4\n3 4\n")
	b := New(WithRunner(r))

	res, err := b.GetDesktop().
		GetNumDesktops().
		Key(Pos("ctrl+l")).
		GetDesktopViewport().
		Run(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Outputs, 3)
	assert.Equal(t, []any{1, 4, Viewport{X: 3, Y: 4}}, res.Values())
	assert.Equal(t, []int{0, 1, 3}, []int{res.Outputs[0].Index, res.Outputs[1].Index, res.Outputs[2].Index})
	assert.Equal(t, CmdGetDesktopViewport, res.Outputs[2].Command)

	require.Len(t, r.calls, 1)
	assert.Equal(t, DefaultBinary, r.calls[0].Path)
	assert.Equal(t,
		[]string{"get_desktop", "get_num_desktops", "key", "ctrl+l", "get_desktop_viewport"},
		r.calls[0].Args)
	assert.Equal(t, r.calls[0].Args, res.Args)
}

func TestBatch_ModifierRule(t *testing.T) {
	t.Run("modifier before another command is skipped", func(t *testing.T) {
		b := New(WithRunner(stdout("Terminal\n")))

		res, err := b.Search(Switch("class"), Pos("xterm")).
			GetWindowName().
			Run(context.Background())
		require.NoError(t, err)
		require.Len(t, res.Outputs, 1)
		assert.Equal(t, "Terminal", res.Outputs[0].Value)
		assert.Equal(t, 1, res.Outputs[0].Index)
	})

	t.Run("modifier as last command is parsed", func(t *testing.T) {
		b := New(WithRunner(stdout("10\n11\n12\n")))

		res, err := b.Search(Pos("xterm")).Run(context.Background())
		require.NoError(t, err)
		require.Len(t, res.Outputs, 1)
		assert.Equal(t, []int{10, 11, 12}, res.Outputs[0].Value)
	})

	t.Run("side effect command after modifier", func(t *testing.T) {
		b := New(WithRunner(stdout("")))

		res, err := b.GetActiveWindow().WindowMinimize().Run(context.Background())
		require.NoError(t, err)
		assert.Empty(t, res.Outputs)
	})

	t.Run("same modifier last and earlier", func(t *testing.T) {
		b := New(WithRunner(stdout("7\n")))

		res, err := b.GetActiveWindow().WindowRaise().GetActiveWindow().Run(context.Background())
		require.NoError(t, err)
		require.Len(t, res.Outputs, 1)
		assert.Equal(t, 7, res.Outputs[0].Value)
		assert.Equal(t, 2, res.Outputs[0].Index)
	})
}

func TestBatch_NonZeroExit(t *testing.T) {
	r := &fakeRunner{proc: Process{ExitCode: 1, StdOut: []byte("5\n"), StdErr: []byte("XGetWindowProperty failed\n")}}
	b := New(WithRunner(r))

	res, err := b.GetDesktop().Run(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Failed())
	assert.Equal(t, 1, res.Status)
	assert.Empty(t, res.Outputs)
	assert.Equal(t, "5\n", res.StdOut)
	assert.Contains(t, res.StdErr, "XGetWindowProperty")
	assert.Zero(t, b.Len())
	assert.Same(t, res, b.Last())
}

func TestBatch_StartFailure(t *testing.T) {
	startErr := errors.Join(ErrCouldNotStartProcess, errors.New("exec: not found"))
	b := New(WithRunner(&fakeRunner{proc: Process{ExitCode: -1, Err: startErr}}))

	res, err := b.GetDesktop().Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, -1, res.Status)
	require.ErrorIs(t, res.Err, ErrCouldNotStartProcess)
	assert.Empty(t, res.Outputs)
	assert.Zero(t, b.Len())
}

func TestBatch_ParseError(t *testing.T) {
	b := New(WithRunner(stdout("2\n")))

	res, err := b.GetDesktop().GetNumDesktops().Run(context.Background())
	require.Error(t, err)

	var pe *ParseError

	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Index)
	assert.Equal(t, CmdGetNumDesktops, pe.Command)
	require.ErrorIs(t, err, ErrParse)
	require.ErrorIs(t, err, ErrOutputExhausted)

	require.NotNil(t, res)
	assert.Equal(t, []any{2}, res.Values(), "outputs before the failure are kept")
	assert.Zero(t, b.Len(), "batch is cleared after a parse error")
}

func TestBatch_ResetAfterRun(t *testing.T) {
	r := stdout("3\n")
	b := New(WithRunner(r))

	_, err := b.Search(Pos("x")).GetDesktop().Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, b.Len())
	assert.Empty(t, b.Args())
	assert.Empty(t, b.modifiers)

	// Queued commands after a run start from an empty batch.
	res, err := b.GetDesktop().Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"get_desktop"}, res.Args)
	assert.Equal(t, []any{3}, res.Values())
}

func TestBatch_Options(t *testing.T) {
	r := stdout("")
	b := New(
		WithRunner(r),
		WithBinary("/usr/local/bin/xdotool"),
		WithEnv(map[string]string{"XAUTHORITY": "/tmp/xauth"}),
		WithDisplay(":1"),
		WithBinary(""),
	)

	assert.Equal(t, "/usr/local/bin/xdotool", b.Binary())

	_, err := b.Sleep(Pos(0.1)).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, r.calls, 1)
	assert.Equal(t, map[string]string{"XAUTHORITY": "/tmp/xauth", "DISPLAY": ":1"}, r.calls[0].Env)
	assert.Equal(t, []string{"sleep", "0.1"}, r.calls[0].Args)
}

func TestBatch_InstructionsAreCopied(t *testing.T) {
	b := New().Key(Pos("a")).Type(Pos("hello world"))

	ins := b.Instructions()
	require.Len(t, ins, 2)
	ins[0] = NewInstruction(CmdSleep)

	assert.Equal(t, CmdKey, b.Instructions()[0].Command())
	assert.Equal(t, []string{"key", "a", "type", "hello world"}, b.Args())
}

func TestValue(t *testing.T) {
	res := &Result{Outputs: []Output{{Value: 4}, {Value: Viewport{X: 1}}}}

	n, err := Value[int](res, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	vp, err := Value[Viewport](res, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, vp.X)

	_, err = Value[string](res, 0)
	require.ErrorIs(t, err, ErrOutputType)

	_, err = Value[int](res, 2)
	require.ErrorIs(t, err, ErrNoOutput)

	_, err = Value[int](nil, 0)
	require.ErrorIs(t, err, ErrNoOutput)
}
