// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package xdotool

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, cmd Command, stdout string, args ...Arg) (any, *Cursor, error) {
	t.Helper()

	ins := NewInstruction(cmd, args...)
	p := commandTable[cmd].Parse.For(ins)
	require.NotNil(t, p, "command %s has no parser", cmd)

	c := NewCursor(stdout)
	v, err := p.Parse(c)

	return v, c, err
}

func TestParser_Scalars(t *testing.T) {
	tests := []struct {
		name   string
		cmd    Command
		args   []Arg
		stdout string
		want   any
		unread int
	}{
		{name: "desktop", cmd: CmdGetDesktop, stdout: "2\n", want: 2},
		{name: "negative", cmd: CmdGetDesktopForWindow, args: []Arg{Window(7)}, stdout: "-1\n", want: -1},
		{name: "one line only", cmd: CmdGetNumDesktops, stdout: "4\n99\n", want: 4, unread: 1},
		{name: "pid", cmd: CmdGetWindowPID, args: []Arg{Window(12)}, stdout: "3141\n", want: 3141},
		{name: "pid all windows", cmd: CmdGetWindowPID, args: []Arg{AllWindows}, stdout: "1\n2\n3\n", want: []int{1, 2, 3}},
		{name: "name", cmd: CmdGetWindowName, stdout: "Terminal - bash\n", want: "Terminal - bash"},
		{name: "names all windows", cmd: CmdGetWindowName, args: []Arg{AllWindows}, stdout: "a\nb c\n", want: []string{"a", "b c"}},
		{name: "class name", cmd: CmdGetWindowClassName, stdout: "Firefox\n", want: "Firefox"},
		{name: "desktop for all windows reads one line", cmd: CmdGetDesktopForWindow, args: []Arg{AllWindows}, stdout: "0\n1\n", want: 0, unread: 1},
		{name: "search", cmd: CmdSearch, args: []Arg{Switch("class"), Pos("xterm")}, stdout: "10\n11\n", want: []int{10, 11}},
		{name: "search no matches", cmd: CmdSearch, args: []Arg{Pos("nothing")}, stdout: "", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, c, err := parse(t, tt.cmd, tt.stdout, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.unread, c.Remaining())
		})
	}
}

func TestParser_ScalarErrors(t *testing.T) {
	_, _, err := parse(t, CmdGetDesktop, "")
	require.ErrorIs(t, err, ErrOutputExhausted)

	_, _, err = parse(t, CmdGetDesktop, "desktop one\n")
	require.ErrorIs(t, err, strconv.ErrSyntax)

	_, _, err = parse(t, CmdGetWindowPID, "1\nx\n", AllWindows)
	require.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestParser_Viewport(t *testing.T) {
	v, _, err := parse(t, CmdGetDesktopViewport, "3 4\n")
	require.NoError(t, err)
	assert.Equal(t, Viewport{X: 3, Y: 4}, v)

	v, _, err = parse(t, CmdGetDesktopViewport, "X=3\nY=4\n", Shell)
	require.NoError(t, err)
	assert.Equal(t, Viewport{X: 3, Y: 4}, v)
}

func TestParser_Geometry(t *testing.T) {
	tests := []struct {
		name   string
		args   []Arg
		stdout string
		want   any
	}{
		{
			name:   "xdotool plain output",
			args:   []Arg{Window(65011713)},
			stdout: "Window 65011713\n  Position: 10,20 (screen: 0)\n  Geometry: 800x600\n",
			want:   Geometry{Window: 65011713, X: 10, Y: 20, Screen: 0, Width: 800, Height: 600},
		},
		{
			name:   "all windows one line per record",
			args:   []Arg{AllWindows},
			stdout: "1 0 0 100 200 0\n2 10 10 50 50 0\n",
			want: []Geometry{
				{Window: 1, X: 0, Y: 0, Screen: 100, Width: 200, Height: 0},
				{Window: 2, X: 10, Y: 10, Screen: 50, Width: 50, Height: 0},
			},
		},
		{
			name:   "shell order",
			args:   []Arg{Shell, Window(5)},
			stdout: "WINDOW=5\nX=1\nY=2\nWIDTH=300\nHEIGHT=400\nSCREEN=1\n",
			want:   Geometry{Window: 5, X: 1, Y: 2, Width: 300, Height: 400, Screen: 1},
		},
		{
			name: "shell all windows",
			args: []Arg{Shell, AllWindows},
			stdout: "WINDOW=5\nX=1\nY=2\nWIDTH=300\nHEIGHT=400\nSCREEN=0\n" +
				"WINDOW=6\nX=-3\nY=4\nWIDTH=30\nHEIGHT=40\nSCREEN=0\n",
			want: []Geometry{
				{Window: 5, X: 1, Y: 2, Width: 300, Height: 400},
				{Window: 6, X: -3, Y: 4, Width: 30, Height: 40},
			},
		},
		{
			name:   "all windows without output",
			args:   []Arg{AllWindows},
			stdout: "",
			want:   []Geometry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, c, err := parse(t, CmdGetWindowGeometry, tt.stdout, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
			assert.True(t, c.Done())
		})
	}
}

func TestParser_GeometryPartialRecord(t *testing.T) {
	_, _, err := parse(t, CmdGetWindowGeometry, "WINDOW=5\nX=1\n", Shell)
	require.ErrorIs(t, err, ErrOutputExhausted)

	_, _, err = parse(t, CmdGetWindowGeometry, "1 0 0 100 200 0\n2 10\n", AllWindows)
	require.ErrorIs(t, err, ErrOutputExhausted)
}

func TestParser_MouseLocation(t *testing.T) {
	v, _, err := parse(t, CmdGetMouseLocation, "x:100 y:200 screen:0 window:5\n")
	require.NoError(t, err)
	assert.Equal(t, MouseLocation{X: 100, Y: 200, Screen: 0, Window: 5}, v)

	v, c, err := parse(t, CmdGetMouseLocation, "X=7\nY=8\nSCREEN=1\nWINDOW=9\n42\n", Shell)
	require.NoError(t, err)
	assert.Equal(t, MouseLocation{X: 7, Y: 8, Screen: 1, Window: 9}, v)
	assert.Equal(t, 1, c.Remaining(), "shell mode reads exactly four lines")
}

func TestParser_DisplayGeometry(t *testing.T) {
	v, _, err := parse(t, CmdGetDisplayGeometry, "1920 1080\n")
	require.NoError(t, err)
	assert.Equal(t, DisplayGeometry{Width: 1920, Height: 1080}, v)
}

func TestParserKind_None(t *testing.T) {
	assert.Nil(t, ParseNone.For(NewInstruction(CmdKey, Pos("a"))))
	assert.Nil(t, commandTable[CmdWindowRaise].Parse.For(NewInstruction(CmdWindowRaise)))
}

func TestScanInts(t *testing.T) {
	got, err := scanInts("Position: 10,-20 (screen: 0)", "Geometry: 800x600")
	require.NoError(t, err)
	assert.Equal(t, []int{10, -20, 0, 800, 600}, got)

	got, err = scanInts("no digits")
	require.NoError(t, err)
	assert.Empty(t, got)
}
