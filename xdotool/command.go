// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package xdotool

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownCommand is returned when a sub-command name is not in the command table.
var ErrUnknownCommand = errors.New("unknown xdotool command")

// Command is an xdotool sub-command token.
type Command string

// Keyboard commands.
const (
	CmdKey     Command = "key"
	CmdKeyDown Command = "keydown"
	CmdKeyUp   Command = "keyup"
	CmdType    Command = "type"
)

// Mouse commands.
const (
	CmdMouseMove         Command = "mousemove"
	CmdMouseMoveRelative Command = "mousemove_relative"
	CmdClick             Command = "click"
	CmdMouseDown         Command = "mousedown"
	CmdMouseUp           Command = "mouseup"
	CmdGetMouseLocation  Command = "getmouselocation"
	CmdBehaveScreenEdge  Command = "behave_screen_edge"
)

// Window commands.
const (
	CmdSearch             Command = "search"
	CmdSelectWindow       Command = "selectwindow"
	CmdBehave             Command = "behave"
	CmdGetWindowPID       Command = "getwindowpid"
	CmdGetWindowName      Command = "getwindowname"
	CmdGetWindowClassName Command = "getwindowclassname"
	CmdGetWindowGeometry  Command = "getwindowgeometry"
	CmdGetWindowFocus     Command = "getwindowfocus"
	CmdWindowSize         Command = "windowsize"
	CmdWindowMove         Command = "windowmove"
	CmdWindowFocus        Command = "windowfocus"
	CmdWindowMap          Command = "windowmap"
	CmdWindowMinimize     Command = "windowminimize"
	CmdWindowRaise        Command = "windowraise"
	CmdWindowReparent     Command = "windowreparent"
	CmdWindowClose        Command = "windowclose"
	CmdWindowKill         Command = "windowkill"
	CmdWindowUnmap        Command = "windowunmap"
	CmdSetWindow          Command = "set_window"
)

// Desktop and window commands.
const (
	CmdWindowActivate      Command = "windowactivate"
	CmdGetActiveWindow     Command = "getactivewindow"
	CmdSetNumDesktops      Command = "set_num_desktops"
	CmdGetNumDesktops      Command = "get_num_desktops"
	CmdGetDesktopViewport  Command = "get_desktop_viewport"
	CmdSetDesktopViewport  Command = "set_desktop_viewport"
	CmdSetDesktop          Command = "set_desktop"
	CmdGetDesktop          Command = "get_desktop"
	CmdSetDesktopForWindow Command = "set_desktop_for_window"
	CmdGetDesktopForWindow Command = "get_desktop_for_window"
	CmdGetDisplayGeometry  Command = "getdisplaygeometry"
)

// Miscellaneous commands.
const (
	CmdExec  Command = "exec"
	CmdSleep Command = "sleep"
)

// Group is the section of the xdotool manual a command belongs to.
type Group string

// Command groups.
const (
	GroupKeyboard Group = "keyboard" // Keyboard input
	GroupMouse    Group = "mouse"    // Pointer movement and buttons
	GroupWindow   Group = "window"   // Window search and manipulation
	GroupDesktop  Group = "desktop"  // Desktops, viewports and the active window
	GroupMisc     Group = "misc"     // Process execution and sleeping
)

// FlagSpec describes a flag a command recognises and how it is rendered.
type FlagSpec struct {
	Name   string // Flag name without the leading dashes
	Valued bool   // Whether the flag is followed by a value token
}

// Spec is the static description of a sub-command.
type Spec struct {
	Command Command
	Group   Group
	// Modifier marks commands whose number of output lines depends on the
	// rest of the chain. They only consume output as the last command.
	Modifier bool
	// PerWindow marks commands that print one value per window when given %@.
	PerWindow bool
	// Parse is the kind of output the command produces, empty when it produces none.
	Parse ParserKind
	Flags []FlagSpec
}

// Flag returns the flag spec with the given name.
func (s Spec) Flag(name string) (FlagSpec, bool) {
	i := slices.IndexFunc(s.Flags, func(f FlagSpec) bool { return f.Name == name })
	if i < 0 {
		return FlagSpec{}, false
	}

	return s.Flags[i], true
}

func sw(names ...string) []FlagSpec {
	out := make([]FlagSpec, 0, len(names))
	for _, n := range names {
		out = append(out, FlagSpec{Name: n})
	}

	return out
}

func val(names ...string) []FlagSpec {
	out := make([]FlagSpec, 0, len(names))
	for _, n := range names {
		out = append(out, FlagSpec{Name: n, Valued: true})
	}

	return out
}

var commandTable = map[Command]Spec{
	CmdKey:     {Group: GroupKeyboard, Flags: slices.Concat(val("window", "delay", "repeat", "repeat-delay"), sw("clearmodifiers"))},
	CmdKeyDown: {Group: GroupKeyboard, Flags: slices.Concat(val("window", "delay"), sw("clearmodifiers"))},
	CmdKeyUp:   {Group: GroupKeyboard, Flags: slices.Concat(val("window", "delay"), sw("clearmodifiers"))},
	CmdType:    {Group: GroupKeyboard, Flags: slices.Concat(val("window", "delay", "file", "terminator", "args"), sw("clearmodifiers"))},

	CmdMouseMove:         {Group: GroupMouse, Flags: slices.Concat(val("window", "screen"), sw("polar", "clearmodifiers", "sync"))},
	CmdMouseMoveRelative: {Group: GroupMouse, Flags: sw("polar", "clearmodifiers", "sync")},
	CmdClick:             {Group: GroupMouse, Flags: slices.Concat(val("window", "repeat", "delay"), sw("clearmodifiers"))},
	CmdMouseDown:         {Group: GroupMouse, Flags: slices.Concat(val("window"), sw("clearmodifiers"))},
	CmdMouseUp:           {Group: GroupMouse, Flags: slices.Concat(val("window"), sw("clearmodifiers"))},
	CmdGetMouseLocation:  {Group: GroupMouse, Parse: ParseMouseLocation, Flags: slices.Concat(sw("shell"), val("prefix"))},
	CmdBehaveScreenEdge:  {Group: GroupMouse, Flags: val("delay", "quiesce")},

	CmdSearch: {Group: GroupWindow, Modifier: true, Parse: ParseIntList, Flags: slices.Concat(
		sw("class", "classname", "name", "role", "title", "onlyvisible", "all", "any", "sync"),
		val("maxdepth", "pid", "screen", "desktop", "limit"),
	)},
	CmdSelectWindow:       {Group: GroupWindow, Modifier: true, Parse: ParseInt},
	CmdBehave:             {Group: GroupWindow},
	CmdGetWindowPID:       {Group: GroupWindow, PerWindow: true, Parse: ParseInt},
	CmdGetWindowName:      {Group: GroupWindow, PerWindow: true, Parse: ParseString},
	CmdGetWindowClassName: {Group: GroupWindow, PerWindow: true, Parse: ParseString},
	CmdGetWindowGeometry:  {Group: GroupWindow, PerWindow: true, Parse: ParseGeometry, Flags: slices.Concat(sw("shell"), val("prefix"))},
	CmdGetWindowFocus:     {Group: GroupWindow, Modifier: true, Parse: ParseInt},
	CmdWindowSize:         {Group: GroupWindow, Flags: sw("usehints", "sync")},
	CmdWindowMove:         {Group: GroupWindow, Flags: sw("sync", "relative")},
	CmdWindowFocus:        {Group: GroupWindow, Flags: sw("sync")},
	CmdWindowMap:          {Group: GroupWindow, Flags: sw("sync")},
	CmdWindowMinimize:     {Group: GroupWindow, Flags: sw("sync")},
	CmdWindowRaise:        {Group: GroupWindow},
	CmdWindowReparent:     {Group: GroupWindow},
	CmdWindowClose:        {Group: GroupWindow},
	CmdWindowKill:         {Group: GroupWindow},
	CmdWindowUnmap:        {Group: GroupWindow, Flags: sw("sync")},
	CmdSetWindow: {Group: GroupWindow, Flags: val(
		"name", "icon-name", "role", "classname", "class", "overrideredirect", "urgency",
	)},

	CmdWindowActivate:      {Group: GroupDesktop, Flags: sw("sync")},
	CmdGetActiveWindow:     {Group: GroupDesktop, Modifier: true, Parse: ParseInt},
	CmdSetNumDesktops:      {Group: GroupDesktop},
	CmdGetNumDesktops:      {Group: GroupDesktop, Parse: ParseInt},
	CmdGetDesktopViewport:  {Group: GroupDesktop, Parse: ParseViewport, Flags: sw("shell")},
	CmdSetDesktopViewport:  {Group: GroupDesktop},
	CmdSetDesktop:          {Group: GroupDesktop, Flags: sw("relative")},
	CmdGetDesktop:          {Group: GroupDesktop, Parse: ParseInt},
	CmdSetDesktopForWindow: {Group: GroupDesktop},
	CmdGetDesktopForWindow: {Group: GroupDesktop, Parse: ParseInt},
	CmdGetDisplayGeometry:  {Group: GroupDesktop, Parse: ParseDisplayGeometry, Flags: sw("shell")},

	CmdExec:  {Group: GroupMisc, Flags: slices.Concat(sw("sync"), val("terminator"))},
	CmdSleep: {Group: GroupMisc},
}

func init() {
	for c, s := range commandTable {
		s.Command = c
		commandTable[c] = s
	}
}

// Lookup returns the Spec of the named sub-command.
func Lookup(name string) (Spec, error) {
	s, ok := commandTable[Command(name)]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	return s, nil
}

// Commands returns the Spec of every supported sub-command, sorted by group then name.
func Commands() []Spec {
	groupOrder := []Group{GroupKeyboard, GroupMouse, GroupWindow, GroupDesktop, GroupMisc}
	specs := slices.Collect(maps.Values(commandTable))
	slices.SortFunc(specs, func(a, b Spec) int {
		return cmp.Or(
			cmp.Compare(slices.Index(groupOrder, a.Group), slices.Index(groupOrder, b.Group)),
			cmp.Compare(a.Command, b.Command),
		)
	})

	return specs
}

// IsModifier reports whether the command only reads output when it ends a batch.
func (c Command) IsModifier() bool {
	return commandTable[c].Modifier
}
