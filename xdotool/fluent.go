// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package xdotool

// One method per sub-command. Each queues the command and returns the batch.

// Key sends a keystroke or key sequence, such as "ctrl+l".
func (b *Batch) Key(args ...Arg) *Batch {
	return b.Add(CmdKey, args...)
}

// KeyDown presses a key without releasing it.
func (b *Batch) KeyDown(args ...Arg) *Batch {
	return b.Add(CmdKeyDown, args...)
}

// KeyUp releases a key.
func (b *Batch) KeyUp(args ...Arg) *Batch {
	return b.Add(CmdKeyUp, args...)
}

// Type types the positional strings.
func (b *Batch) Type(args ...Arg) *Batch {
	return b.Add(CmdType, args...)
}

// MouseMove moves the pointer to x y, or to the centre of a window with `--window`.
func (b *Batch) MouseMove(args ...Arg) *Batch {
	return b.Add(CmdMouseMove, args...)
}

// MouseMoveRelative moves the pointer by x y from its current position.
func (b *Batch) MouseMoveRelative(args ...Arg) *Batch {
	return b.Add(CmdMouseMoveRelative, args...)
}

// Click clicks a mouse button, 1 is left.
func (b *Batch) Click(args ...Arg) *Batch {
	return b.Add(CmdClick, args...)
}

// MouseDown presses a mouse button without releasing it.
func (b *Batch) MouseDown(args ...Arg) *Batch {
	return b.Add(CmdMouseDown, args...)
}

// MouseUp releases a mouse button.
func (b *Batch) MouseUp(args ...Arg) *Batch {
	return b.Add(CmdMouseUp, args...)
}

// GetMouseLocation outputs a MouseLocation.
func (b *Batch) GetMouseLocation(args ...Arg) *Batch {
	return b.Add(CmdGetMouseLocation, args...)
}

// BehaveScreenEdge runs a command chain when the pointer hits a screen edge or corner.
func (b *Batch) BehaveScreenEdge(args ...Arg) *Batch {
	return b.Add(CmdBehaveScreenEdge, args...)
}

// Search outputs the matching window ids as []int. It only reads output when it
// is the last command of the batch; otherwise the matches form the window stack
// for the commands that follow.
func (b *Batch) Search(args ...Arg) *Batch {
	return b.Add(CmdSearch, args...)
}

// SelectWindow waits for the user to click a window and outputs its id when last.
func (b *Batch) SelectWindow(args ...Arg) *Batch {
	return b.Add(CmdSelectWindow, args...)
}

// Behave runs a command chain when a window event occurs.
func (b *Batch) Behave(args ...Arg) *Batch {
	return b.Add(CmdBehave, args...)
}

// GetWindowPID outputs the pid of a window as an int, or []int with AllWindows.
func (b *Batch) GetWindowPID(args ...Arg) *Batch {
	return b.Add(CmdGetWindowPID, args...)
}

// GetWindowName outputs the name of a window as a string, or []string with AllWindows.
func (b *Batch) GetWindowName(args ...Arg) *Batch {
	return b.Add(CmdGetWindowName, args...)
}

// GetWindowClassName outputs the class name of a window as a string, or []string with AllWindows.
func (b *Batch) GetWindowClassName(args ...Arg) *Batch {
	return b.Add(CmdGetWindowClassName, args...)
}

// GetWindowGeometry outputs a Geometry, or []Geometry with AllWindows.
func (b *Batch) GetWindowGeometry(args ...Arg) *Batch {
	return b.Add(CmdGetWindowGeometry, args...)
}

// GetWindowFocus outputs the id of the focused window when last.
func (b *Batch) GetWindowFocus(args ...Arg) *Batch {
	return b.Add(CmdGetWindowFocus, args...)
}

// WindowSize resizes a window.
func (b *Batch) WindowSize(args ...Arg) *Batch {
	return b.Add(CmdWindowSize, args...)
}

// WindowMove moves a window to x y.
func (b *Batch) WindowMove(args ...Arg) *Batch {
	return b.Add(CmdWindowMove, args...)
}

// WindowFocus gives a window input focus.
func (b *Batch) WindowFocus(args ...Arg) *Batch {
	return b.Add(CmdWindowFocus, args...)
}

// WindowMap maps a window, making it visible.
func (b *Batch) WindowMap(args ...Arg) *Batch {
	return b.Add(CmdWindowMap, args...)
}

// WindowMinimize minimizes a window.
func (b *Batch) WindowMinimize(args ...Arg) *Batch {
	return b.Add(CmdWindowMinimize, args...)
}

// WindowRaise raises a window to the top of the stack.
func (b *Batch) WindowRaise(args ...Arg) *Batch {
	return b.Add(CmdWindowRaise, args...)
}

// WindowReparent moves a window under a new parent.
func (b *Batch) WindowReparent(args ...Arg) *Batch {
	return b.Add(CmdWindowReparent, args...)
}

// WindowClose destroys a window.
func (b *Batch) WindowClose(args ...Arg) *Batch {
	return b.Add(CmdWindowClose, args...)
}

// WindowKill kills the client owning a window.
func (b *Batch) WindowKill(args ...Arg) *Batch {
	return b.Add(CmdWindowKill, args...)
}

// WindowUnmap unmaps a window, hiding it.
func (b *Batch) WindowUnmap(args ...Arg) *Batch {
	return b.Add(CmdWindowUnmap, args...)
}

// SetWindow changes properties of a window, such as its name or class.
func (b *Batch) SetWindow(args ...Arg) *Batch {
	return b.Add(CmdSetWindow, args...)
}

// WindowActivate switches to the window's desktop and activates it.
func (b *Batch) WindowActivate(args ...Arg) *Batch {
	return b.Add(CmdWindowActivate, args...)
}

// GetActiveWindow outputs the id of the active window when last.
func (b *Batch) GetActiveWindow(args ...Arg) *Batch {
	return b.Add(CmdGetActiveWindow, args...)
}

// SetNumDesktops changes the number of desktops.
func (b *Batch) SetNumDesktops(args ...Arg) *Batch {
	return b.Add(CmdSetNumDesktops, args...)
}

// GetNumDesktops outputs the number of desktops as an int.
func (b *Batch) GetNumDesktops(args ...Arg) *Batch {
	return b.Add(CmdGetNumDesktops, args...)
}

// GetDesktopViewport outputs a Viewport.
func (b *Batch) GetDesktopViewport(args ...Arg) *Batch {
	return b.Add(CmdGetDesktopViewport, args...)
}

// SetDesktopViewport moves the viewport to x y.
func (b *Batch) SetDesktopViewport(args ...Arg) *Batch {
	return b.Add(CmdSetDesktopViewport, args...)
}

// SetDesktop switches to a desktop.
func (b *Batch) SetDesktop(args ...Arg) *Batch {
	return b.Add(CmdSetDesktop, args...)
}

// GetDesktop outputs the current desktop as an int.
func (b *Batch) GetDesktop(args ...Arg) *Batch {
	return b.Add(CmdGetDesktop, args...)
}

// SetDesktopForWindow moves a window to a desktop.
func (b *Batch) SetDesktopForWindow(args ...Arg) *Batch {
	return b.Add(CmdSetDesktopForWindow, args...)
}

// GetDesktopForWindow outputs the desktop of a window as an int.
func (b *Batch) GetDesktopForWindow(args ...Arg) *Batch {
	return b.Add(CmdGetDesktopForWindow, args...)
}

// GetDisplayGeometry outputs a DisplayGeometry.
func (b *Batch) GetDisplayGeometry(args ...Arg) *Batch {
	return b.Add(CmdGetDisplayGeometry, args...)
}

// Exec runs a command from within the chain.
func (b *Batch) Exec(args ...Arg) *Batch {
	return b.Add(CmdExec, args...)
}

// Sleep pauses the chain for a number of seconds.
func (b *Batch) Sleep(args ...Arg) *Batch {
	return b.Add(CmdSleep, args...)
}
