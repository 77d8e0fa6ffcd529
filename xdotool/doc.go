// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package xdotool builds chains of xdotool sub-commands, runs them as a single
// process invocation and splits the line oriented output back into one typed
// value per command.
//
// A Batch is filled through its fluent methods:
//
//	res, err := xdotool.New().
//		Search(xdotool.Switch("class"), xdotool.Pos("firefox")).
//		GetWindowGeometry(xdotool.AllWindows).
//		Run(ctx)
//
// Commands whose output length depends on the rest of the chain (search,
// selectwindow, getactivewindow, getwindowfocus) only read output when they
// are the final command of the batch. Used anywhere else they feed the
// window stack of the following command and produce no output of their own,
// so such commands should be placed last or directly before their consumer.
//
// A non-zero exit status is not an error: the batch is reset and the status,
// stderr and process error are available on the returned Result. Parsing
// errors are returned from Run.
package xdotool
