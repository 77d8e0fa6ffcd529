// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tui provides the terminal user interface of the watch command. It
// re-runs a batch on an interval and shows the status, exit code and parsed
// outputs of the most recent run, along with a spinner while a run is in
// flight.
//
// Keys: 'q' quits, 'p' or space pauses and resumes, 'r' runs immediately.
package tui
