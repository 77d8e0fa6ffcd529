// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a slog.Logger in a context.Context.
//
// The default logger writes to stderr through ConsoleHandler, which prints a
// styled level and message followed by the record attributes as indented JSON.
// Standard output is left to the command results.
package ctxlog
