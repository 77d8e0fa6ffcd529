// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

type loggerKey struct{}

// LevelVar holds the level shared by DefaultLogger and JSONLogger. It defaults to WARN.
var LevelVar = func() *slog.LevelVar {
	v := &slog.LevelVar{}
	v.Set(slog.LevelWarn)

	return v
}()

// DefaultLogger is the console logger used when the context carries none.
var DefaultLogger = slog.New(NewConsoleHandler(os.Stderr, &slog.HandlerOptions{Level: LevelVar}, WithAutoColour()))

// JSONLogger writes one JSON object per record to stderr.
var JSONLogger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: LevelVar}))

// New returns a copy of ctx carrying logger, or DefaultLogger when logger is nil.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger carried by ctx, or DefaultLogger.
func Logger(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return DefaultLogger
	}

	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// Debug logs at debug level with the context logger.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Debug(msg, args...)
}

// Info logs at info level with the context logger.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Info(msg, args...)
}

// Warn logs at warn level with the context logger.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Warn(msg, args...)
}

// Error logs at error level with the context logger.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Error(msg, args...)
}

// ParseLevel maps DEBUG, INFO, WARN and ERROR, in any case, to a level.
// Anything else maps to WARN.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// ForFormat returns JSONLogger for "json" and DefaultLogger otherwise.
func ForFormat(format string) *slog.Logger {
	if strings.EqualFold(format, "json") {
		return JSONLogger
	}

	return DefaultLogger
}
