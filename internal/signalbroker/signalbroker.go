// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker relays operating system termination signals.
// By default it listens for os.Interrupt, SIGINT, SIGTERM and SIGQUIT.
//
// Watch implements the two-stage shutdown used by the CLI: the first signal of
// a kind is left to the running xdotool child, which receives it through the
// process runner, and a second signal of the same kind cancels the context.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/xdt/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

// New returns a channel notified of the given signals, or of the termination signals if none are given.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "relaying signals", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Stop stops relaying signals to ch. The channel is not closed.
func Stop(ch chan os.Signal) {
	signal.Stop(ch)
}

// Watch reads sigCh until it is closed and cancels the context on the second
// signal of any one kind.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for sig := range sigCh {
		if _, ok := seen[sig]; ok {
			ctxlog.Info(ctx, "second signal received, cancelling", "signal", sig.String())
			signal.Stop(sigCh)
			close(sigCh)
			cancel()

			return
		}

		ctxlog.Info(ctx, "signal received, press again to force exit", "signal", sig.String())

		seen[sig] = struct{}{}
	}
}
