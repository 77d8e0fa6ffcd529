// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package xdotool

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/matt-FFFFFF/xdt/internal/ctxlog"
	"github.com/matt-FFFFFF/xdt/internal/linebuf"
	"github.com/matt-FFFFFF/xdt/internal/signalbroker"
)

const (
	// DefaultBinary is the executable run when no other is configured.
	DefaultBinary = "xdotool"
	// DefaultMaxOutput caps each of stdout and stderr.
	DefaultMaxOutput int64 = 8 * 1024 * 1024
	// DefaultProgressInterval is how often a still running process is reported.
	DefaultProgressInterval = 10 * time.Second

	// waitDelay bounds how long output pipes are drained after the child exits.
	waitDelay = 2 * time.Second
)

var (
	// ErrCouldNotStartProcess is returned when the binary could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrTimeoutExceeded is returned when the context ended before the process did.
	ErrTimeoutExceeded = errors.New("timeout exceeded")
	// ErrSignalReceived is returned when a signal was forwarded to the process.
	ErrSignalReceived = errors.New("signal received")
	// ErrDuplicateSignalReceived is returned when a second signal of one kind killed the process.
	ErrDuplicateSignalReceived = errors.New("duplicate signal received, process forcefully terminated")
)

// Invocation is one execution of the binary.
type Invocation struct {
	Path string            // Executable name or path, looked up in PATH
	Args []string          // Arguments, not including the executable
	Env  map[string]string // Added to, and overriding, the inherited environment
}

// Process is what a Runner reports about a finished invocation.
type Process struct {
	ExitCode int // -1 when the process could not start or was killed
	StdOut   []byte
	StdErr   []byte
	Err      error
}

// Runner executes an invocation and waits for it to finish.
type Runner interface {
	Run(ctx context.Context, inv Invocation) *Process
}

var _ Runner = (*OSRunner)(nil)

// OSRunner runs the binary as a child process.
// The child is killed when the context is done.
type OSRunner struct {
	MaxOutput        int64         // Per stream capture limit, DefaultMaxOutput when zero
	ProgressInterval time.Duration // DefaultProgressInterval when zero
	// ForwardSignals relays termination signals received by this process to
	// the child. A second signal of the same kind kills the child.
	ForwardSignals bool

	sigCh chan os.Signal // allows signals to be injected in tests
}

// Run implements Runner.
func (r *OSRunner) Run(ctx context.Context, inv Invocation) *Process {
	logger := ctxlog.Logger(ctx).With("runner", "os", "path", inv.Path)
	logger.Debug("process info", "args", inv.Args, "env", inv.Env)

	res := &Process{}
	limit := cmp.Or(r.MaxOutput, DefaultMaxOutput)
	stdout := linebuf.New(limit)
	stderr := linebuf.New(limit)

	cmd := exec.Command(inv.Path, inv.Args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = os.Environ()
	cmd.WaitDelay = waitDelay

	for k, v := range inv.Env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}

	if err := cmd.Start(); err != nil {
		res.ExitCode = -1
		res.Err = errors.Join(ErrCouldNotStartProcess, err)

		return res
	}

	startTime := time.Now()
	logger.Debug("process started", "pid", cmd.Process.Pid)

	sigCh := r.sigCh
	if sigCh == nil && r.ForwardSignals {
		sigCh = signalbroker.New(ctx)
		defer signalbroker.Stop(sigCh)
	}

	done := make(chan struct{})

	var (
		wg       sync.WaitGroup
		watchErr error // set by the watchdog, read after wg.Wait
	)

	wg.Add(1)

	go func() {
		defer wg.Done()

		seen := make(map[os.Signal]struct{})

		ticker := time.NewTicker(cmp.Or(r.ProgressInterval, DefaultProgressInterval))
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				logger.Info("xdotool still running",
					"elapsed", time.Since(startTime).Round(time.Millisecond).String(),
					"lastLine", stdout.LastLine(80))

			case s := <-sigCh:
				if _, ok := seen[s]; ok {
					logger.Info("received duplicate signal, killing process", "signal", s.String())
					kill(ctx, cmd.Process)

					watchErr = ErrDuplicateSignalReceived

					return
				}

				seen[s] = struct{}{}

				logger.Info("forwarding signal", "signal", s.String())

				if err := cmd.Process.Signal(s); err != nil {
					logger.Info("failed to send signal", "signal", s.String(), "error", err)
				}

				watchErr = ErrSignalReceived

			case <-ctx.Done():
				logger.Info("context done, killing process")
				kill(ctx, cmd.Process)

				watchErr = errors.Join(ErrTimeoutExceeded, context.Cause(ctx))

				return

			case <-done:
				return
			}
		}
	}()

	waitErr := cmd.Wait()
	close(done)
	wg.Wait()

	res.ExitCode = cmd.ProcessState.ExitCode()
	res.StdOut = stdout.Bytes()
	res.StdErr = stderr.Bytes()

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		res.Err = waitErr
	}

	if watchErr != nil {
		res.Err = errors.Join(res.Err, watchErr)
		res.ExitCode = -1
	}

	res.Err = errors.Join(res.Err, stdout.Err(), stderr.Err())

	logger.Debug("process finished",
		"exitCode", res.ExitCode,
		"stdoutBytes", len(res.StdOut),
		"stderrBytes", len(res.StdErr),
		"duration", time.Since(startTime).String())

	return res
}

func kill(ctx context.Context, ps *os.Process) {
	if err := ps.Kill(); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			ctxlog.Debug(ctx, "process already done", "pid", ps.Pid)
			return
		}

		ctxlog.Error(ctx, "process kill error", "pid", ps.Pid, "error", err)

		return
	}

	ctxlog.Info(ctx, "process killed", "pid", ps.Pid)
}
