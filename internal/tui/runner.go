// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matt-FFFFFF/xdt/internal/report"
)

// ErrTUI is returned when the terminal program fails.
var ErrTUI = errors.New("terminal user interface failed")

// Watch shows the watch screen until the user quits or ctx is done.
// A run still in flight when the screen closes is cancelled and waited for.
// It returns the entry of the last run that completed before that, which may be nil.
func Watch(ctx context.Context, title string, interval time.Duration, run RunFunc, opts ...tea.ProgramOption) (*report.Entry, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewModel(ctx, title, interval, run)

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	program := tea.NewProgram(m, opts...)

	_, err := program.Run()

	cancel()
	m.inflight.close()

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return m.Last(), errors.Join(ErrTUI, err)
	}

	return m.Last(), nil
}

// runGroup tracks runs started by the model. Once closed no new run starts.
type runGroup struct {
	mu     sync.Mutex
	wg     sync.WaitGroup
	closed bool
}

// enter registers a run, reporting false if the group is closed.
func (g *runGroup) enter() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return false
	}

	g.wg.Add(1)

	return true
}

func (g *runGroup) leave() {
	g.wg.Done()
}

// close stops new runs and waits for the ones in flight.
func (g *runGroup) close() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()

	g.wg.Wait()
}
