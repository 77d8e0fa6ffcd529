// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/xdt/internal/report"
)

// RunFunc runs the watched batch once.
type RunFunc func(ctx context.Context) report.Entry

// Status is the state of the watch loop.
type Status int

// Watch loop states.
const (
	StatusWaiting Status = iota
	StatusRunning
	StatusPaused
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Model is the bubbletea model of the watch screen.
type Model struct {
	ctx      context.Context
	title    string
	interval time.Duration
	run      RunFunc

	spinner  spinner.Model
	status   Status
	paused   bool
	quitting bool
	width    int

	gen      int // generation of the pending tick
	runs     int
	failures int
	last     *report.Entry
	lastAt   time.Time
	took     time.Duration

	inflight runGroup

	styles *Styles
}

// Styles contains all the styling for the TUI.
type Styles struct {
	Title   lipgloss.Style
	Waiting lipgloss.Style
	Running lipgloss.Style
	Success lipgloss.Style
	Failed  lipgloss.Style
	Output  lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
}

// NewStyles creates the default styling for the TUI.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1),
		Waiting: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
		Running: lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")),
		Failed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")),
		Output: lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Italic(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			MarginTop(1),
	}
}

// NewModel creates a model that calls run every interval.
func NewModel(ctx context.Context, title string, interval time.Duration, run RunFunc) *Model {
	styles := NewStyles()

	return &Model{
		ctx:      ctx,
		title:    title,
		interval: interval,
		run:      run,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Running)),
		styles:   styles,
	}
}

// Last returns the entry of the most recent run, or nil before the first run completes.
func (m *Model) Last() *report.Entry {
	return m.last
}

// Runs returns how many runs have completed and how many of them failed.
func (m *Model) Runs() (int, int) {
	return m.runs, m.failures
}

// Status returns the state of the watch loop.
func (m *Model) Status() Status {
	return m.status
}
