// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/matt-FFFFFF/xdt/internal/report"
)

const (
	durationRounding = time.Millisecond
	ellipsis         = "..."
	minWidth         = 20
)

// TickMsg asks the model to start the next run. Only the most recently
// scheduled tick is acted upon.
type TickMsg struct {
	At  time.Time
	gen int
}

// ResultMsg carries the outcome of a run.
type ResultMsg struct {
	Entry report.Entry
	Took  time.Duration
}

// Init implements bubbletea.Model.Init.
func (m *Model) Init() tea.Cmd {
	m.status = StatusRunning

	return tea.Batch(m.spinner.Tick, m.runCmd())
}

func (m *Model) runCmd() tea.Cmd {
	ctx, run, inflight := m.ctx, m.run, &m.inflight

	return func() tea.Msg {
		if !inflight.enter() {
			return nil
		}
		defer inflight.leave()

		start := time.Now()
		e := run(ctx)

		return ResultMsg{Entry: e, Took: time.Since(start)}
	}
}

func (m *Model) tickCmd() tea.Cmd {
	m.gen++
	gen := m.gen

	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, gen: gen}
	})
}

// Update implements bubbletea.Model.Update.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case ResultMsg:
		m.runs++
		if msg.Entry.Failed() {
			m.failures++
		}

		m.last = &msg.Entry
		m.lastAt = time.Now()
		m.took = msg.Took
		m.status = StatusWaiting

		if m.paused {
			m.status = StatusPaused
		}

		return m, m.tickCmd()

	case TickMsg:
		if msg.gen != m.gen || m.paused || m.status == StatusRunning {
			return m, nil
		}

		m.status = StatusRunning

		return m, m.runCmd()
	}

	return m, nil
}

// handleKeyPress processes keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "p", " ":
		m.paused = !m.paused

		switch {
		case m.status == StatusRunning:
		case m.paused:
			m.status = StatusPaused
		default:
			m.status = StatusRunning
			return m, m.runCmd()
		}

	case "r":
		if m.status != StatusRunning {
			m.status = StatusRunning
			return m, m.runCmd()
		}
	}

	return m, nil
}

// View implements bubbletea.Model.View.
func (m *Model) View() string {
	if m.quitting {
		return "Stopped watching.\n"
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("xdt watch: " + m.title))
	b.WriteString("\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")

	if e := m.last; e != nil {
		b.WriteString("\n")
		m.renderEntry(&b, e)
	}

	b.WriteString(m.styles.Help.Render("'q' to quit, 'p' to pause, 'r' to run now"))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) statusLine() string {
	var state string

	switch m.status {
	case StatusRunning:
		state = m.spinner.View() + " " + m.styles.Running.Render("running")
	case StatusPaused:
		state = m.styles.Waiting.Render("⏸ paused")
	default:
		state = m.styles.Waiting.Render(fmt.Sprintf("⏳ next run every %v", m.interval))
	}

	line := fmt.Sprintf("%s  runs: %d  failures: %d", state, m.runs, m.failures)

	if !m.lastAt.IsZero() {
		line += m.styles.Output.Render(fmt.Sprintf("  last: %s (%v)",
			m.lastAt.Format(time.TimeOnly), m.took.Round(durationRounding)))
	}

	return line
}

func (m *Model) renderEntry(b *strings.Builder, e *report.Entry) {
	if e.Failed() {
		fmt.Fprintf(b, "%s\n", m.styles.Failed.Render(fmt.Sprintf("✗ exit code %d", e.Status)))
	} else {
		fmt.Fprintf(b, "%s\n", m.styles.Success.Render("✓ ok"))
	}

	if e.Error != "" {
		fmt.Fprintf(b, "  %s\n", m.styles.Error.Render(m.truncate("Error: "+e.Error, 2)))
	}

	if e.StdErr != "" && e.Failed() {
		lines := strings.Split(e.StdErr, "\n")
		fmt.Fprintf(b, "  %s\n", m.styles.Error.Render(m.truncate(lines[len(lines)-1], 2)))
	}

	for _, out := range e.Outputs {
		line := fmt.Sprintf("[%d] %s: %v", out.Index, out.Command, out.Value)
		fmt.Fprintf(b, "  %s\n", m.styles.Output.Render(m.truncate(line, 2)))
	}
}

// truncate shortens s to the window width minus indent, counted in cells.
func (m *Model) truncate(s string, indent int) string {
	if m.width == 0 {
		return s
	}

	return ansi.Truncate(s, max(m.width-indent, minWidth), ellipsis)
}
