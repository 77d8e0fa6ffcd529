// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/TylerBrock/colorjson"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	// ErrMarshalAttribute is returned when record attributes cannot be rendered.
	ErrMarshalAttribute = errors.New("error when marshaling attribute")
	// ErrIoWrite is returned when the rendered record cannot be written.
	ErrIoWrite = errors.New("error when writing to output")
)

// TimeFormat is the timestamp layout of console records.
const TimeFormat = "[15:04:05.000]"

var (
	timeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	msgStyle   = lipgloss.NewStyle().Bold(true)
	attrStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	levelStyle = map[slog.Level]lipgloss.Style{
		slog.LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		slog.LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		slog.LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		slog.LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
)

// ConsoleHandler is a slog.Handler for humans. The record's attributes are
// collected by an inner JSON handler and re-rendered with colorjson.
type ConsoleHandler struct {
	inner      slog.Handler
	replace    func([]string, slog.Attr) slog.Attr
	buf        *bytes.Buffer
	mu         *sync.Mutex
	w          io.Writer
	colour     bool
	emptyAttrs bool
}

// Option configures a ConsoleHandler.
type Option func(h *ConsoleHandler)

// WithColour forces colour output.
func WithColour() Option {
	return func(h *ConsoleHandler) {
		h.colour = true
	}
}

// WithAutoColour enables colour when the destination is a terminal and NO_COLOR is unset.
func WithAutoColour() Option {
	return func(h *ConsoleHandler) {
		h.colour = isTerminal(h.w) && os.Getenv("NO_COLOR") == ""
	}
}

// WithOutputEmptyAttrs prints `{}` for records without attributes.
func WithOutputEmptyAttrs() Option {
	return func(h *ConsoleHandler) {
		h.emptyAttrs = true
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// NewConsoleHandler returns a handler writing to w.
func NewConsoleHandler(w io.Writer, opts *slog.HandlerOptions, options ...Option) *ConsoleHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	buf := &bytes.Buffer{}
	h := &ConsoleHandler{
		buf: buf,
		inner: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level:       opts.Level,
			AddSource:   opts.AddSource,
			ReplaceAttr: dropBuiltins(opts.ReplaceAttr),
		}),
		replace: opts.ReplaceAttr,
		mu:      &sync.Mutex{},
		w:       w,
	}

	for _, o := range options {
		o(h)
	}

	return h
}

func dropBuiltins(next func([]string, slog.Attr) slog.Attr) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey || a.Key == slog.MessageKey) {
			return slog.Attr{}
		}

		if next == nil {
			return a
		}

		return next(groups, a)
	}
}

func (h *ConsoleHandler) clone(inner slog.Handler) *ConsoleHandler {
	c := *h
	c.inner = inner

	return &c
}

// Enabled implements slog.Handler.
func (h *ConsoleHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// WithAttrs implements slog.Handler.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.clone(h.inner.WithAttrs(attrs))
}

// WithGroup implements slog.Handler.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	return h.clone(h.inner.WithGroup(name))
}

func (h *ConsoleHandler) paint(s lipgloss.Style, text string) string {
	if !h.colour {
		return text
	}

	return s.Render(text)
}

// builtin applies the user ReplaceAttr to a built-in attribute. An empty
// result means the attribute is suppressed.
func (h *ConsoleHandler) builtin(key string, v slog.Value) string {
	a := slog.Attr{Key: key, Value: v}
	if h.replace != nil {
		a = h.replace(nil, a)
	}

	if a.Equal(slog.Attr{}) {
		return ""
	}

	return a.Value.String()
}

func (h *ConsoleHandler) attrs(ctx context.Context, r slog.Record) (map[string]any, error) {
	h.mu.Lock()
	defer func() {
		h.buf.Reset()
		h.mu.Unlock()
	}()

	if err := h.inner.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	var attrs map[string]any
	if err := json.Unmarshal(h.buf.Bytes(), &attrs); err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler's Handle result: %w", err)
	}

	return attrs, nil
}

// Handle implements slog.Handler.
func (h *ConsoleHandler) Handle(ctx context.Context, r slog.Record) error {
	attrs, err := h.attrs(ctx, r)
	if err != nil {
		return err
	}

	parts := make([]string, 0, 4)

	if ts := h.builtin(slog.TimeKey, slog.StringValue(r.Time.Format(TimeFormat))); ts != "" {
		parts = append(parts, h.paint(timeStyle, ts))
	}

	if lvl := h.builtin(slog.LevelKey, slog.AnyValue(r.Level)); lvl != "" {
		parts = append(parts, h.paint(styleFor(r.Level), lvl+":"))
	}

	if msg := h.builtin(slog.MessageKey, slog.StringValue(r.Message)); msg != "" {
		parts = append(parts, h.paint(msgStyle, msg))
	}

	if h.emptyAttrs || len(attrs) > 0 {
		f := colorjson.NewFormatter()
		f.Indent = 2
		f.DisabledColor = !h.colour

		b, err := f.Marshal(attrs)
		if err != nil {
			return errors.Join(ErrMarshalAttribute, err)
		}

		parts = append(parts, h.paint(attrStyle, string(b)))
	}

	if _, err := io.WriteString(h.w, strings.Join(parts, " ")+"\n"); err != nil {
		return errors.Join(ErrIoWrite, err)
	}

	return nil
}

func styleFor(l slog.Level) lipgloss.Style {
	switch {
	case l < slog.LevelInfo:
		return levelStyle[slog.LevelDebug]
	case l < slog.LevelWarn:
		return levelStyle[slog.LevelInfo]
	case l < slog.LevelError:
		return levelStyle[slog.LevelWarn]
	default:
		return levelStyle[slog.LevelError]
	}
}
