// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdstate

import (
	"context"
	"errors"
	"io"

	"github.com/matt-FFFFFF/xdt/internal/batchfile"
	"github.com/matt-FFFFFF/xdt/internal/ctxlog"
	"github.com/matt-FFFFFF/xdt/internal/report"
)

// ErrBatchFailed is returned when at least one batch failed.
var ErrBatchFailed = errors.New("one or more batches failed")

// RunDefinition runs a definition once, or renders its command line on a dry run.
func (s *State) RunDefinition(ctx context.Context, def *batchfile.Definition) report.Entry {
	b := def.Batch(s.Options()...)

	if s.DryRun {
		return report.DryRun(def.Label(), b)
	}

	ctx, cancel := s.WithTimeout(ctx)
	defer cancel()

	res, err := b.Run(ctx)

	return report.FromResult(def.Label(), res, err)
}

// Execute runs the definitions in order and writes the report to w, and to
// the output file when one is set. Once ctx is done the remaining
// definitions are skipped.
func (s *State) Execute(ctx context.Context, w io.Writer, defs ...*batchfile.Definition) error {
	r := make(report.Report, 0, len(defs))

	for _, def := range defs {
		if ctx.Err() != nil {
			ctxlog.Warn(ctx, "skipping batch, context done", "batch", def.Label())
			continue
		}

		r = append(r, s.RunDefinition(ctx, def))
	}

	return s.Write(ctx, w, r)
}

// Write writes the report and returns ErrBatchFailed if any entry failed.
func (s *State) Write(ctx context.Context, w io.Writer, r report.Report) error {
	if err := r.Write(w, s.Format, report.WithColour(report.IsTerminal(w))); err != nil {
		return err
	}

	if s.Out != "" {
		if err := r.WriteFile(s.Out, s.Format); err != nil {
			return err
		}

		ctxlog.Info(ctx, "results written", "file", s.Out)
	}

	if r.HasFailure() {
		return ErrBatchFailed
	}

	return nil
}
