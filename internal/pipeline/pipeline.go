// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives the two-pass batch run: generate every period's
// report first, then convert every capture file to PDF and clean up.
package pipeline

import (
	"io"

	"github.com/pdiddy/batchreport/internal/convert"
	"github.com/pdiddy/batchreport/internal/generate"
	"github.com/pdiddy/batchreport/pkg/types"
)

// Outcome aggregates both pass summaries. The pipeline always runs to
// completion; Outcome reports what happened, it never gates anything.
type Outcome struct {
	Generate generate.BatchResult
	Convert  convert.BatchResult
}

// Run executes both passes over cfg.Periods in list order. Pass 1 fully
// completes for every period before Pass 2 starts for any: the two loops
// are never interleaved, so all capture files exist (possibly empty) before
// the first conversion is attempted.
func Run(cfg types.PipelineConfig, g generate.Generator, c convert.Converter, w io.Writer) Outcome {
	var out Outcome

	out.Generate = generate.Batch(g, cfg.Periods, cfg.OutDir, cfg.WarnOnExit, w)

	out.Convert = convert.Batch(c, cfg.Periods, convert.Options{
		NamePrefix: cfg.NamePrefix,
		OutDir:     cfg.OutDir,
		Warn:       cfg.WarnOnExit,
	}, w)

	return out
}
