// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the second pipeline pass: rendering each
// period's captured text file to PDF with an external converter, then
// removing the intermediate text file.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/batchreport/internal/runner"
	"github.com/pdiddy/batchreport/pkg/types"
)

// Converter renders an input document at inPath into a PDF at outPath.
// The returned Result carries the child's exit status.
type Converter interface {
	Convert(inPath, outPath string) runner.Result
}

// Options controls a Pass-2 sweep.
type Options struct {
	// NamePrefix is prepended to each PDF filename.
	NamePrefix string
	// OutDir holds the text files and receives the PDFs.
	OutDir string
	// Warn reports non-zero converter exits and launch failures on the
	// status writer. Never halts the sweep.
	Warn bool
	// Keep retains the intermediate text files instead of deleting them.
	Keep bool
}

// BatchResult holds the outcome of a Pass-2 sweep.
type BatchResult struct {
	// Converted counts periods whose converter child exited zero.
	Converted int
	// Failed counts periods whose converter never started or exited
	// non-zero. The sweep continues past them.
	Failed int
}

// Total returns the number of periods processed.
func (r BatchResult) Total() int { return r.Converted + r.Failed }

// HasFailures reports whether any conversion did not succeed.
func (r BatchResult) HasFailures() bool { return r.Failed > 0 }

// Period converts one period's text file to PDF and then deletes the text
// file. The delete is unconditional: a failed conversion still consumes its
// input, matching the original cleanup behavior. Opts.Keep suppresses the
// delete; a delete error is reported only in warn mode.
func Period(c Converter, period string, opts Options, w io.Writer) runner.Result {
	inPath := filepath.Join(opts.OutDir, types.TextFileName(period))
	outPath := filepath.Join(opts.OutDir, types.PDFFileName(opts.NamePrefix, period))

	res := c.Convert(inPath, outPath)

	if opts.Warn {
		switch {
		case res.Err != nil:
			fmt.Fprintf(w, "warning: converter for %s did not start: %v\n", period, res.Err)
		case res.ExitCode != 0:
			fmt.Fprintf(w, "warning: converter exited %d for %s\n", res.ExitCode, period)
		}
	}

	if !opts.Keep {
		if err := os.Remove(inPath); err != nil && opts.Warn {
			fmt.Fprintf(w, "warning: could not remove %s: %v\n", inPath, err)
		}
	}

	if res.Success() {
		fmt.Fprintf(w, "converted: %s\n", outPath)
	}
	return res
}

// Batch runs Pass 2 over the whole period list, in list order, printing
// per-period status to w and returning a summary.
func Batch(c Converter, periods []string, opts Options, w io.Writer) BatchResult {
	var result BatchResult
	for _, period := range periods {
		if Period(c, period, opts, w).Success() {
			result.Converted++
		} else {
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nPass 2 summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result
}
