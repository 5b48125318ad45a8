// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate implements the first pipeline pass: running the external
// report generator once per period and capturing its stdout into a
// period-named text file.
package generate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/batchreport/internal/runner"
	"github.com/pdiddy/batchreport/pkg/types"
)

// Generator produces the report body for one period onto a writer. The
// returned Result carries the child's exit status; callers decide whether
// a non-zero exit means anything.
type Generator interface {
	Generate(period string, stdout io.Writer) runner.Result
}

// CommandGenerator runs an external executable as "<bin> <period>". The
// child's stdout is the report body; its stderr is discarded.
type CommandGenerator struct {
	bin string
	env []string
	run runner.CommandRunner
}

// NewCommandGenerator creates a generator for the given executable.
// extraEnv entries are added to the child's environment (credentials the
// generator needs but the pipeline never interprets).
func NewCommandGenerator(bin string, extraEnv []string, run runner.CommandRunner) *CommandGenerator {
	return &CommandGenerator{bin: bin, env: extraEnv, run: run}
}

// Generate runs the generator for one period, streaming stdout to w.
func (g *CommandGenerator) Generate(period string, stdout io.Writer) runner.Result {
	return g.run.Run(g.bin, []string{period}, runner.Streams{
		Stdout:   stdout,
		ExtraEnv: g.env,
	})
}

// BatchResult holds the outcome of a Pass-1 sweep.
type BatchResult struct {
	// Written counts capture files successfully created and closed.
	Written int
	// Failed counts periods where the capture file could not be written.
	Failed int
	// Warnings counts children that never started or exited non-zero.
	// Tracked regardless of warn mode; only printed when it is on.
	Warnings int
}

// Total returns the number of periods processed.
func (r BatchResult) Total() int { return r.Written + r.Failed }

// HasFailures reports whether any capture file could not be written.
func (r BatchResult) HasFailures() bool { return r.Failed > 0 }

// Period generates one report into <outDir>/<period>.txt. The file is
// created (or truncated) before the child is launched, so a generator that
// fails to start still leaves an empty capture file behind, the same way a
// shell redirect would. The child's exit status is never acted on; when
// warn is true it is reported on w as a warning.
func Period(g Generator, period, outDir string, warn bool, w io.Writer) (bool, runner.Result) {
	path := filepath.Join(outDir, types.TextFileName(period))

	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(w, "failed:    %s (%v)\n", period, err)
		return false, runner.Result{ExitCode: -1, Err: err}
	}

	res := g.Generate(period, f)
	closeErr := f.Close()

	if warn {
		switch {
		case res.Err != nil:
			fmt.Fprintf(w, "warning: generator for %s did not start: %v\n", period, res.Err)
		case res.ExitCode != 0:
			fmt.Fprintf(w, "warning: generator exited %d for %s\n", res.ExitCode, period)
		}
	}

	if closeErr != nil {
		fmt.Fprintf(w, "failed:    %s (%v)\n", period, closeErr)
		return false, res
	}

	fmt.Fprintf(w, "generated: %s\n", path)
	return true, res
}

// Batch runs Pass 1 over the whole period list, in list order, printing
// per-period status to w and returning a summary. Duplicate entries are
// processed as-is; a later occurrence overwrites the earlier capture file.
func Batch(g Generator, periods []string, outDir string, warn bool, w io.Writer) BatchResult {
	var result BatchResult
	for _, period := range periods {
		wrote, res := Period(g, period, outDir, warn, w)
		if wrote {
			result.Written++
		} else {
			result.Failed++
		}
		if !res.Success() {
			result.Warnings++
		}
	}
	fmt.Fprintf(w, "\nPass 1 summary: %d captured, %d failed (total: %d)\n",
		result.Written, result.Failed, result.Total())
	return result
}
