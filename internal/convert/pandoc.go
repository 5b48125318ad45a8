// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"github.com/pdiddy/batchreport/internal/runner"
)

// PandocConverter renders documents by invoking a pandoc-compatible
// executable: "<bin> <in> -o <out> --pdf-engine=<engine>". The converter's
// own stdout and stderr are discarded; the PDF lands at the output path.
type PandocConverter struct {
	bin    string
	engine string
	run    runner.CommandRunner
}

// NewPandocConverter creates a converter around the given executable and
// rendering engine.
func NewPandocConverter(bin, engine string, run runner.CommandRunner) *PandocConverter {
	return &PandocConverter{bin: bin, engine: engine, run: run}
}

// Convert renders inPath to outPath.
func (p *PandocConverter) Convert(inPath, outPath string) runner.Result {
	args := []string{inPath, "-o", outPath, "--pdf-engine=" + p.engine}
	return p.run.Run(p.bin, args, runner.Streams{})
}
