// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/batchreport/internal/convert"
	"github.com/pdiddy/batchreport/internal/generate"
	"github.com/pdiddy/batchreport/internal/pipeline"
	"github.com/pdiddy/batchreport/internal/runner"
	"github.com/pdiddy/batchreport/internal/secrets"
)

var runCmd = &cobra.Command{
	Use:   "run [periods...]",
	Short: "Run both passes: generate all reports, then render all PDFs",
	Long: `Run executes the full pipeline. Every report is generated before any
conversion starts; conversion removes each intermediate text file after
rendering it. Child exit codes are not inspected — a failed generator still
yields a (possibly empty) text file, and a failed converter still consumes
its input. Use --warn to have such exits reported.`,
	RunE: runRun,
}

func init() {
	addPipelineFlags(runCmd)

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	run := runner.New()
	gen := generate.NewCommandGenerator(cfg.Generator.Bin, secrets.Env(loadedSecrets), run)
	conv := convert.NewPandocConverter(cfg.Converter.Bin, cfg.Converter.Engine, run)

	pipeline.Run(cfg, gen, conv, os.Stdout)
	return nil
}
