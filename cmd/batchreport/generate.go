package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/batchreport/internal/generate"
	"github.com/pdiddy/batchreport/internal/runner"
	"github.com/pdiddy/batchreport/internal/secrets"
)

var generateCmd = &cobra.Command{
	Use:   "generate [periods...]",
	Short: "Run Pass 1 only: capture each period's report into <period>.txt",
	Long: `Generate runs the report generator once per period, capturing its stdout
byte-for-byte into <out-dir>/<period>.txt and discarding its stderr. Text
files are left in place for a later convert run.`,
	RunE: runGenerate,
}

func init() {
	addPipelineFlags(generateCmd)

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	gen := generate.NewCommandGenerator(cfg.Generator.Bin, secrets.Env(loadedSecrets), runner.New())
	generate.Batch(gen, cfg.Periods, cfg.OutDir, cfg.WarnOnExit, os.Stdout)
	return nil
}
