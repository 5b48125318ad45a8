package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/batchreport/internal/convert"
	"github.com/pdiddy/batchreport/internal/runner"
)

var convertCmd = &cobra.Command{
	Use:   "convert [periods...]",
	Short: "Run Pass 2 only: render each <period>.txt to PDF and clean up",
	Long: `Convert renders <out-dir>/<period>.txt to <out-dir>/<prefix>-<period>.pdf
for every period and then deletes the text file, whether or not the
conversion succeeded. Pass --keep to retain the text files.`,
	RunE: runConvert,
}

func init() {
	addPipelineFlags(convertCmd)
	convertCmd.Flags().Bool("keep", false, "retain intermediate text files after conversion")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	keep, _ := cmd.Flags().GetBool("keep")

	conv := convert.NewPandocConverter(cfg.Converter.Bin, cfg.Converter.Engine, runner.New())
	convert.Batch(conv, cfg.Periods, convert.Options{
		NamePrefix: cfg.NamePrefix,
		OutDir:     cfg.OutDir,
		Warn:       cfg.WarnOnExit,
		Keep:       keep,
	}, os.Stdout)
	return nil
}
