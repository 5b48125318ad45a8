// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/batchreport/internal/pipeline"
	"github.com/pdiddy/batchreport/pkg/types"
)

// resolveConfig builds the pipeline configuration for a command invocation.
// Precedence, highest first: positional period arguments, command flags,
// a --periods-file schedule, the viper config file / environment, shipped
// defaults.
func resolveConfig(cmd *cobra.Command, args []string) (types.PipelineConfig, error) {
	cfg := types.PipelineConfig{
		Periods:    viper.GetStringSlice("periods"),
		NamePrefix: viper.GetString("name_prefix"),
		OutDir:     viper.GetString("out_dir"),
		WarnOnExit: viper.GetBool("warn_on_exit"),
		Generator: types.GeneratorConfig{
			Bin:        viper.GetString("generator.bin"),
			SecretsDir: viper.GetString("generator.secrets_dir"),
		},
		Converter: types.ConverterConfig{
			Bin:    viper.GetString("converter.bin"),
			Engine: viper.GetString("converter.engine"),
		},
	}

	if path, _ := cmd.Flags().GetString("periods-file"); path != "" {
		pf, err := pipeline.ReadPeriodFile(path)
		if err != nil {
			return cfg, err
		}
		cfg = pf.Apply(cfg)
	}

	if cmd.Flags().Changed("prefix") {
		cfg.NamePrefix, _ = cmd.Flags().GetString("prefix")
	}
	if cmd.Flags().Changed("engine") {
		cfg.Converter.Engine, _ = cmd.Flags().GetString("engine")
	}
	if cmd.Flags().Changed("generator") {
		cfg.Generator.Bin, _ = cmd.Flags().GetString("generator")
	}
	if cmd.Flags().Changed("converter") {
		cfg.Converter.Bin, _ = cmd.Flags().GetString("converter")
	}
	if cmd.Flags().Changed("out-dir") {
		cfg.OutDir, _ = cmd.Flags().GetString("out-dir")
	}
	if cmd.Flags().Changed("warn") {
		cfg.WarnOnExit, _ = cmd.Flags().GetBool("warn")
	}

	// Positional arguments are periods and win over every other source.
	if len(args) > 0 {
		cfg.Periods = args
	}

	return cfg.WithDefaults(), nil
}

// addPipelineFlags registers the flags shared by run, generate, and convert.
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().String("periods-file", "", "YAML schedule listing periods, with optional name_prefix and engine overrides")
	cmd.Flags().String("prefix", "", "PDF filename prefix (default \"KUP\")")
	cmd.Flags().String("generator", "", "report-generator executable (default \"kup-report\")")
	cmd.Flags().String("converter", "", "document-converter executable (default \"pandoc\")")
	cmd.Flags().String("engine", "", "PDF rendering engine passed to the converter (default \"xelatex\")")
}
