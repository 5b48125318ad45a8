// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the batchreport CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/batchreport/internal/secrets"
	"github.com/pdiddy/batchreport/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds generator credentials loaded at startup. They are
// passed to the generator child's environment and never interpreted here.
var loadedSecrets map[string]string

// rootCmd is the base command for the batchreport CLI.
var rootCmd = &cobra.Command{
	Use:   "batchreport",
	Short: "Batch report generation and PDF rendering",
	Long: `batchreport drives a two-pass batch pipeline over a list of reporting
periods. Pass 1 runs an external report generator once per period and
captures its output into <period>.txt; Pass 2 renders each text file to
<prefix>-<period>.pdf with a pandoc-style converter and removes the
intermediate text file.

Each pass is also available on its own: generate runs Pass 1, convert runs
Pass 2, and run executes both in order.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir := viper.GetString("generator.secrets_dir")
		if dir == "" {
			dir = types.DefaultSecretsDir
		}
		s, err := secrets.Load(dir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./batchreport.yaml or ~/.config/batchreport/config.yaml)")
	rootCmd.PersistentFlags().String("out-dir", "", "directory for text and PDF output (default \".\")")
	rootCmd.PersistentFlags().Bool("warn", false, "report non-zero subprocess exits as warnings (never halts the run)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("batchreport")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "batchreport"))
		}
	}

	viper.SetEnvPrefix("BATCHREPORT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
