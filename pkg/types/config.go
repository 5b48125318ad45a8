// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration model shared by the CLI and the
// pipeline stages.
package types

// GeneratorConfig holds settings for the report-generator invocation.
type GeneratorConfig struct {
	// Bin is the report-generator executable. Invoked as "<bin> <period>";
	// its stdout is the report body, its stderr is discarded.
	Bin string `json:"bin" yaml:"bin"`

	// SecretsDir is the directory of credential files injected into the
	// generator child's environment (e.g. ".secrets/").
	SecretsDir string `json:"secrets_dir" yaml:"secrets_dir"`
}

// ConverterConfig holds settings for the document-converter invocation.
type ConverterConfig struct {
	// Bin is the converter executable, invoked pandoc-style:
	// "<bin> <period>.txt -o <prefix>-<period>.pdf --pdf-engine=<engine>".
	Bin string `json:"bin" yaml:"bin"`

	// Engine selects the converter's PDF rendering engine.
	Engine string `json:"engine" yaml:"engine"`
}

// PipelineConfig groups everything a pipeline run needs. Period identifiers
// are opaque tokens: the pipeline never parses or validates them, preserves
// their order, and does not deduplicate.
type PipelineConfig struct {
	// Periods is the ordered list of reporting periods ("2025-01" style in
	// the shipped defaults, though any string works).
	Periods []string `json:"periods" yaml:"periods"`

	// NamePrefix is prepended to each PDF filename: "<prefix>-<period>.pdf".
	NamePrefix string `json:"name_prefix" yaml:"name_prefix"`

	// OutDir is where intermediate text files and final PDFs are written.
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// WarnOnExit surfaces non-zero child exit codes and launch failures as
	// warnings. The pipeline continues either way; off by default to match
	// the fire-and-forget behavior of the original script.
	WarnOnExit bool `json:"warn_on_exit" yaml:"warn_on_exit"`

	Generator GeneratorConfig `json:"generator" yaml:"generator"`
	Converter ConverterConfig `json:"converter" yaml:"converter"`
}

const (
	// DefaultNamePrefix matches the monthly filing convention of the
	// original setup.
	DefaultNamePrefix = "KUP"

	// DefaultGeneratorBin is the report-generator executable name.
	DefaultGeneratorBin = "kup-report"

	// DefaultConverterBin is the document-converter executable name.
	DefaultConverterBin = "pandoc"

	// DefaultEngine is the PDF rendering engine handed to the converter.
	DefaultEngine = "xelatex"

	// DefaultSecretsDir is where generator credentials are looked up.
	DefaultSecretsDir = ".secrets/"
)

// DefaultPeriods is the shipped reporting schedule: one filing per month of
// the reporting year, in chronological order.
var DefaultPeriods = []string{
	"2025-01", "2025-02", "2025-03", "2025-04", "2025-05", "2025-06",
	"2025-07", "2025-08", "2025-09", "2025-10", "2025-11", "2025-12",
}

// DefaultConfig returns a PipelineConfig with every field set to the shipped
// defaults.
func DefaultConfig() PipelineConfig {
	return PipelineConfig{
		Periods:    append([]string(nil), DefaultPeriods...),
		NamePrefix: DefaultNamePrefix,
		OutDir:     ".",
		Generator: GeneratorConfig{
			Bin:        DefaultGeneratorBin,
			SecretsDir: DefaultSecretsDir,
		},
		Converter: ConverterConfig{
			Bin:    DefaultConverterBin,
			Engine: DefaultEngine,
		},
	}
}

// WithDefaults fills zero-valued fields from DefaultConfig and returns the
// result. Explicitly set fields are left alone; an empty period list is
// replaced by the shipped schedule. WarnOnExit has no non-zero default.
func (c PipelineConfig) WithDefaults() PipelineConfig {
	def := DefaultConfig()
	if len(c.Periods) == 0 {
		c.Periods = def.Periods
	}
	if c.NamePrefix == "" {
		c.NamePrefix = def.NamePrefix
	}
	if c.OutDir == "" {
		c.OutDir = def.OutDir
	}
	if c.Generator.Bin == "" {
		c.Generator.Bin = def.Generator.Bin
	}
	if c.Generator.SecretsDir == "" {
		c.Generator.SecretsDir = def.Generator.SecretsDir
	}
	if c.Converter.Bin == "" {
		c.Converter.Bin = def.Converter.Bin
	}
	if c.Converter.Engine == "" {
		c.Converter.Engine = def.Converter.Engine
	}
	return c
}

// TextFileName returns the intermediate artifact name for a period.
func TextFileName(period string) string {
	return period + ".txt"
}

// PDFFileName returns the final artifact name for a period under a prefix.
func PDFFileName(prefix, period string) string {
	return prefix + "-" + period + ".pdf"
}
