// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/batchreport/pkg/types"
)

// PeriodFile is the on-disk representation of a reporting schedule: the
// ordered period list plus optional overrides for the filename prefix and
// the rendering engine. A schedule can be saved once and replayed for later
// filings without repeating flags.
type PeriodFile struct {
	Periods    []string `yaml:"periods"`
	NamePrefix string   `yaml:"name_prefix,omitempty"`
	Engine     string   `yaml:"engine,omitempty"`
}

// ReadPeriodFile loads a schedule from a YAML file. Period entries are kept
// exactly as written: order preserved, duplicates included, no format
// checks.
func ReadPeriodFile(path string) (*PeriodFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading period file: %w", err)
	}
	var pf PeriodFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing period file: %w", err)
	}
	if len(pf.Periods) == 0 {
		return nil, fmt.Errorf("period file %s lists no periods", path)
	}
	return &pf, nil
}

// WritePeriodFile saves a schedule to a YAML file.
func WritePeriodFile(path string, pf PeriodFile) error {
	data, err := yaml.Marshal(&pf)
	if err != nil {
		return fmt.Errorf("marshaling period file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Apply copies the schedule onto a PipelineConfig. Empty override fields
// leave the config untouched.
func (pf *PeriodFile) Apply(cfg types.PipelineConfig) types.PipelineConfig {
	cfg.Periods = append([]string(nil), pf.Periods...)
	if pf.NamePrefix != "" {
		cfg.NamePrefix = pf.NamePrefix
	}
	if pf.Engine != "" {
		cfg.Converter.Engine = pf.Engine
	}
	return cfg
}
