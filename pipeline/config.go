// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/siemens/subdig/dig"
	"github.com/siemens/subdig/dnsworker"
	"github.com/siemens/subdig/output"
	"github.com/siemens/subdig/progress"

	"gopkg.in/yaml.v3"
)

// Config configures a pipeline run.
type Config struct {
	Inputs        []string `yaml:"inputs"`          // input files, processed in order.
	Scope         string   `yaml:"scope"`           // optional scope file.
	Workers       int      `yaml:"threads"`         // concurrent lookups, clamped to [1..50].
	BatchSize     int      `yaml:"batch-size"`      // subdomains per batch.
	ReportEvery   int      `yaml:"report-every"`    // subdomains between progress updates.
	Output        string   `yaml:"output"`          // primary results file.
	InScopeOutput string   `yaml:"in-scope-output"` // in-scope results file, derived from Output if empty.
	Plain         bool     `yaml:"plain"`           // omit the registrable domain column.
}

// DefaultConfig returns the default pipeline configuration, without any
// input files.
func DefaultConfig() Config {
	return Config{
		Workers:     dnsworker.MaxWorkers,
		BatchSize:   dig.DefaultBatchSize,
		ReportEvery: progress.DefaultInterval,
		Output:      output.DefaultPath,
	}
}

// LoadConfig reads the YAML configuration file at path on top of the
// specified configuration. Unknown configuration keys are rejected.
func LoadConfig(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return &ConfigError{Err: fmt.Errorf("cannot open configuration file: %w", err)}
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return &ConfigError{Err: fmt.Errorf("invalid configuration file %s: %w", path, err)}
	}
	return nil
}

// Validate checks the configuration, including that all input files are
// readable, clamping the number of workers.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return &ConfigError{Err: errors.New("no input files")}
	}
	if c.BatchSize < 1 {
		return &ConfigError{Err: fmt.Errorf("batch size must be at least 1, got %d", c.BatchSize)}
	}
	if c.ReportEvery < 1 {
		return &ConfigError{Err: fmt.Errorf("report interval must be at least 1, got %d", c.ReportEvery)}
	}
	c.Workers = dnsworker.ClampSize(c.Workers)
	for _, input := range c.Inputs {
		f, err := os.Open(input)
		if err != nil {
			return &ConfigError{Err: fmt.Errorf("cannot open input file: %w", err)}
		}
		info, err := f.Stat()
		f.Close()
		if err != nil {
			return &ConfigError{Err: fmt.Errorf("cannot stat input file: %w", err)}
		}
		if info.IsDir() {
			return &ConfigError{Err: fmt.Errorf("input file %s is a directory", input)}
		}
	}
	return nil
}
