package config

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/pdftab/pdftab/internal/extract"
	"github.com/pdftab/pdftab/internal/output"
	"github.com/pdftab/pdftab/internal/pageset"
	"github.com/pdftab/pdftab/internal/table"
)

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateLogLevel,
		c.validateExtraction,
		c.validateOutput,
		c.validateProcessing,
		c.validateBatch,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateLogLevel() error {
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log_level: %q (valid: debug, info, warn, error)", c.LogLevel)
	}
}

func (c *Config) validateExtraction() error {
	if _, err := extract.ParseMethod(c.Extraction.Method); err != nil {
		return err
	}
	if _, err := pageset.Parse(c.Extraction.Pages); err != nil {
		return fmt.Errorf("invalid extraction.pages: %w", err)
	}
	if c.Extraction.MinConfidence < 0 || c.Extraction.MinConfidence > 1 {
		return fmt.Errorf("extraction.min_confidence must be in [0, 1], got %v", c.Extraction.MinConfidence)
	}
	for _, name := range c.Extraction.DisabledBackends {
		m, err := extract.ParseMethod(name)
		if err != nil {
			return fmt.Errorf("invalid extraction.disabled_backends entry: %w", err)
		}
		if m == extract.MethodAuto || m == extract.MethodText {
			return fmt.Errorf("backend %q cannot be disabled", name)
		}
	}
	return nil
}

func (c *Config) validateOutput() error {
	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	if _, err := c.Delimiter(); err != nil {
		return err
	}
	if !output.ValidEncoding(c.Output.Encoding) {
		return fmt.Errorf("unsupported output.encoding: %q", c.Output.Encoding)
	}
	if c.Output.SparseThreshold < 0 || c.Output.SparseThreshold > 1 {
		return fmt.Errorf("output.sparse_threshold must be in [0, 1], got %v", c.Output.SparseThreshold)
	}
	if c.Output.MaxReportedLines < 1 {
		return fmt.Errorf("output.max_reported_lines must be >= 1, got %d", c.Output.MaxReportedLines)
	}
	return nil
}

func (c *Config) validateProcessing() error {
	_, err := table.ParseMergePolicy(c.Processing.Merge)
	return err
}

func (c *Config) validateBatch() error {
	if c.Batch.Workers < 0 {
		return fmt.Errorf("batch.workers must be >= 0, got %d", c.Batch.Workers)
	}
	return nil
}

// Delimiter returns the output delimiter as a rune. The configuration value
// must be exactly one character.
func (c *Config) Delimiter() (rune, error) {
	if utf8.RuneCountInString(c.Output.Delimiter) != 1 {
		return 0, fmt.Errorf("output.delimiter must be a single character, got %q", c.Output.Delimiter)
	}
	r, _ := utf8.DecodeRuneInString(c.Output.Delimiter)
	return r, nil
}

// ToYAML renders the configuration as YAML, as written by "config init".
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return data, nil
}
