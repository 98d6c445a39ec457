package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdftab/pdftab/internal/config"
)

func TestExtractCommand(t *testing.T) {
	assert.NotNil(t, extractCmd)
	assert.True(t, strings.HasPrefix(extractCmd.Use, "extract"))
	assert.NotEmpty(t, extractCmd.Short)
	assert.NotEmpty(t, extractCmd.Long)
}

func TestExtractCommandHelp(t *testing.T) {
	buf := new(bytes.Buffer)
	extractCmd.SetOut(buf)
	extractCmd.SetErr(buf)
	require.NoError(t, extractCmd.Help())

	output := buf.String()
	assert.Contains(t, output, "--input")
	assert.Contains(t, output, "--method")
	assert.Contains(t, output, "--pages")
	assert.Contains(t, output, "--format")
}

func defaultExtractConfig() *extractConfig {
	return &extractConfig{
		method:    "auto",
		pages:     "all",
		format:    "csv",
		delimiter: ",",
		encoding:  "utf-8",
		merge:     "concat",
	}
}

func TestValidateExtractConfig(t *testing.T) {
	require.NoError(t, validateExtractConfig(defaultExtractConfig()))

	mutations := []struct {
		name   string
		mutate func(*extractConfig)
	}{
		{"bad method", func(c *extractConfig) { c.method = "camelot" }},
		{"bad pages", func(c *extractConfig) { c.pages = "five" }},
		{"bad format", func(c *extractConfig) { c.format = "parquet" }},
		{"multi-char delimiter", func(c *extractConfig) { c.delimiter = ";;" }},
		{"bad encoding", func(c *extractConfig) { c.encoding = "no-such-charset" }},
		{"bad merge", func(c *extractConfig) { c.merge = "zip" }},
		{"confidence out of range", func(c *extractConfig) { c.minConfidence = 1.5 }},
	}
	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultExtractConfig()
			tt.mutate(cfg)
			assert.Error(t, validateExtractConfig(cfg))
		})
	}
}

func TestConfigToExtractConfigUsesCentralDefaults(t *testing.T) {
	cfg := configToExtractConfig(config.DefaultConfig(), extractCmd)

	assert.Equal(t, "csv", cfg.format)
	assert.Equal(t, ",", cfg.delimiter)
	assert.Equal(t, "utf-8", cfg.encoding)
	assert.Equal(t, "concat", cfg.merge)
	assert.InDelta(t, 0.8, cfg.sparseThreshold, 1e-9)
	assert.Equal(t, 5, cfg.maxReportedLines)
}

func TestConfigToExtractConfigFlagOverride(t *testing.T) {
	central := config.DefaultConfig()
	require.NoError(t, extractCmd.Flags().Set("format", "json"))
	require.NoError(t, extractCmd.Flags().Set("merge", "union"))
	defer func() {
		_ = extractCmd.Flags().Set("format", "csv")
		_ = extractCmd.Flags().Set("merge", "concat")
	}()

	cfg := configToExtractConfig(central, extractCmd)
	assert.Equal(t, "json", cfg.format)
	assert.Equal(t, "union", cfg.merge)
}

func TestExtractCommandMissingFile(t *testing.T) {
	require.NoError(t, extractCmd.Flags().Set("input", "/non/existent/file.pdf"))
	err := extractCmd.RunE(extractCmd, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestBatchCommandRejectsNegativeWorkers(t *testing.T) {
	require.NoError(t, batchCmd.Flags().Set("input-dir", t.TempDir()))
	require.NoError(t, batchCmd.Flags().Set("output-dir", t.TempDir()))
	require.NoError(t, batchCmd.Flags().Set("workers", "-1"))
	defer func() { _ = batchCmd.Flags().Set("workers", "0") }()

	err := batchCmd.RunE(batchCmd, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--workers")
}
