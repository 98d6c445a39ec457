package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdftab/pdftab/internal/config"
	"github.com/pdftab/pdftab/internal/extract"
	"github.com/pdftab/pdftab/internal/output"
	"github.com/pdftab/pdftab/internal/pageset"
	"github.com/pdftab/pdftab/internal/table"
)

// extractCmd represents the extract command.
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract tables from a single PDF file",
	Long: `Extract tables from a single PDF file and write them as CSV, XLSX or JSON.

All tables found on the selected pages are merged into one output table.
With --method auto (the default), the backends are probed against page 1
and the first one that finds a table is used; pass an explicit method to
skip probing.

Examples:
  pdftab extract --input report.pdf --output report.csv
  pdftab extract -i report.pdf -o report.csv --pages 2-end --method lattice
  pdftab extract -i report.pdf --preview 10
  pdftab extract -i report.pdf -o report.xlsx --format xlsx --merge union`,
	SilenceUsage: true,
	RunE:         runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("input", "i", "", "input PDF file (required)")
	extractCmd.Flags().StringP("output", "o", "", "output file (default: input name with the format extension)")
	extractCmd.Flags().StringP("method", "m", "auto", "extraction method (auto, lattice, grid, pagetext, text)")
	extractCmd.Flags().StringP("pages", "p", "all", "pages to extract (e.g. 'all', '1-5', '2-end', '1,3,5')")
	extractCmd.Flags().StringP("format", "f", "csv", "output format (csv, xlsx, json)")
	extractCmd.Flags().String("delimiter", ",", "CSV field delimiter")
	extractCmd.Flags().String("encoding", "utf-8", "CSV output encoding (IANA name, e.g. utf-8, iso-8859-1)")
	extractCmd.Flags().Bool("no-header", false, "omit the column header line from CSV output")
	extractCmd.Flags().String("merge", "concat", "how to combine multiple tables (concat, union)")
	extractCmd.Flags().Bool("clean", false, "re-trim cells and drop emptied rows after merging")
	extractCmd.Flags().Bool("dedupe", false, "remove duplicate rows after merging")
	extractCmd.Flags().Float64("min-confidence", 0, "minimum detection confidence for the grid method (0..1, 0=default)")
	extractCmd.Flags().Int("preview", 0, "print the first N data rows to stdout instead of writing a file")
	extractCmd.Flags().Bool("validate", false, "validate the generated CSV and print the report")

	_ = extractCmd.MarkFlagRequired("input")
}

// extractConfig holds the resolved settings for one extract run.
type extractConfig struct {
	input         string
	outputFile    string
	method        string
	pages         string
	format        string
	delimiter     string
	encoding      string
	noHeader      bool
	merge         string
	clean         bool
	dedupe        bool
	minConfidence float64
	preview       int
	validate      bool

	disabledBackends []string
	sparseThreshold  float64
	maxReportedLines int
}

// configToExtractConfig maps the central configuration to extractConfig.
// CLI flags override config file values when explicitly set.
func configToExtractConfig(centralCfg *config.Config, cmd *cobra.Command) *extractConfig {
	cfg := &extractConfig{}

	setStringWithFlag := func(configValue, flagName string, target *string) {
		*target = configValue
		if cmd.Flags().Changed(flagName) {
			*target, _ = cmd.Flags().GetString(flagName)
		}
	}
	setBoolWithFlag := func(configValue bool, flagName string, target *bool) {
		*target = configValue
		if cmd.Flags().Changed(flagName) {
			*target, _ = cmd.Flags().GetBool(flagName)
		}
	}
	setFloat64WithFlag := func(configValue float64, flagName string, target *float64) {
		*target = configValue
		if cmd.Flags().Changed(flagName) {
			*target, _ = cmd.Flags().GetFloat64(flagName)
		}
	}

	cfg.input, _ = cmd.Flags().GetString("input")
	cfg.outputFile, _ = cmd.Flags().GetString("output")
	cfg.preview, _ = cmd.Flags().GetInt("preview")
	cfg.validate, _ = cmd.Flags().GetBool("validate")

	setStringWithFlag(centralCfg.Extraction.Method, "method", &cfg.method)
	setStringWithFlag(centralCfg.Extraction.Pages, "pages", &cfg.pages)
	setFloat64WithFlag(centralCfg.Extraction.MinConfidence, "min-confidence", &cfg.minConfidence)
	setStringWithFlag(centralCfg.Output.Format, "format", &cfg.format)
	setStringWithFlag(centralCfg.Output.Delimiter, "delimiter", &cfg.delimiter)
	setStringWithFlag(centralCfg.Output.Encoding, "encoding", &cfg.encoding)
	setStringWithFlag(centralCfg.Processing.Merge, "merge", &cfg.merge)
	setBoolWithFlag(centralCfg.Processing.Clean, "clean", &cfg.clean)
	setBoolWithFlag(centralCfg.Processing.Dedupe, "dedupe", &cfg.dedupe)

	noHeader := !centralCfg.Output.Header
	setBoolWithFlag(noHeader, "no-header", &cfg.noHeader)

	cfg.disabledBackends = centralCfg.Extraction.DisabledBackends
	cfg.sparseThreshold = centralCfg.Output.SparseThreshold
	cfg.maxReportedLines = centralCfg.Output.MaxReportedLines
	return cfg
}

// validateExtractConfig validates the resolved extract settings.
func validateExtractConfig(cfg *extractConfig) error {
	validators := []func(*extractConfig) error{
		validateMethodFlag,
		validatePagesFlag,
		validateFormatFlag,
		validateDelimiterFlag,
		validateEncodingFlag,
		validateMergeFlag,
		validateConfidenceFlag,
	}
	for _, validator := range validators {
		if err := validator(cfg); err != nil {
			return err
		}
	}
	return nil
}

func validateMethodFlag(cfg *extractConfig) error {
	_, err := extract.ParseMethod(cfg.method)
	return err
}

func validatePagesFlag(cfg *extractConfig) error {
	if _, err := pageset.Parse(cfg.pages); err != nil {
		return fmt.Errorf("invalid --pages value: %w", err)
	}
	return nil
}

func validateFormatFlag(cfg *extractConfig) error {
	_, err := output.ParseFormat(cfg.format)
	return err
}

func validateDelimiterFlag(cfg *extractConfig) error {
	if len([]rune(cfg.delimiter)) != 1 {
		return fmt.Errorf("--delimiter must be a single character, got %q", cfg.delimiter)
	}
	return nil
}

func validateEncodingFlag(cfg *extractConfig) error {
	if !output.ValidEncoding(cfg.encoding) {
		return fmt.Errorf("unsupported --encoding: %q", cfg.encoding)
	}
	return nil
}

func validateMergeFlag(cfg *extractConfig) error {
	_, err := table.ParseMergePolicy(cfg.merge)
	return err
}

func validateConfidenceFlag(cfg *extractConfig) error {
	if cfg.minConfidence < 0 || cfg.minConfidence > 1 {
		return fmt.Errorf("--min-confidence must be in [0, 1], got %v", cfg.minConfidence)
	}
	return nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := configToExtractConfig(GetConfig(), cmd)
	if err := validateExtractConfig(cfg); err != nil {
		return err
	}

	method, _ := extract.ParseMethod(cfg.method)
	format, _ := output.ParseFormat(cfg.format)
	policy, _ := table.ParseMergePolicy(cfg.merge)
	delimiter := []rune(cfg.delimiter)[0]

	registry := extract.NewRegistry(extract.RegistryConfig{Disabled: cfg.disabledBackends})
	coordinator := extract.NewCoordinator(registry, nil)

	result, err := coordinator.Extract(extract.Request{
		File:    cfg.input,
		Pages:   cfg.pages,
		Method:  method,
		Options: extract.Options{MinConfidence: cfg.minConfidence},
	})
	if err != nil {
		return err
	}
	if len(result.Tables) == 0 {
		return fmt.Errorf("no tables found in %s (method %s, pages %s)", cfg.input, result.Method, result.Pages)
	}

	merged, err := table.Merge(result.Tables, policy, table.MergeOptions{Clean: cfg.clean, Dedupe: cfg.dedupe})
	if err != nil {
		return err
	}

	csvOpts := output.CSVOptions{Delimiter: delimiter, Header: !cfg.noHeader, Encoding: cfg.encoding}

	if cfg.preview > 0 {
		return printPreview(cmd, merged, csvOpts, cfg.preview)
	}

	data, err := output.Render(merged, format, csvOpts)
	if err != nil {
		return err
	}

	outputFile := cfg.outputFile
	if outputFile == "" {
		base := strings.TrimSuffix(filepath.Base(cfg.input), filepath.Ext(cfg.input))
		outputFile = base + format.Ext()
	}
	if err := output.WriteFile(outputFile, data); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Extracted %d table(s), %d row(s) from %s using method %s\n",
		len(result.Tables), result.TotalRows, cfg.input, result.Method)
	if result.Accuracy > 0 {
		fmt.Fprintf(out, "Detection accuracy: %.2f\n", result.Accuracy)
	}
	fmt.Fprintf(out, "Wrote %s\n", outputFile)

	if cfg.validate && format == output.FormatCSV {
		printValidation(cmd, data, output.ValidationOptions{
			Delimiter:        delimiter,
			SparseThreshold:  cfg.sparseThreshold,
			MaxReportedLines: cfg.maxReportedLines,
		})
	}
	return nil
}

// printPreview writes the first n data rows as CSV to stdout.
func printPreview(cmd *cobra.Command, t table.Table, csvOpts output.CSVOptions, n int) error {
	preview := t
	if n < len(preview.Rows) {
		preview.Rows = preview.Rows[:n]
	}
	data, err := output.MarshalCSV(preview, csvOpts)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// printValidation prints a validation report for generated CSV data.
func printValidation(cmd *cobra.Command, data []byte, opts output.ValidationOptions) {
	report := output.Validate(data, opts)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validation: valid=%t rows=%d columns=%d empty_cells=%.0f%%\n",
		report.Valid, report.RowCount, report.ColumnCount, report.EmptyCellPercentage)
	for _, e := range report.Errors {
		fmt.Fprintf(out, "  error: %s\n", e)
	}
	for _, w := range report.Warnings {
		fmt.Fprintf(out, "  warning: %s\n", w)
	}
}
