package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdftab/pdftab/internal/batch"
	"github.com/pdftab/pdftab/internal/config"
	"github.com/pdftab/pdftab/internal/extract"
	"github.com/pdftab/pdftab/internal/output"
	"github.com/pdftab/pdftab/internal/table"
)

// batchCmd represents the batch command.
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Extract tables from every PDF in a directory",
	Long: `Extract tables from every PDF in a directory in parallel, writing one
output file per input PDF into the output directory.

Failures are isolated per file: a broken document is reported and the
rest of the batch continues (unless --continue-on-error=false). The
command exits non-zero when not a single file succeeded.

Examples:
  pdftab batch --input-dir ./pdfs --output-dir ./csv
  pdftab batch --input-dir ./pdfs --output-dir ./out --recursive --workers 8
  pdftab batch --input-dir ./pdfs --output-dir ./out --format json --method grid`,
	SilenceUsage: true,
	RunE:         runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().String("input-dir", "", "directory to scan for PDF files (required)")
	batchCmd.Flags().String("output-dir", "", "directory for output files (required)")
	batchCmd.Flags().Bool("recursive", false, "include subdirectories of the input directory")
	batchCmd.Flags().Int("workers", 0, "number of parallel workers (0 = number of CPUs)")
	batchCmd.Flags().Bool("continue-on-error", true, "keep processing after per-file failures")

	batchCmd.Flags().StringP("method", "m", "auto", "extraction method (auto, lattice, grid, pagetext, text)")
	batchCmd.Flags().StringP("pages", "p", "all", "pages to extract from each file")
	batchCmd.Flags().Float64("min-confidence", 0, "minimum detection confidence for the grid method (0..1, 0=default)")
	batchCmd.Flags().StringP("format", "f", "csv", "output format (csv, xlsx, json)")
	batchCmd.Flags().String("delimiter", ",", "CSV field delimiter")
	batchCmd.Flags().String("encoding", "utf-8", "CSV output encoding (IANA name)")
	batchCmd.Flags().Bool("no-header", false, "omit the column header line from CSV output")
	batchCmd.Flags().String("merge", "concat", "how to combine multiple tables per file (concat, union)")
	batchCmd.Flags().Bool("clean", false, "re-trim cells and drop emptied rows after merging")
	batchCmd.Flags().Bool("dedupe", false, "remove duplicate rows after merging")

	_ = batchCmd.MarkFlagRequired("input-dir")
	_ = batchCmd.MarkFlagRequired("output-dir")
}

// batchFlags holds the resolved settings for one batch run.
type batchFlags struct {
	extractConfig

	inputDir        string
	outputDir       string
	recursive       bool
	workers         int
	continueOnError bool
}

// configToBatchFlags maps the central configuration to batchFlags. CLI flags
// override config file values when explicitly set.
func configToBatchFlags(centralCfg *config.Config, cmd *cobra.Command) *batchFlags {
	cfg := &batchFlags{}

	setBoolWithFlag := func(configValue bool, flagName string, target *bool) {
		*target = configValue
		if cmd.Flags().Changed(flagName) {
			*target, _ = cmd.Flags().GetBool(flagName)
		}
	}
	setIntWithFlag := func(configValue int, flagName string, target *int) {
		*target = configValue
		if cmd.Flags().Changed(flagName) {
			*target, _ = cmd.Flags().GetInt(flagName)
		}
	}

	cfg.extractConfig = *configToExtractConfig(centralCfg, cmd)
	cfg.inputDir, _ = cmd.Flags().GetString("input-dir")
	cfg.outputDir, _ = cmd.Flags().GetString("output-dir")

	setBoolWithFlag(centralCfg.Batch.Recursive, "recursive", &cfg.recursive)
	setIntWithFlag(centralCfg.Batch.Workers, "workers", &cfg.workers)
	setBoolWithFlag(centralCfg.Batch.ContinueOnError, "continue-on-error", &cfg.continueOnError)
	return cfg
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := configToBatchFlags(GetConfig(), cmd)
	if err := validateExtractConfig(&cfg.extractConfig); err != nil {
		return err
	}
	if cfg.workers < 0 {
		return fmt.Errorf("--workers must be >= 0, got %d", cfg.workers)
	}

	method, _ := extract.ParseMethod(cfg.method)
	format, _ := output.ParseFormat(cfg.format)
	policy, _ := table.ParseMergePolicy(cfg.merge)
	delimiter := []rune(cfg.delimiter)[0]

	registry := extract.NewRegistry(extract.RegistryConfig{Disabled: cfg.disabledBackends})
	coordinator := extract.NewCoordinator(registry, nil)

	res, err := batch.Process(coordinator, &batch.Config{
		InputDir:        cfg.inputDir,
		OutputDir:       cfg.outputDir,
		Recursive:       cfg.recursive,
		Workers:         cfg.workers,
		ContinueOnError: cfg.continueOnError,
		Method:          method,
		Pages:           cfg.pages,
		Options:         extract.Options{MinConfidence: cfg.minConfidence},
		Merge:           policy,
		MergeFlags:      table.MergeOptions{Clean: cfg.clean, Dedupe: cfg.dedupe},
		Format:          format,
		CSV:             output.CSVOptions{Delimiter: delimiter, Header: !cfg.noHeader, Encoding: cfg.encoding},
	})
	if err != nil {
		return err
	}

	res.PrintSummary(os.Stdout)
	if res.Succeeded == 0 {
		return fmt.Errorf("all %d file(s) failed", len(res.Files))
	}
	return nil
}
