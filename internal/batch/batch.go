// Package batch runs table extraction over a directory of PDF files with a
// worker pool. Failures are isolated per file; one broken document never
// stops the rest of the batch.
package batch

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pdftab/pdftab/internal/extract"
	"github.com/pdftab/pdftab/internal/fileutil"
	"github.com/pdftab/pdftab/internal/output"
	"github.com/pdftab/pdftab/internal/table"
)

// FileResult is the outcome for one input file.
type FileResult struct {
	Input  string
	Output string
	Method extract.Method
	Tables int
	Rows   int
	Err    error
}

// Result aggregates a batch run.
type Result struct {
	Files     []FileResult
	Succeeded int
	Failed    int
	Skipped   int
	Duration  time.Duration
}

// Process extracts tables from every PDF under cfg.InputDir and writes one
// output file per input. It returns an error only for setup problems (bad
// config, unreadable input directory, nothing to do); per-file failures are
// reported through the Result.
func Process(coord *extract.Coordinator, cfg *Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	files, err := fileutil.FindPDFs(cfg.InputDir, cfg.Recursive)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no PDF files found in %s", cfg.InputDir)
	}
	if err := fileutil.EnsureDir(cfg.OutputDir); err != nil {
		return nil, err
	}

	start := time.Now()
	results := make([]FileResult, len(files))

	jobs := make(chan int)
	var stopped atomic.Bool
	var wg sync.WaitGroup

	for w := 0; w < cfg.workerCount(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if stopped.Load() {
					results[i] = FileResult{Input: files[i], Err: errBatchStopped}
					continue
				}
				results[i] = processFile(coord, cfg, files[i])
				if results[i].Err != nil && !cfg.ContinueOnError {
					stopped.Store(true)
				}
			}
		}()
	}
	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	res := &Result{Files: results, Duration: time.Since(start)}
	for _, fr := range results {
		switch fr.Err {
		case nil:
			res.Succeeded++
		case errBatchStopped:
			res.Skipped++
		default:
			res.Failed++
		}
	}
	return res, nil
}

// errBatchStopped marks files skipped after a failure stopped the batch.
var errBatchStopped = fmt.Errorf("skipped: batch stopped after earlier failure")

// processFile runs extraction, merge and serialization for a single PDF.
func processFile(coord *extract.Coordinator, cfg *Config, input string) FileResult {
	fr := FileResult{Input: input}

	res, err := coord.Extract(extract.Request{
		File:    input,
		Pages:   cfg.Pages,
		Method:  cfg.Method,
		Options: cfg.Options,
	})
	if err != nil {
		fr.Err = err
		slog.Warn("batch file failed", "file", input, "error", err)
		return fr
	}
	fr.Method = res.Method
	fr.Tables = len(res.Tables)
	fr.Rows = res.TotalRows

	if len(res.Tables) == 0 {
		fr.Err = fmt.Errorf("no tables found in %s", input)
		slog.Warn("batch file yielded no tables", "file", input, "method", res.Method)
		return fr
	}

	merged, err := table.Merge(res.Tables, cfg.Merge, cfg.MergeFlags)
	if err != nil {
		fr.Err = err
		return fr
	}

	data, err := output.Render(merged, cfg.Format, cfg.CSV)
	if err != nil {
		fr.Err = err
		return fr
	}

	fr.Output = outputPath(cfg.OutputDir, input, cfg.Format)
	if err := output.WriteFile(fr.Output, data); err != nil {
		fr.Err = err
		fr.Output = ""
		return fr
	}

	slog.Info("batch file complete", "file", input, "output", fr.Output, "tables", fr.Tables, "rows", fr.Rows)
	return fr
}

// outputPath derives the per-file output path from the input base name.
func outputPath(outputDir, input string, format output.Format) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, fileutil.SafeFilename(base)+format.Ext())
}

// PrintSummary writes a human-readable batch summary.
func (r *Result) PrintSummary(w io.Writer) {
	fmt.Fprintf(w, "Processed %d file(s) in %s: %d succeeded, %d failed",
		len(r.Files), r.Duration.Round(time.Millisecond), r.Succeeded, r.Failed)
	if r.Skipped > 0 {
		fmt.Fprintf(w, ", %d skipped", r.Skipped)
	}
	fmt.Fprintln(w)

	for _, fr := range r.Files {
		if fr.Err != nil {
			fmt.Fprintf(w, "  FAIL %s: %v\n", fr.Input, fr.Err)
		}
	}
}
