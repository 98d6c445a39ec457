package batch

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/pdftab/pdftab/internal/extract"
	"github.com/pdftab/pdftab/internal/output"
	"github.com/pdftab/pdftab/internal/table"
)

// Config holds everything one batch run needs.
type Config struct {
	// InputDir is scanned for PDF files.
	InputDir string
	// OutputDir receives one output file per input PDF.
	OutputDir string
	// Recursive includes subdirectories of InputDir.
	Recursive bool
	// Workers is the number of parallel workers (0 = NumCPU).
	Workers int
	// ContinueOnError keeps the batch running after per-file failures.
	ContinueOnError bool

	// Method, Pages and Options parameterize each extraction.
	Method  extract.Method
	Pages   string
	Options extract.Options

	// Merge combines a file's tables before serialization.
	Merge      table.MergePolicy
	MergeFlags table.MergeOptions

	// Format and CSV control serialization.
	Format output.Format
	CSV    output.CSVOptions
}

// Validate checks the batch configuration.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return errors.New("input directory is required")
	}
	if c.OutputDir == "" {
		return errors.New("output directory is required")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	return nil
}

// workerCount resolves the effective parallelism.
func (c *Config) workerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}
