package extract

import (
	"fmt"
	"log/slog"

	"github.com/pdftab/pdftab/internal/fileutil"
	"github.com/pdftab/pdftab/internal/pageset"
	"github.com/pdftab/pdftab/internal/table"
)

// Request describes a single extraction.
type Request struct {
	// File is the path of the input PDF.
	File string
	// Pages is the page selector as written by the caller ("" means all).
	Pages string
	// Method is the requested backend; empty or MethodAuto probes.
	Method Method
	// Options are passed through to the backend.
	Options Options
}

// Result is the uniform envelope of a completed extraction. Zero tables with
// a nil error is a valid outcome the caller must check for.
type Result struct {
	// Tables holds the normalized tables, empty ones already dropped.
	Tables []table.Table
	// Method is the backend that actually ran.
	Method Method
	// Source is the input file path.
	Source string
	// Pages is the page selector as the caller wrote it.
	Pages string
	// TotalRows is the row count summed over all tables.
	TotalRows int
	// MaxColumns is the widest table's column count.
	MaxColumns int
	// Accuracy is the mean detection confidence (grid backend only, 0 otherwise).
	Accuracy float64
}

// Coordinator validates inputs, resolves the method and runs exactly one
// backend per request. It is safe for concurrent use.
type Coordinator struct {
	registry *Registry
	selector *Selector
	logger   *slog.Logger
}

// NewCoordinator creates a coordinator over the registry.
func NewCoordinator(registry *Registry, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		registry: registry,
		selector: NewSelector(registry),
		logger:   logger,
	}
}

// Extract runs one extraction end to end: input validation, page selector
// parsing, method resolution, a single backend invocation, normalization.
// Backend failures surface as ExtractionError; selection probing never fails
// the request.
func (c *Coordinator) Extract(req Request) (*Result, error) {
	if err := fileutil.ValidatePDF(req.File); err != nil {
		return nil, err
	}

	sel, err := pageset.Parse(req.Pages)
	if err != nil {
		return nil, fmt.Errorf("invalid page selector %q: %w", req.Pages, err)
	}

	method, err := c.selector.Select(req.File, req.Method, req.Options)
	if err != nil {
		return nil, err
	}

	backend, ok := c.registry.Get(method)
	if !ok || !backend.Available() {
		return nil, &BackendUnavailableError{Method: method}
	}

	c.logger.Debug("extracting tables", "file", req.File, "method", method, "pages", sel.String())

	var found []table.Table
	var accuracy float64
	if reporter, ok := backend.(AccuracyReporter); ok {
		found, accuracy, err = reporter.ExtractWithAccuracy(req.File, sel, req.Options)
	} else {
		found, err = backend.Extract(req.File, sel, req.Options)
	}
	if err != nil {
		return nil, &ExtractionError{Method: method, Err: err}
	}

	result := &Result{
		Method:   method,
		Source:   req.File,
		Pages:    sel.String(),
		Accuracy: accuracy,
	}
	for _, t := range found {
		normalized := table.Normalize(t)
		if normalized.IsEmpty() {
			continue
		}
		result.Tables = append(result.Tables, normalized)
		result.TotalRows += normalized.RowCount()
		if normalized.ColumnCount() > result.MaxColumns {
			result.MaxColumns = normalized.ColumnCount()
		}
	}

	c.logger.Info("extraction complete",
		"file", req.File,
		"method", method,
		"tables", len(result.Tables),
		"rows", result.TotalRows)
	return result, nil
}
