package extract

import (
	"github.com/tsawler/tabula/tables"

	"github.com/pdftab/pdftab/internal/pageset"
	"github.com/pdftab/pdftab/internal/table"
)

// gridBackend detects tables from whitespace structure in addition to lines
// and scores every detection. Suited to tables without drawn grids.
type gridBackend struct {
	enabled bool
}

func (b *gridBackend) Method() Method {
	return MethodGrid
}

func (b *gridBackend) Available() bool {
	return b.enabled
}

func (b *gridBackend) Extract(path string, sel pageset.Selection, opts Options) ([]table.Table, error) {
	found, _, err := b.ExtractWithAccuracy(path, sel, opts)
	return found, err
}

// ExtractWithAccuracy returns the detected tables plus their mean detection
// confidence, surfaced as the result's accuracy.
func (b *gridBackend) ExtractWithAccuracy(path string, sel pageset.Selection, opts Options) ([]table.Table, float64, error) {
	cfg := tables.DefaultConfig()
	cfg.UseLines = true
	cfg.UseWhitespace = true
	if opts.MinConfidence > 0 {
		cfg.MinConfidence = opts.MinConfidence
	}

	return detectTables(path, sel, cfg)
}
