package extract

import (
	"github.com/tsawler/tabula/tables"

	"github.com/pdftab/pdftab/internal/pageset"
	"github.com/pdftab/pdftab/internal/table"
)

// latticeBackend detects tables from ruling lines. It is the first backend
// tried during auto-selection and works best on PDFs with drawn grids.
type latticeBackend struct {
	enabled bool
}

func (b *latticeBackend) Method() Method {
	return MethodLattice
}

func (b *latticeBackend) Available() bool {
	return b.enabled
}

func (b *latticeBackend) Extract(path string, sel pageset.Selection, _ Options) ([]table.Table, error) {
	cfg := tables.DefaultConfig()
	cfg.UseLines = true
	cfg.UseWhitespace = false

	found, _, err := detectTables(path, sel, cfg)
	return found, err
}
