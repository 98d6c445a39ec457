package extract

import (
	"fmt"

	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/reader"
	"github.com/tsawler/tabula/tables"
	"github.com/tsawler/tabula/text"

	"github.com/pdftab/pdftab/internal/pageset"
	"github.com/pdftab/pdftab/internal/table"
)

// detectTables runs the geometric table detector over the selected pages and
// converts its output to the common table shape. It returns the mean
// detection confidence across all tables found.
func detectTables(path string, sel pageset.Selection, cfg tables.Config) ([]table.Table, float64, error) {
	r, err := reader.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open PDF %q: %w", path, err)
	}
	defer func() { _ = r.Close() }()

	pageCount, err := r.PageCount()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read page count of %q: %w", path, err)
	}

	detector := tables.NewGeometricDetector()
	if err := detector.Configure(cfg); err != nil {
		return nil, 0, fmt.Errorf("failed to configure table detector: %w", err)
	}

	var out []table.Table
	var confidenceSum float64
	var confidenceCount int

	for _, idx := range sel.Resolve(pageCount) {
		page, err := r.GetPage(idx)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read page %d of %q: %w", idx+1, path, err)
		}
		fragments, err := r.ExtractTextFragments(page)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to extract text from page %d of %q: %w", idx+1, path, err)
		}

		width, _ := page.Width()
		height, _ := page.Height()

		modelPage := model.NewPage(width, height)
		modelPage.Number = idx + 1
		modelPage.RawText = toModelFragments(fragments)

		detected, err := detector.Detect(modelPage)
		if err != nil {
			return nil, 0, fmt.Errorf("table detection failed on page %d: %w", idx+1, err)
		}

		for _, mt := range detected {
			t := fromModelTable(mt)
			if t.ColumnCount() == 0 {
				continue
			}
			out = append(out, t)
			confidenceSum += mt.Confidence
			confidenceCount++
		}
	}

	var accuracy float64
	if confidenceCount > 0 {
		accuracy = confidenceSum / float64(confidenceCount)
	}
	return out, accuracy, nil
}

// toModelFragments converts extracted text fragments into the detector's
// model type.
func toModelFragments(fragments []text.TextFragment) []model.TextFragment {
	result := make([]model.TextFragment, len(fragments))
	for i, f := range fragments {
		result[i] = model.TextFragment{
			Text:     f.Text,
			BBox:     model.BBox{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height},
			FontSize: f.FontSize,
			FontName: f.FontName,
		}
	}
	return result
}

// fromModelTable maps a detected table to the common shape. The first
// detected row becomes the header.
func fromModelTable(mt *model.Table) table.Table {
	if len(mt.Rows) == 0 {
		return table.Table{}
	}

	columns := make([]string, len(mt.Rows[0]))
	for i, cell := range mt.Rows[0] {
		columns[i] = cell.Text
	}

	rows := make([][]string, 0, len(mt.Rows)-1)
	for _, row := range mt.Rows[1:] {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cell.Text
		}
		rows = append(rows, cells)
	}
	return table.Table{Columns: columns, Rows: rows}
}
