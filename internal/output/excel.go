package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pdftab/pdftab/internal/table"
)

const xlsxSheet = "Sheet1"

// MarshalXLSX serializes the table as an Excel workbook with the header in
// row 1. An empty table yields a workbook with just the header row omitted.
func MarshalXLSX(t table.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if !t.IsEmpty() {
		for i, name := range t.Columns {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			if err := f.SetCellValue(xlsxSheet, cell, name); err != nil {
				return nil, fmt.Errorf("failed to write XLSX header: %w", err)
			}
		}
		for r, row := range t.Rows {
			for c, value := range row {
				cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
				if err := f.SetCellValue(xlsxSheet, cell, value); err != nil {
					return nil, fmt.Errorf("failed to write XLSX cell: %w", err)
				}
			}
		}
		applyColumnWidths(f, t)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize XLSX: %w", err)
	}
	return buf.Bytes(), nil
}

// applyColumnWidths sizes each column to its longest cell, clamped to keep
// the sheet readable.
func applyColumnWidths(f *excelize.File, t table.Table) {
	for i, name := range t.Columns {
		width := len(name)
		for _, row := range t.Rows {
			if i < len(row) && len(row[i]) > width {
				width = len(row[i])
			}
		}
		if width < 10 {
			width = 10
		}
		if width > 60 {
			width = 60
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			continue
		}
		_ = f.SetColWidth(xlsxSheet, col, col, float64(width)+2)
	}
}
