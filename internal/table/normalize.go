package table

import (
	"fmt"
	"strings"
)

// missingMarkers are cell values that backends emit for absent data. They are
// coerced to the empty sentinel during normalization.
var missingMarkers = map[string]struct{}{
	"nan":   {},
	"null":  {},
	"none":  {},
	"<nil>": {},
}

// Normalize coerces arbitrary backend output into a well-formed Table:
// every row padded or truncated to the column count, cells trimmed, missing
// markers replaced by "", all-empty rows and columns dropped, column names
// trimmed and made unique. It never fails on malformed input and is
// idempotent: Normalize(Normalize(t)) == Normalize(t).
func Normalize(t Table) Table {
	width := len(t.Columns)
	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return Table{}
	}

	columns := make([]string, width)
	for i := range columns {
		if i < len(t.Columns) {
			columns[i] = cleanCell(t.Columns[i])
		}
		if columns[i] == "" {
			columns[i] = fmt.Sprintf("column_%d", i+1)
		}
	}

	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		cleaned := make([]string, width)
		empty := true
		for i := 0; i < width && i < len(row); i++ {
			cleaned[i] = cleanCell(row[i])
			if cleaned[i] != "" {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, cleaned)
		}
	}

	columns, rows = dropEmptyColumns(columns, rows)
	uniquifyColumns(columns)
	return Table{Columns: columns, Rows: rows}
}

// cleanCell trims whitespace and coerces missing-value markers to "".
func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	if _, ok := missingMarkers[strings.ToLower(s)]; ok {
		return ""
	}
	return s
}

// dropEmptyColumns removes columns whose cells are all empty. Tables without
// data rows keep their columns.
func dropEmptyColumns(columns []string, rows [][]string) ([]string, [][]string) {
	if len(rows) == 0 {
		return columns, rows
	}

	keep := make([]int, 0, len(columns))
	for i := range columns {
		for _, row := range rows {
			if row[i] != "" {
				keep = append(keep, i)
				break
			}
		}
	}
	if len(keep) == len(columns) {
		return columns, rows
	}

	outCols := make([]string, len(keep))
	for j, i := range keep {
		outCols[j] = columns[i]
	}
	outRows := make([][]string, len(rows))
	for r, row := range rows {
		outRows[r] = make([]string, len(keep))
		for j, i := range keep {
			outRows[r][j] = row[i]
		}
	}
	return outCols, outRows
}

// uniquifyColumns renames duplicate column names in place by appending a
// numeric suffix ("A", "A" -> "A", "A_2").
func uniquifyColumns(columns []string) {
	seen := make(map[string]int, len(columns))
	for i, name := range columns {
		count := seen[name]
		seen[name] = count + 1
		if count == 0 {
			continue
		}
		renamed := fmt.Sprintf("%s_%d", name, count+1)
		for seen[renamed] > 0 {
			count++
			renamed = fmt.Sprintf("%s_%d", name, count+1)
		}
		seen[renamed] = 1
		columns[i] = renamed
	}
}
