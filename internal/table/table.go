// Package table defines the common tabular shape every extraction backend
// produces: ordered named columns plus rows of string cells. The empty string
// is the one and only "missing value" sentinel.
package table

// Table holds extracted tabular data. A well-formed Table has unique column
// names and every row exactly ColumnCount cells wide; Normalize coerces
// arbitrary backend output into that shape.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New builds a Table from columns and rows without normalizing.
func New(columns []string, rows [][]string) Table {
	return Table{Columns: columns, Rows: rows}
}

// RowCount returns the number of data rows (the header is not a row).
func (t Table) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the number of columns.
func (t Table) ColumnCount() int {
	return len(t.Columns)
}

// IsEmpty reports whether the table has no data rows.
func (t Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// ColumnIndex returns the index of the named column, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy.
func (t Table) Clone() Table {
	out := Table{}
	if t.Columns != nil {
		out.Columns = append([]string(nil), t.Columns...)
	}
	if t.Rows != nil {
		out.Rows = make([][]string, len(t.Rows))
		for i, row := range t.Rows {
			out.Rows[i] = append([]string(nil), row...)
		}
	}
	return out
}

// Cell returns the cell at (row, col), or "" when out of range.
func (t Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}
