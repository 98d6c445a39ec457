package table

import (
	"fmt"
	"sort"
	"strings"
)

// MergePolicy selects how multiple tables are combined into one.
type MergePolicy string

const (
	// Concatenate appends rows under the first table's columns. Later tables
	// contribute cells by matching column name where possible, otherwise by
	// position; missing cells become "".
	Concatenate MergePolicy = "concat"

	// UnionByColumn builds the sorted union of all column names and reindexes
	// every table against it, filling absent columns with "".
	UnionByColumn MergePolicy = "union"
)

// ParseMergePolicy parses a policy name as used on the command line.
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch MergePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case Concatenate:
		return Concatenate, nil
	case UnionByColumn:
		return UnionByColumn, nil
	default:
		return "", fmt.Errorf("unknown merge policy: %q (valid: concat, union)", s)
	}
}

// MergeOptions control post-merge cleanup.
type MergeOptions struct {
	// Clean re-trims cells and drops rows that became entirely empty.
	Clean bool
	// Dedupe removes duplicate rows, keeping the first occurrence. Never
	// applied implicitly.
	Dedupe bool
}

// Merge combines tables under the given policy. Merging an empty slice
// yields an empty Table and no error.
func Merge(tables []Table, policy MergePolicy, opts MergeOptions) (Table, error) {
	var merged Table
	switch policy {
	case Concatenate:
		merged = concatenate(tables)
	case UnionByColumn:
		merged = unionByColumn(tables)
	default:
		return Table{}, fmt.Errorf("unknown merge policy: %q", policy)
	}

	if opts.Clean {
		merged = cleanRows(merged)
	}
	if opts.Dedupe {
		merged = dedupeRows(merged)
	}
	return merged, nil
}

func concatenate(tables []Table) Table {
	if len(tables) == 0 {
		return Table{}
	}

	columns := append([]string(nil), tables[0].Columns...)
	var rows [][]string
	for _, t := range tables {
		mapping := columnMapping(columns, t)
		for _, row := range t.Rows {
			out := make([]string, len(columns))
			for j, src := range mapping {
				if src >= 0 && src < len(row) {
					out[j] = row[src]
				}
			}
			rows = append(rows, out)
		}
	}
	return Table{Columns: columns, Rows: rows}
}

// columnMapping maps each target column to a source column index in t:
// by name when the table has a matching column, by position otherwise,
// -1 when the table is too narrow.
func columnMapping(columns []string, t Table) []int {
	mapping := make([]int, len(columns))
	for j, name := range columns {
		if idx := t.ColumnIndex(name); idx >= 0 {
			mapping[j] = idx
		} else if j < len(t.Columns) {
			mapping[j] = j
		} else {
			mapping[j] = -1
		}
	}
	return mapping
}

func unionByColumn(tables []Table) Table {
	if len(tables) == 0 {
		return Table{}
	}

	columns := sortedColumnUnion(tables)
	var rows [][]string
	for _, t := range tables {
		for _, row := range t.Rows {
			out := make([]string, len(columns))
			for j, name := range columns {
				if idx := t.ColumnIndex(name); idx >= 0 && idx < len(row) {
					out[j] = row[idx]
				}
			}
			rows = append(rows, out)
		}
	}
	return Table{Columns: columns, Rows: rows}
}

func sortedColumnUnion(tables []Table) []string {
	seen := make(map[string]struct{})
	var columns []string
	for _, t := range tables {
		for _, name := range t.Columns {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				columns = append(columns, name)
			}
		}
	}
	sort.Strings(columns)
	return columns
}

// cleanRows re-trims cells, coerces missing markers and drops rows that are
// entirely empty afterwards. Column structure is left untouched.
func cleanRows(t Table) Table {
	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		out := make([]string, len(row))
		empty := true
		for i, cell := range row {
			out[i] = cleanCell(cell)
			if out[i] != "" {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, out)
		}
	}
	t.Rows = rows
	return t
}

// dedupeRows removes duplicate rows, keeping first occurrences in order.
func dedupeRows(t Table) Table {
	seen := make(map[string]struct{}, len(t.Rows))
	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		key := strings.Join(row, "\x1f")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, row)
	}
	t.Rows = rows
	return t
}
