package extract

import (
	"fmt"
	"math"
	"sort"
	"strings"

	lpdf "github.com/ledongthuc/pdf"

	"github.com/pdftab/pdftab/internal/pageset"
	"github.com/pdftab/pdftab/internal/table"
)

// rowTolerance is the maximum vertical distance (points) between fragments
// considered to be on the same text row.
const rowTolerance = 2.0

// pageTextBackend reconstructs tables from positioned page text: fragments
// are grouped into rows by Y coordinate and split into cells at horizontal
// gaps. One table per page, at most.
type pageTextBackend struct {
	enabled bool
}

func (b *pageTextBackend) Method() Method {
	return MethodPageText
}

func (b *pageTextBackend) Available() bool {
	return b.enabled
}

func (b *pageTextBackend) Extract(path string, sel pageset.Selection, _ Options) (result []table.Table, err error) {
	// The underlying parser panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("page text extraction failed: %v", r)
		}
	}()

	f, r, err := lpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	for _, idx := range sel.Resolve(r.NumPage()) {
		page := r.Page(idx + 1)
		if page.V.IsNull() {
			continue
		}

		rows := groupTextRows(page.Content().Text)
		if t, ok := rowsToTable(rows); ok {
			result = append(result, t)
		}
	}
	return result, nil
}

// textRow is one horizontal line of positioned fragments.
type textRow struct {
	y         float64
	fragments []lpdf.Text
}

// groupTextRows buckets fragments into rows by vertical proximity and orders
// them top-to-bottom, left-to-right.
func groupTextRows(texts []lpdf.Text) []textRow {
	var rows []textRow

	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		placed := false
		for i := range rows {
			if math.Abs(rows[i].y-t.Y) < rowTolerance {
				rows[i].fragments = append(rows[i].fragments, t)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, textRow{y: t.Y, fragments: []lpdf.Text{t}})
		}
	}

	// PDF coordinates grow upward; higher Y means earlier on the page.
	sort.Slice(rows, func(i, j int) bool { return rows[i].y > rows[j].y })
	for i := range rows {
		frags := rows[i].fragments
		sort.Slice(frags, func(a, b int) bool { return frags[a].X < frags[b].X })
	}
	return rows
}

// splitRowCells merges adjacent fragments into cells, starting a new cell at
// horizontal gaps wider than roughly one character.
func splitRowCells(row textRow) []string {
	var cells []string
	var current strings.Builder
	var prevEnd float64

	for i, frag := range row.fragments {
		gap := frag.X - prevEnd
		threshold := math.Max(4.0, frag.FontSize*0.5)

		if i > 0 && gap > threshold {
			cells = append(cells, strings.TrimSpace(current.String()))
			current.Reset()
		} else if i > 0 && gap > 0.1 {
			current.WriteString(" ")
		}
		current.WriteString(frag.S)
		prevEnd = frag.X + frag.W
	}
	if current.Len() > 0 {
		cells = append(cells, strings.TrimSpace(current.String()))
	}

	out := cells[:0]
	for _, c := range cells {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// rowsToTable builds a table from text rows when they look tabular: at least
// two rows with at least two cells each. The first row becomes the header.
func rowsToTable(rows []textRow) (table.Table, bool) {
	var grid [][]string
	width := 0
	for _, row := range rows {
		cells := splitRowCells(row)
		if len(cells) < 2 {
			continue
		}
		grid = append(grid, cells)
		if len(cells) > width {
			width = len(cells)
		}
	}
	if len(grid) < 2 {
		return table.Table{}, false
	}

	for i, row := range grid {
		for len(row) < width {
			row = append(row, "")
		}
		grid[i] = row
	}
	return table.Table{Columns: grid[0], Rows: grid[1:]}, true
}
