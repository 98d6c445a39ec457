package extract

import (
	"fmt"
	"regexp"
	"strings"

	dpdf "github.com/dslipak/pdf"

	"github.com/pdftab/pdftab/internal/pageset"
	"github.com/pdftab/pdftab/internal/table"
)

// textBackend extracts plain page text and scans it for table-like line
// structure. It is the fallback of last resort and cannot be disabled;
// on pages without tabular text it simply finds nothing.
type textBackend struct{}

func (b *textBackend) Method() Method {
	return MethodText
}

func (b *textBackend) Available() bool {
	return true
}

func (b *textBackend) Extract(path string, sel pageset.Selection, _ Options) (result []table.Table, err error) {
	// The underlying parser panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("text extraction failed: %v", r)
		}
	}()

	r, err := dpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %q: %w", path, err)
	}

	for _, idx := range sel.Resolve(r.NumPage()) {
		page := r.Page(idx + 1)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d of %q: %w", idx+1, path, err)
		}
		if t, ok := scanTextTable(text); ok {
			result = append(result, t)
		}
	}
	return result, nil
}

var multiSpace = regexp.MustCompile(`\s{2,}`)

// scanTextTable applies a line-structure heuristic to page text: lines are
// split on tabs, pipes or runs of spaces; lines whose cell count reaches at
// least half of the widest line form the table; the first such line becomes
// the header. Returns false when fewer than two table lines remain.
func scanTextTable(text string) (table.Table, bool) {
	var candidates [][]string
	maxCols := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cells := splitTextLine(line)
		if len(cells) < 2 {
			continue
		}
		candidates = append(candidates, cells)
		if len(cells) > maxCols {
			maxCols = len(cells)
		}
	}
	if len(candidates) < 2 {
		return table.Table{}, false
	}

	minCols := maxCols / 2
	if minCols < 2 {
		minCols = 2
	}

	var grid [][]string
	for _, cells := range candidates {
		if len(cells) < minCols {
			continue
		}
		for len(cells) < maxCols {
			cells = append(cells, "")
		}
		grid = append(grid, cells)
	}
	if len(grid) < 2 {
		return table.Table{}, false
	}
	return table.Table{Columns: grid[0], Rows: grid[1:]}, true
}

// splitTextLine splits a line into cells on the strongest separator present:
// tabs first, then pipes, then runs of two or more spaces.
func splitTextLine(line string) []string {
	var parts []string
	switch {
	case strings.Contains(line, "\t"):
		parts = strings.Split(line, "\t")
	case strings.Contains(line, "|"):
		parts = strings.Split(line, "|")
	default:
		parts = multiSpace.Split(line, -1)
	}

	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cells = append(cells, p)
		}
	}
	return cells
}
