package extract

import (
	"testing"

	lpdf "github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frag(s string, x, y float64) lpdf.Text {
	return lpdf.Text{S: s, X: x, Y: y, W: float64(len(s)) * 5, FontSize: 10}
}

func TestGroupTextRows(t *testing.T) {
	texts := []lpdf.Text{
		frag("Age", 200, 700),
		frag("Name", 50, 700.5), // same row within tolerance
		frag("25", 200, 680),
		frag("John", 50, 680),
		frag("  ", 10, 660), // whitespace-only fragments are ignored
	}

	rows := groupTextRows(texts)
	require.Len(t, rows, 2)

	// Rows ordered top-to-bottom, fragments left-to-right.
	assert.Equal(t, "Name", rows[0].fragments[0].S)
	assert.Equal(t, "Age", rows[0].fragments[1].S)
	assert.Equal(t, "John", rows[1].fragments[0].S)
}

func TestSplitRowCellsMergesAdjacentFragments(t *testing.T) {
	// "John" and "Doe" nearly touch; "25" sits far to the right.
	row := textRow{y: 700, fragments: []lpdf.Text{
		frag("John", 50, 700),
		frag("Doe", 71, 700), // starts 1pt after "John" ends
		frag("25", 200, 700),
	}}

	cells := splitRowCells(row)
	assert.Equal(t, []string{"John Doe", "25"}, cells)
}

func TestRowsToTable(t *testing.T) {
	rows := []textRow{
		{y: 700, fragments: []lpdf.Text{frag("Name", 50, 700), frag("Age", 200, 700)}},
		{y: 680, fragments: []lpdf.Text{frag("John", 50, 680), frag("25", 200, 680)}},
		{y: 660, fragments: []lpdf.Text{frag("footer", 50, 660)}}, // single cell, skipped
	}

	tbl, ok := rowsToTable(rows)
	require.True(t, ok)
	assert.Equal(t, []string{"Name", "Age"}, tbl.Columns)
	assert.Equal(t, [][]string{{"John", "25"}}, tbl.Rows)
}

func TestRowsToTableRejectsNonTabularPages(t *testing.T) {
	rows := []textRow{
		{y: 700, fragments: []lpdf.Text{frag("Heading", 50, 700)}},
		{y: 680, fragments: []lpdf.Text{frag("prose", 50, 680)}},
	}
	_, ok := rowsToTable(rows)
	assert.False(t, ok)
}
