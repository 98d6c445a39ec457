package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableBasics(t *testing.T) {
	tbl := New([]string{"Name", "Age"}, [][]string{{"John", "25"}})

	assert.Equal(t, 1, tbl.RowCount())
	assert.Equal(t, 2, tbl.ColumnCount())
	assert.False(t, tbl.IsEmpty())
	assert.Equal(t, 0, tbl.ColumnIndex("Name"))
	assert.Equal(t, -1, tbl.ColumnIndex("missing"))
	assert.Equal(t, "25", tbl.Cell(0, 1))
	assert.Equal(t, "", tbl.Cell(5, 0))
	assert.Equal(t, "", tbl.Cell(0, 5))
}

func TestTableClone(t *testing.T) {
	tbl := New([]string{"A"}, [][]string{{"1"}})
	clone := tbl.Clone()
	clone.Columns[0] = "B"
	clone.Rows[0][0] = "2"

	assert.Equal(t, "A", tbl.Columns[0])
	assert.Equal(t, "1", tbl.Rows[0][0])
}

func TestEmptyTable(t *testing.T) {
	var tbl Table
	assert.True(t, tbl.IsEmpty())
	assert.Equal(t, 0, tbl.RowCount())
	assert.Equal(t, 0, tbl.ColumnCount())
}
