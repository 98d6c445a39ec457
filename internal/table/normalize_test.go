package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTrimsAndCoercesMarkers(t *testing.T) {
	in := Table{
		Columns: []string{" Name ", "Age"},
		Rows: [][]string{
			{"  John Doe ", "25"},
			{"nan", "NaN"},
			{"Jane Smith", "null"},
		},
	}
	got := Normalize(in)

	assert.Equal(t, []string{"Name", "Age"}, got.Columns)
	assert.Equal(t, [][]string{
		{"John Doe", "25"},
		{"Jane Smith", ""},
	}, got.Rows)
}

func TestNormalizePadsRaggedRows(t *testing.T) {
	in := Table{
		Columns: []string{"A", "B", "C"},
		Rows: [][]string{
			{"1"},
			{"2", "3", "4", "5"},
		},
	}
	got := Normalize(in)

	// The widest row sets the width; a name is synthesized for the extra column.
	assert.Equal(t, []string{"A", "B", "C", "column_4"}, got.Columns)
	for _, row := range got.Rows {
		assert.Len(t, row, 4)
	}
	assert.Equal(t, "5", got.Rows[1][3])
}

func TestNormalizeDropsEmptyRowsAndColumns(t *testing.T) {
	in := Table{
		Columns: []string{"A", "B", "C"},
		Rows: [][]string{
			{"1", "", "x"},
			{"", "", ""},
			{"2", " ", "y"},
		},
	}
	got := Normalize(in)

	assert.Equal(t, []string{"A", "C"}, got.Columns)
	assert.Equal(t, [][]string{{"1", "x"}, {"2", "y"}}, got.Rows)
}

func TestNormalizeKeepsColumnsWithoutRows(t *testing.T) {
	in := Table{Columns: []string{"A", "B"}}
	got := Normalize(in)
	assert.Equal(t, []string{"A", "B"}, got.Columns)
	assert.True(t, got.IsEmpty())
}

func TestNormalizeUniquifiesColumnNames(t *testing.T) {
	in := Table{
		Columns: []string{"A", "A", "A"},
		Rows:    [][]string{{"1", "2", "3"}},
	}
	got := Normalize(in)
	assert.Equal(t, []string{"A", "A_2", "A_3"}, got.Columns)
}

func TestNormalizeSynthesizesMissingColumnNames(t *testing.T) {
	in := Table{
		Columns: []string{"", "Name"},
		Rows:    [][]string{{"1", "John"}},
	}
	got := Normalize(in)
	assert.Equal(t, []string{"column_1", "Name"}, got.Columns)
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Equal(t, Table{}, Normalize(Table{}))
	assert.Equal(t, Table{}, Normalize(Table{Rows: [][]string{{}, {}}}))
}

func TestNormalizeIdempotent(t *testing.T) {
	in := Table{
		Columns: []string{" A ", "A", ""},
		Rows: [][]string{
			{" 1 ", "nan", ""},
			{"", "", ""},
			{"2", "3"},
		},
	}
	once := Normalize(in)
	twice := Normalize(once)
	assert.Equal(t, once, twice)
}
