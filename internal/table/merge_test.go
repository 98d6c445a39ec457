package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMergePolicy(t *testing.T) {
	p, err := ParseMergePolicy("concat")
	require.NoError(t, err)
	assert.Equal(t, Concatenate, p)

	p, err = ParseMergePolicy(" UNION ")
	require.NoError(t, err)
	assert.Equal(t, UnionByColumn, p)

	_, err = ParseMergePolicy("zip")
	require.Error(t, err)
}

func TestMergeEmptyInput(t *testing.T) {
	got, err := Merge(nil, Concatenate, MergeOptions{})
	require.NoError(t, err)
	assert.Equal(t, Table{}, got)

	got, err = Merge([]Table{}, UnionByColumn, MergeOptions{})
	require.NoError(t, err)
	assert.Equal(t, Table{}, got)
}

func TestMergeUnknownPolicy(t *testing.T) {
	_, err := Merge([]Table{{Columns: []string{"A"}}}, MergePolicy("zip"), MergeOptions{})
	require.Error(t, err)
}

func TestConcatenateMatchingColumns(t *testing.T) {
	a := Table{Columns: []string{"Name", "Age"}, Rows: [][]string{{"John Doe", "25"}}}
	b := Table{Columns: []string{"Name", "Age"}, Rows: [][]string{{"Jane Smith", "30"}}}

	got, err := Merge([]Table{a, b}, Concatenate, MergeOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age"}, got.Columns)
	assert.Equal(t, [][]string{
		{"John Doe", "25"},
		{"Jane Smith", "30"},
	}, got.Rows)
}

func TestConcatenateAlignsByNameThenPosition(t *testing.T) {
	a := Table{Columns: []string{"Name", "Age"}, Rows: [][]string{{"John", "25"}}}
	// Same columns, swapped order: cells must follow the names.
	b := Table{Columns: []string{"Age", "Name"}, Rows: [][]string{{"30", "Jane"}}}
	// Unrelated columns: positional alignment.
	c := Table{Columns: []string{"X", "Y"}, Rows: [][]string{{"1", "2"}}}
	// Narrower table: missing cells become "".
	d := Table{Columns: []string{"Name"}, Rows: [][]string{{"Ann"}}}

	got, err := Merge([]Table{a, b, c, d}, Concatenate, MergeOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age"}, got.Columns)
	assert.Equal(t, [][]string{
		{"John", "25"},
		{"Jane", "30"},
		{"1", "2"},
		{"Ann", ""},
	}, got.Rows)
}

func TestUnionByColumnDisjoint(t *testing.T) {
	a := Table{Columns: []string{"A", "B"}, Rows: [][]string{{"1", "2"}}}
	b := Table{Columns: []string{"C", "D"}, Rows: [][]string{{"3", "4"}}}

	got, err := Merge([]Table{a, b}, UnionByColumn, MergeOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, got.Columns)
	assert.Equal(t, [][]string{
		{"1", "2", "", ""},
		{"", "", "3", "4"},
	}, got.Rows)
}

func TestUnionByColumnSortsNames(t *testing.T) {
	a := Table{Columns: []string{"Z", "A"}, Rows: [][]string{{"z1", "a1"}}}
	got, err := Merge([]Table{a}, UnionByColumn, MergeOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "Z"}, got.Columns)
	assert.Equal(t, [][]string{{"a1", "z1"}}, got.Rows)
}

func TestMergeCleanDropsRowsEmptiedByTrim(t *testing.T) {
	a := Table{Columns: []string{"A"}, Rows: [][]string{{" x "}, {"  "}, {"nan"}}}
	got, err := Merge([]Table{a}, Concatenate, MergeOptions{Clean: true})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"x"}}, got.Rows)
}

func TestMergeDedupeOnlyWhenRequested(t *testing.T) {
	a := Table{Columns: []string{"A"}, Rows: [][]string{{"1"}, {"1"}, {"2"}}}

	got, err := Merge([]Table{a}, Concatenate, MergeOptions{})
	require.NoError(t, err)
	assert.Len(t, got.Rows, 3)

	got, err = Merge([]Table{a}, Concatenate, MergeOptions{Dedupe: true})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1"}, {"2"}}, got.Rows)
}
