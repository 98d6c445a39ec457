package table

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// cellPool includes whitespace padding and missing markers so normalization
// paths get exercised, not just the happy case.
var cellPool = []string{"", " ", "nan", "NaN", "null", "x", " y ", "John Doe", "25", "total"}

func randomTable(cols, rows int, seed int64) Table {
	rng := rand.New(rand.NewSource(seed))
	t := Table{}
	for c := 0; c < cols; c++ {
		t.Columns = append(t.Columns, cellPool[rng.Intn(len(cellPool))])
	}
	for r := 0; r < rows; r++ {
		row := make([]string, cols)
		for c := range row {
			row[c] = cellPool[rng.Intn(len(cellPool))]
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func TestNormalizeProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("normalize is idempotent", prop.ForAll(
		func(cols, rows int, seed int64) bool {
			once := Normalize(randomTable(cols, rows, seed))
			twice := Normalize(once)
			return reflect.DeepEqual(once, twice)
		},
		gen.IntRange(0, 6),
		gen.IntRange(0, 8),
		gen.Int64(),
	))

	properties.Property("normalized tables are rectangular with unique columns", prop.ForAll(
		func(cols, rows int, seed int64) bool {
			n := Normalize(randomTable(cols, rows, seed))
			seen := make(map[string]bool)
			for _, col := range n.Columns {
				if col == "" || seen[col] {
					return false
				}
				seen[col] = true
			}
			for _, row := range n.Rows {
				if len(row) != len(n.Columns) {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 6),
		gen.IntRange(0, 8),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
