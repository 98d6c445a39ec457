package pageset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		selector  string
		pageCount int
		want      []int
		wantErr   bool
	}{
		{name: "empty selects all", selector: "", pageCount: 3, want: []int{0, 1, 2}},
		{name: "all keyword", selector: "all", pageCount: 2, want: []int{0, 1}},
		{name: "all uppercase", selector: "ALL", pageCount: 2, want: []int{0, 1}},
		{name: "single page", selector: "3", pageCount: 5, want: []int{2}},
		{name: "simple range", selector: "1-5", pageCount: 10, want: []int{0, 1, 2, 3, 4}},
		{name: "open range with end keyword", selector: "2-end", pageCount: 4, want: []int{1, 2, 3}},
		{name: "open range bare dash", selector: "2-", pageCount: 4, want: []int{1, 2, 3}},
		{name: "comma list", selector: "1,3,5", pageCount: 10, want: []int{0, 2, 4}},
		{name: "mixed list and range", selector: "1,3-4", pageCount: 10, want: []int{0, 2, 3}},
		{name: "overlap deduplicated", selector: "1-3,2-4", pageCount: 10, want: []int{0, 1, 2, 3}},
		{name: "listed order preserved", selector: "3,1", pageCount: 5, want: []int{2, 0}},
		{name: "listed order with range", selector: "5,1-2", pageCount: 10, want: []int{4, 0, 1}},
		{name: "repeat keeps first position", selector: "3,1,3", pageCount: 5, want: []int{2, 0}},
		{name: "out of range clipped", selector: "3-9", pageCount: 4, want: []int{2, 3}},
		{name: "whitespace tolerated", selector: " 1 , 3 ", pageCount: 5, want: []int{0, 2}},
		{name: "garbage", selector: "abc", wantErr: true},
		{name: "zero page", selector: "0", wantErr: true},
		{name: "negative start", selector: "-2-3", wantErr: true},
		{name: "end before start", selector: "5-2", wantErr: true},
		{name: "empty token", selector: "1,,3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := Parse(tt.selector)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, sel.Resolve(tt.pageCount))
		})
	}
}

func TestSelectionString(t *testing.T) {
	sel, err := Parse("1-5")
	require.NoError(t, err)
	assert.Equal(t, "1-5", sel.String())

	sel, err = Parse("")
	require.NoError(t, err)
	assert.Equal(t, "all", sel.String())

	assert.Equal(t, "all", Selection{}.String())
}

func TestResolveEmptyDocument(t *testing.T) {
	sel, err := Parse("1-3")
	require.NoError(t, err)
	assert.Nil(t, sel.Resolve(0))
	assert.Nil(t, Selection{}.Resolve(0))
}

func TestFirst(t *testing.T) {
	sel := First(1)
	assert.False(t, sel.All())
	assert.Equal(t, []int{0}, sel.Resolve(10))
	assert.Equal(t, "1", sel.String())
}
