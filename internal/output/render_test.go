package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pdftab/pdftab/internal/table"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)
	assert.Equal(t, ".xlsx", f.Ext())

	_, err = ParseFormat("parquet")
	require.Error(t, err)
}

func TestRenderCSV(t *testing.T) {
	data, err := Render(namesTable(), FormatCSV, DefaultCSVOptions())
	require.NoError(t, err)
	assert.Equal(t, "Name,Age\nJohn Doe,25\nJane Smith,30\n", string(data))
}

func TestRenderJSON(t *testing.T) {
	data, err := Render(namesTable(), FormatJSON, CSVOptions{})
	require.NoError(t, err)

	var records []map[string]string
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 2)
	assert.Equal(t, "John Doe", records[0]["Name"])
	assert.Equal(t, "30", records[1]["Age"])
}

func TestRenderJSONEmptyTable(t *testing.T) {
	data, err := MarshalJSON(table.Table{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(bytes.TrimSpace(data)))
}

func TestRenderXLSXRoundTrip(t *testing.T) {
	data, err := Render(namesTable(), FormatXLSX, CSVOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Age"}, rows[0])
	assert.Equal(t, []string{"John Doe", "25"}, rows[1])
}

func TestWriteFileCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "nested", "result.csv")

	require.NoError(t, WriteFile(path, []byte("A,B\n1,2\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A,B\n1,2\n", string(data))
}
