package output

import (
	"encoding/json"
	"fmt"

	"github.com/pdftab/pdftab/internal/table"
)

// MarshalJSON serializes the table as an array of records keyed by column
// name. An empty table yields "[]".
func MarshalJSON(t table.Table) ([]byte, error) {
	records := make([]map[string]string, 0, t.RowCount())
	for _, row := range t.Rows {
		record := make(map[string]string, t.ColumnCount())
		for i, name := range t.Columns {
			if i < len(row) {
				record[name] = row[i]
			} else {
				record[name] = ""
			}
		}
		records = append(records, record)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize JSON: %w", err)
	}
	return append(data, '\n'), nil
}
