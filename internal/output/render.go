package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdftab/pdftab/internal/fileutil"
	"github.com/pdftab/pdftab/internal/table"
)

// Format is an output file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
)

// ParseFormat parses an output format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format: %q (valid: csv, xlsx, json)", s)
	}
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Render serializes the table in the given format. CSV options apply only to
// the CSV format.
func Render(t table.Table, format Format, csvOpts CSVOptions) ([]byte, error) {
	switch format {
	case FormatCSV:
		return MarshalCSV(t, csvOpts)
	case FormatXLSX:
		return MarshalXLSX(t)
	case FormatJSON:
		return MarshalJSON(t)
	default:
		return nil, fmt.Errorf("unknown output format: %q", format)
	}
}

// WriteFile writes serialized output, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if err := fileutil.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
