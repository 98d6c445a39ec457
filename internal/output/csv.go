// Package output serializes extracted tables to CSV, XLSX and JSON and
// validates generated CSV data.
package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/pdftab/pdftab/internal/table"
)

// CSVOptions control CSV serialization.
type CSVOptions struct {
	// Delimiter is the field separator.
	Delimiter rune
	// Header controls whether the column names are written as the first line.
	Header bool
	// Encoding is the output character encoding by IANA name. Empty or
	// "utf-8" writes UTF-8 directly.
	Encoding string
}

// DefaultCSVOptions returns the standard comma/header/UTF-8 options.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{Delimiter: ',', Header: true, Encoding: "utf-8"}
}

// MarshalCSV serializes the table. Every row is newline-terminated and cells
// are quoted only when the delimiter, quotes or newlines require it. A table
// without data rows yields zero-length output even when a header was
// requested.
func MarshalCSV(t table.Table, opts CSVOptions) ([]byte, error) {
	if t.IsEmpty() {
		return nil, nil
	}
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = opts.Delimiter

	if opts.Header {
		if err := w.Write(t.Columns); err != nil {
			return nil, fmt.Errorf("failed to write CSV header: %w", err)
		}
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to serialize CSV: %w", err)
	}

	return encodeCharset(buf.Bytes(), opts.Encoding)
}

// encodeCharset transcodes UTF-8 data into the named encoding.
func encodeCharset(data []byte, name string) ([]byte, error) {
	if isUTF8(name) {
		return data, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported output encoding %q: %w", name, err)
	}
	encoded, err := enc.NewEncoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode output as %q: %w", name, err)
	}
	return encoded, nil
}

func isUTF8(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

// ValidEncoding reports whether the encoding name is usable for output.
func ValidEncoding(name string) bool {
	if isUTF8(name) {
		return true
	}
	_, err := htmlindex.Get(name)
	return err == nil
}
