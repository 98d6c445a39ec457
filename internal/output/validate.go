package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// ValidationOptions tune CSV validation.
type ValidationOptions struct {
	// Delimiter used when parsing the data back.
	Delimiter rune
	// SparseThreshold is the empty-cell ratio (0..1) at which a sparsity
	// warning is emitted.
	SparseThreshold float64
	// MaxReportedLines caps how many inconsistent line numbers a warning
	// lists before summarizing the rest.
	MaxReportedLines int
}

// DefaultValidationOptions returns the standard thresholds: warn at 80%
// empty cells, list at most 5 inconsistent lines.
func DefaultValidationOptions() ValidationOptions {
	return ValidationOptions{Delimiter: ',', SparseThreshold: 0.8, MaxReportedLines: 5}
}

// ValidationReport is the outcome of validating serialized CSV data.
type ValidationReport struct {
	Valid               bool     `json:"valid"`
	Errors              []string `json:"errors"`
	Warnings            []string `json:"warnings"`
	RowCount    int `json:"row_count"`
	ColumnCount int `json:"column_count"`
	// EmptyCellPercentage is the share of empty data cells in percent (0..100).
	EmptyCellPercentage float64 `json:"empty_cell_percentage"`
}

// Validate parses CSV data back and reports structural problems. Errors make
// the data invalid; warnings (sparsity, empty columns, ragged lines) do not.
func Validate(data []byte, opts ValidationOptions) ValidationReport {
	report := ValidationReport{}
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	if opts.MaxReportedLines <= 0 {
		opts.MaxReportedLines = 5
	}

	if len(bytes.TrimSpace(data)) == 0 {
		report.Errors = append(report.Errors, "empty CSV data")
		return report
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = opts.Delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("CSV parsing failed: %v", err))
		return report
	}
	if len(records) == 0 {
		report.Errors = append(report.Errors, "empty CSV data")
		return report
	}

	header := records[0]
	rows := records[1:]
	report.ColumnCount = len(header)
	report.RowCount = len(rows)

	if len(rows) == 0 {
		report.Errors = append(report.Errors, "CSV contains a header but no data rows")
		return report
	}

	checkEmptyColumns(&report, header, rows)
	checkSparsity(&report, rows, opts.SparseThreshold)
	checkRaggedLines(&report, rows, len(header), opts.MaxReportedLines)

	report.Valid = len(report.Errors) == 0
	return report
}

// checkEmptyColumns warns about columns whose data cells are all empty.
func checkEmptyColumns(report *ValidationReport, header []string, rows [][]string) {
	empty := 0
	for col := range header {
		hasValue := false
		for _, row := range rows {
			if col < len(row) && strings.TrimSpace(row[col]) != "" {
				hasValue = true
				break
			}
		}
		if !hasValue {
			empty++
		}
	}
	if empty > 0 {
		report.Warnings = append(report.Warnings, fmt.Sprintf("found %d completely empty column(s)", empty))
	}
}

// checkSparsity computes the empty-cell ratio over the data rows and warns
// when it reaches the threshold.
func checkSparsity(report *ValidationReport, rows [][]string, threshold float64) {
	total := 0
	empty := 0
	for _, row := range rows {
		for _, cell := range row {
			total++
			if strings.TrimSpace(cell) == "" {
				empty++
			}
		}
	}
	if total == 0 {
		return
	}

	ratio := float64(empty) / float64(total)
	report.EmptyCellPercentage = ratio * 100
	if threshold > 0 && ratio >= threshold {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("data is %.0f%% empty cells", report.EmptyCellPercentage))
	}
}

// checkRaggedLines warns about data lines whose field count differs from the
// header, listing at most maxLines line numbers (1-based, header is line 1).
func checkRaggedLines(report *ValidationReport, rows [][]string, want, maxLines int) {
	var lines []string
	extra := 0
	for i, row := range rows {
		if len(row) == want {
			continue
		}
		if len(lines) < maxLines {
			lines = append(lines, fmt.Sprintf("%d", i+2))
		} else {
			extra++
		}
	}
	if len(lines) == 0 {
		return
	}

	msg := fmt.Sprintf("inconsistent field count on line(s) %s", strings.Join(lines, ", "))
	if extra > 0 {
		msg += fmt.Sprintf(" and %d more", extra)
	}
	report.Warnings = append(report.Warnings, msg)
}
