// Package extract implements table extraction from PDF files through a set
// of interchangeable backends, a selector that probes them, and a
// coordinator that drives a single extraction end to end.
package extract

import "fmt"

// Method identifies an extraction backend.
type Method string

const (
	// MethodAuto probes the backends and picks the first that finds tables.
	MethodAuto Method = "auto"
	// MethodLattice detects tables from ruling lines.
	MethodLattice Method = "lattice"
	// MethodGrid detects tables from whitespace structure and reports a
	// per-table confidence score.
	MethodGrid Method = "grid"
	// MethodPageText reconstructs tables from positioned page text rows.
	MethodPageText Method = "pagetext"
	// MethodText scans plain page text for table-like line structure. It is
	// always available and degrades to zero tables.
	MethodText Method = "text"
)

// probeOrder is the fixed order auto-selection tries backends in. The text
// backend is the fallback and never probed.
var probeOrder = []Method{MethodLattice, MethodGrid, MethodPageText}

// ParseMethod parses a method name as used on the command line and in config.
// The empty string means auto.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case "", MethodAuto:
		return MethodAuto, nil
	case MethodLattice, MethodGrid, MethodPageText, MethodText:
		return Method(s), nil
	default:
		return "", fmt.Errorf("unknown extraction method: %q (valid: auto, lattice, grid, pagetext, text)", s)
	}
}

func (m Method) String() string {
	return string(m)
}
