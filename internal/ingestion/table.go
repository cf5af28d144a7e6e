package ingestion

import (
	"fmt"
	"strings"
)

// rawHeaders enforces strict column ordering for the retail transactions
// table. If the header doesn't match EXACTLY (order + count), loading must
// fail.
var rawHeaders = []string{
	"Invoice",
	"StockCode",
	"Description",
	"Quantity",
	"InvoiceDate",
	"Price",
	"Customer ID",
	"Country",
}

// derivedHeader is the column appended by cleaning. A table carrying it is
// accepted on input so cleaning can be re-run over its own output.
const derivedHeader = "TotalAmount"

// Table is a loaded tabular file: a validated header plus raw string cells.
// Cells are kept as strings until cleaning decides which rows survive, so
// missing-value checks see exactly what the file contained.
type Table struct {
	Columns []string
	Rows    [][]string
}

// HasDerived reports whether the table carries the TotalAmount column.
func (t *Table) HasDerived() bool {
	return len(t.Columns) == len(rawHeaders)+1
}

// RawHeaders returns the expected raw column names in order.
func RawHeaders() []string {
	out := make([]string, len(rawHeaders))
	copy(out, rawHeaders)
	return out
}

// CleanedHeaders returns the raw column names plus the derived column.
func CleanedHeaders() []string {
	return append(RawHeaders(), derivedHeader)
}

// validateHeader checks a header row against the raw layout, optionally
// followed by the derived TotalAmount column. It returns the normalized
// (trimmed) column names.
func validateHeader(header []string) ([]string, error) {
	n := len(header)
	if n != len(rawHeaders) && n != len(rawHeaders)+1 {
		return nil, fmt.Errorf("invalid header length: expected %d or %d, got %d",
			len(rawHeaders), len(rawHeaders)+1, n)
	}

	cols := make([]string, 0, n)
	for i, h := range header {
		want := derivedHeader
		if i < len(rawHeaders) {
			want = rawHeaders[i]
		}
		got := strings.TrimSpace(h)
		if got != want {
			return nil, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, want, got)
		}
		cols = append(cols, got)
	}
	return cols, nil
}
