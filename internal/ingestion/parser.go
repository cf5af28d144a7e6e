package ingestion

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/devanshdp04/E-commerceanalysis/internal/domain/models"
)

// timestampLayouts are tried in order when parsing InvoiceDate. Spreadsheet
// readers format date cells differently depending on the cell style, and the
// cleaned CSV uses the first layout.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04",
	"1/2/06 15:04",
	"01-02-06 15:04",
	"2006-01-02",
}

// TimestampLayout is the canonical InvoiceDate format of the cleaned table.
const TimestampLayout = "2006-01-02 15:04:05"

// RecordToTransaction converts a single record (already validated to be 8 or
// 9 cells wide) into a models.Transaction. It is STRICT about malformed
// values but TOLERATES empty cells, mapping them to zero values; cleaning is
// responsible for dropping incomplete rows.
//
// Column order:
//
//	0 Invoice      → Invoice (string)
//	1 StockCode    → StockCode (string)
//	2 Description  → Description (string)
//	3 Quantity     → Quantity (int64; integral floats like "6.0" accepted)
//	4 InvoiceDate  → InvoiceDate (one of timestampLayouts)
//	5 Price        → Price (float64)
//	6 Customer ID  → CustomerID (string, kept verbatim)
//	7 Country      → Country (string)
//	8 TotalAmount  → TotalAmount (float64, only when present)
func RecordToTransaction(rec []string) (models.Transaction, error) {
	var t models.Transaction

	t.Invoice = strings.TrimSpace(rec[0])
	t.StockCode = strings.TrimSpace(rec[1])
	t.Description = strings.TrimSpace(rec[2])

	// Quantity (3) — may be empty
	if s := strings.TrimSpace(rec[3]); s != "" {
		v, err := parseQuantity(s)
		if err != nil {
			return t, fmt.Errorf("invalid Quantity: %v", err)
		}
		t.Quantity = v
	}

	// InvoiceDate (4) — may be empty
	if s := strings.TrimSpace(rec[4]); s != "" {
		d, err := parseTimestamp(s)
		if err != nil {
			return t, fmt.Errorf("invalid InvoiceDate: %v", err)
		}
		t.InvoiceDate = d
	}

	// Price (5) — may be empty
	if s := strings.TrimSpace(rec[5]); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return t, fmt.Errorf("invalid Price: %v", err)
		}
		t.Price = v
	}

	t.CustomerID = strings.TrimSpace(rec[6])
	t.Country = strings.TrimSpace(rec[7])

	// TotalAmount (8) — present only on cleaned tables; recomputed anyway
	if len(rec) > 8 {
		if s := strings.TrimSpace(rec[8]); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return t, fmt.Errorf("invalid TotalAmount: %v", err)
			}
			t.TotalAmount = v
		}
	}

	return t, nil
}

// parseQuantity accepts plain integers and integral floats ("6", "6.0").
// Spreadsheet numeric cells often round-trip through a float representation.
func parseQuantity(s string) (int64, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return int64(f), nil
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
