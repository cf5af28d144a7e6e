package models

import (
	"strings"
	"time"
)

// CancellationMarker flags cancelled orders: any invoice identifier
// containing this character is treated as a cancellation. The match is
// deliberately anywhere in the identifier, matching the source dataset.
const CancellationMarker = "C"

// Transaction represents a single line item of a retail invoice.
// Each field matches one column of the input table.
//
// Column order:
//  1. Invoice
//  2. StockCode
//  3. Description
//  4. Quantity
//  5. InvoiceDate
//  6. Price
//  7. Customer ID
//  8. Country
//
// TotalAmount is derived during cleaning (Quantity × Price) and becomes the
// ninth column of the cleaned table.
type Transaction struct {
	Invoice     string
	StockCode   string
	Description string
	Quantity    int64
	InvoiceDate time.Time
	Price       float64
	CustomerID  string
	Country     string
	TotalAmount float64
}

// IsCancellation reports whether the invoice identifier carries the
// cancellation marker.
func (t Transaction) IsCancellation() bool {
	return strings.Contains(t.Invoice, CancellationMarker)
}
