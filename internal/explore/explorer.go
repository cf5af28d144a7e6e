// Package explore prints the human-readable dataset overview and insight
// report. It is purely observational: nothing here mutates the transaction
// set or feeds anything downstream.
package explore

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/devanshdp04/E-commerceanalysis/internal/analysis"
	"github.com/devanshdp04/E-commerceanalysis/internal/domain/models"
	"github.com/devanshdp04/E-commerceanalysis/internal/ingestion"
)

const (
	headRows   = 5
	sampleSize = 5
	topN       = 5
)

// Explorer writes dataset reports to w.
type Explorer struct {
	w   io.Writer
	rnd *rand.Rand
	p   *message.Printer
}

// NewExplorer returns an Explorer writing to w with a time-seeded sampler.
func NewExplorer(w io.Writer) *Explorer {
	return newExplorer(w, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newExplorer(w io.Writer, rnd *rand.Rand) *Explorer {
	return &Explorer{w: w, rnd: rnd, p: message.NewPrinter(language.BritishEnglish)}
}

// Overview prints the shape, head, per-column non-null and unique counts,
// and a small random sample per column.
func (e *Explorer) Overview(txs []models.Transaction) {
	cols := ingestion.CleanedHeaders()

	fmt.Fprintln(e.w, "=== Dataset Overview ===")
	fmt.Fprintf(e.w, "Shape: %d rows × %d columns\n", len(txs), len(cols))

	fmt.Fprintln(e.w, "\nFirst rows:")
	tw := tabwriter.NewWriter(e.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
	for i, t := range txs {
		if i >= headRows {
			break
		}
		fmt.Fprintln(tw, strings.Join(projectRow(t), "\t"))
	}
	_ = tw.Flush()

	fmt.Fprintln(e.w, "\nNon-null counts per column:")
	for _, c := range cols {
		// Every retained cell is populated after cleaning.
		fmt.Fprintf(e.w, "  %s: %d\n", c, len(txs))
	}

	fmt.Fprintln(e.w, "\nUnique values per column:")
	for _, c := range cols {
		vals := columnValues(txs, c)
		e.p.Fprintf(e.w, "  %s: %d unique values\n", c, uniqueCount(vals))
	}

	fmt.Fprintln(e.w, "\nSample values from each column:")
	for _, c := range cols {
		vals := columnValues(txs, c)
		fmt.Fprintf(e.w, "  %s: %v\n", c, e.sample(vals))
	}
}

// Insights prints the aggregate statistics: date range, top countries and
// products, revenue stats, and unique customer/product counts.
func (e *Explorer) Insights(txs []models.Transaction) {
	fmt.Fprintln(e.w, "\n=== Basic Insights ===")

	min, max := analysis.DateRange(txs)
	fmt.Fprintf(e.w, "Date Range: %s to %s\n",
		min.Format(ingestion.TimestampLayout), max.Format(ingestion.TimestampLayout))

	fmt.Fprintf(e.w, "\nTop %d Countries by Transactions:\n", topN)
	countries := analysis.CountryBreakdown(txs)
	for _, c := range analysis.TopCountriesByTransactions(countries, topN) {
		e.p.Fprintf(e.w, "  %s: %d\n", c.Country, c.Transactions)
	}

	fmt.Fprintf(e.w, "\nTop %d Products by Quantity Sold:\n", topN)
	for _, pq := range analysis.TopProductsByQuantity(txs, topN) {
		e.p.Fprintf(e.w, "  %s: %d\n", pq.Description, pq.Quantity)
	}

	revenues := analysis.Revenues(txs)
	fmt.Fprintln(e.w, "\nRevenue Statistics:")
	e.p.Fprintf(e.w, "  Total Revenue: £%.2f\n", analysis.Sum(revenues))
	e.p.Fprintf(e.w, "  Average Transaction Value: £%.2f\n", analysis.Mean(revenues))
	e.p.Fprintf(e.w, "  Median Transaction Value: £%.2f\n", analysis.Median(revenues))

	e.p.Fprintf(e.w, "\nTotal Unique Customers: %d\n", uniqueCount(columnValues(txs, "Customer ID")))
	e.p.Fprintf(e.w, "Total Unique Products: %d\n", uniqueCount(columnValues(txs, "StockCode")))
}

// sample picks up to sampleSize random values without replacement.
func (e *Explorer) sample(vals []string) []string {
	n := sampleSize
	if len(vals) < n {
		n = len(vals)
	}
	idx := e.rnd.Perm(len(vals))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = vals[j]
	}
	return out
}

func uniqueCount(vals []string) int {
	seen := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// columnValues projects one named column as strings.
func columnValues(txs []models.Transaction, col string) []string {
	out := make([]string, len(txs))
	for i, t := range txs {
		switch col {
		case "Invoice":
			out[i] = t.Invoice
		case "StockCode":
			out[i] = t.StockCode
		case "Description":
			out[i] = t.Description
		case "Quantity":
			out[i] = strconv.FormatInt(t.Quantity, 10)
		case "InvoiceDate":
			out[i] = t.InvoiceDate.Format(ingestion.TimestampLayout)
		case "Price":
			out[i] = strconv.FormatFloat(t.Price, 'f', -1, 64)
		case "Customer ID":
			out[i] = t.CustomerID
		case "Country":
			out[i] = t.Country
		case "TotalAmount":
			out[i] = strconv.FormatFloat(t.TotalAmount, 'f', -1, 64)
		}
	}
	return out
}

func projectRow(t models.Transaction) []string {
	return []string{
		t.Invoice,
		t.StockCode,
		t.Description,
		strconv.FormatInt(t.Quantity, 10),
		t.InvoiceDate.Format(ingestion.TimestampLayout),
		strconv.FormatFloat(t.Price, 'f', -1, 64),
		t.CustomerID,
		t.Country,
		strconv.FormatFloat(t.TotalAmount, 'f', -1, 64),
	}
}
