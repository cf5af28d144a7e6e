// Package analysis computes the grouped aggregates the explorer and the
// chart renderers consume. Every function takes the cleaned transaction set
// as an explicit argument and never mutates it.
package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/devanshdp04/E-commerceanalysis/internal/domain/models"
)

// weekdayOrder fixes Monday-first ordering for weekday groupings.
var weekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// WeekdayNames returns the Monday-first day names used by weekday groupings.
func WeekdayNames() []string {
	out := make([]string, len(weekdayOrder))
	for i, d := range weekdayOrder {
		out[i] = d.String()
	}
	return out
}

// MonthKey formats a timestamp as the calendar-month grouping key.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthlySales sums TotalAmount per calendar month, sorted chronologically.
func MonthlySales(txs []models.Transaction) []models.MonthlySale {
	totals := map[string]float64{}
	for _, t := range txs {
		totals[MonthKey(t.InvoiceDate)] += t.TotalAmount
	}

	out := make([]models.MonthlySale, 0, len(totals))
	for m, v := range totals {
		out = append(out, models.MonthlySale{Month: m, Total: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// WeekdayAverages returns the mean transaction value per day of week in
// Monday-first order. Days with no transactions average to zero.
func WeekdayAverages(txs []models.Transaction) []models.WeekdayAverage {
	sums := map[time.Weekday]float64{}
	counts := map[time.Weekday]int{}
	for _, t := range txs {
		d := t.InvoiceDate.Weekday()
		sums[d] += t.TotalAmount
		counts[d]++
	}

	out := make([]models.WeekdayAverage, 0, len(weekdayOrder))
	for _, d := range weekdayOrder {
		avg := 0.0
		if c := counts[d]; c > 0 {
			avg = sums[d] / float64(c)
		}
		out = append(out, models.WeekdayAverage{Day: d.String(), Average: avg})
	}
	return out
}

// SalesByDayHour sums TotalAmount into a day-of-week × hour matrix.
// Rows follow Monday-first order; columns are hours 0..23.
func SalesByDayHour(txs []models.Transaction) (days []string, cells [][]float64) {
	days = WeekdayNames()
	cells = make([][]float64, len(weekdayOrder))
	for i := range cells {
		cells[i] = make([]float64, 24)
	}

	rowOf := map[time.Weekday]int{}
	for i, d := range weekdayOrder {
		rowOf[d] = i
	}
	for _, t := range txs {
		cells[rowOf[t.InvoiceDate.Weekday()]][t.InvoiceDate.Hour()] += t.TotalAmount
	}
	return days, cells
}

// HourlyAverages returns the mean transaction value per hour of day for the
// hours that actually occur, sorted ascending.
func HourlyAverages(txs []models.Transaction) []models.HourlyAverage {
	sums := map[int]float64{}
	counts := map[int]int{}
	for _, t := range txs {
		h := t.InvoiceDate.Hour()
		sums[h] += t.TotalAmount
		counts[h]++
	}

	out := make([]models.HourlyAverage, 0, len(sums))
	for h, s := range sums {
		out = append(out, models.HourlyAverage{Hour: h, Average: s / float64(counts[h])})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour < out[j].Hour })
	return out
}

// TopProductsByRevenue sums TotalAmount per product description and returns
// the n largest, sorted ascending so horizontal bar charts read bottom-up.
func TopProductsByRevenue(txs []models.Transaction, n int) []models.ProductRevenue {
	totals := map[string]float64{}
	for _, t := range txs {
		totals[t.Description] += t.TotalAmount
	}

	all := make([]models.ProductRevenue, 0, len(totals))
	for d, v := range totals {
		all = append(all, models.ProductRevenue{Description: d, Revenue: v})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Revenue != all[j].Revenue {
			return all[i].Revenue < all[j].Revenue
		}
		return all[i].Description < all[j].Description
	})
	if n < len(all) {
		all = all[len(all)-n:]
	}
	return all
}

// TopProductsByQuantity sums Quantity per product description and returns
// the n largest in descending order.
func TopProductsByQuantity(txs []models.Transaction, n int) []models.ProductQuantity {
	totals := map[string]int64{}
	for _, t := range txs {
		totals[t.Description] += t.Quantity
	}

	all := make([]models.ProductQuantity, 0, len(totals))
	for d, v := range totals {
		all = append(all, models.ProductQuantity{Description: d, Quantity: v})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Quantity != all[j].Quantity {
			return all[i].Quantity > all[j].Quantity
		}
		return all[i].Description < all[j].Description
	})
	if n < len(all) {
		all = all[:n]
	}
	return all
}

// CountryBreakdown aggregates revenue, distinct invoices (orders), and line
// items per country, sorted by country name.
func CountryBreakdown(txs []models.Transaction) []models.CountryStat {
	sales := map[string]float64{}
	lines := map[string]int{}
	invoices := map[string]map[string]struct{}{}
	for _, t := range txs {
		sales[t.Country] += t.TotalAmount
		lines[t.Country]++
		if invoices[t.Country] == nil {
			invoices[t.Country] = map[string]struct{}{}
		}
		invoices[t.Country][t.Invoice] = struct{}{}
	}

	out := make([]models.CountryStat, 0, len(sales))
	for c := range sales {
		out = append(out, models.CountryStat{
			Country:      c,
			Sales:        sales[c],
			Orders:       len(invoices[c]),
			Transactions: lines[c],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Country < out[j].Country })
	return out
}

// TopCountriesBySales returns the n highest-revenue countries, ascending.
func TopCountriesBySales(stats []models.CountryStat, n int) []models.CountryStat {
	out := append([]models.CountryStat(nil), stats...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sales != out[j].Sales {
			return out[i].Sales < out[j].Sales
		}
		return out[i].Country < out[j].Country
	})
	if n < len(out) {
		out = out[len(out)-n:]
	}
	return out
}

// TopCountriesByOrders returns the n countries with the most distinct
// invoices, ascending.
func TopCountriesByOrders(stats []models.CountryStat, n int) []models.CountryStat {
	out := append([]models.CountryStat(nil), stats...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Orders != out[j].Orders {
			return out[i].Orders < out[j].Orders
		}
		return out[i].Country < out[j].Country
	})
	if n < len(out) {
		out = out[len(out)-n:]
	}
	return out
}

// TopCountriesByTransactions returns the n countries with the most line
// items, descending.
func TopCountriesByTransactions(stats []models.CountryStat, n int) []models.CountryStat {
	out := append([]models.CountryStat(nil), stats...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Transactions != out[j].Transactions {
			return out[i].Transactions > out[j].Transactions
		}
		return out[i].Country < out[j].Country
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// BasketSizes sums quantities per invoice, sorted by invoice identifier.
func BasketSizes(txs []models.Transaction) []models.BasketSize {
	totals := map[string]int64{}
	for _, t := range txs {
		totals[t.Invoice] += t.Quantity
	}

	out := make([]models.BasketSize, 0, len(totals))
	for inv, q := range totals {
		out = append(out, models.BasketSize{Invoice: inv, Quantity: q})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Invoice < out[j].Invoice })
	return out
}

// Revenues projects the TotalAmount column.
func Revenues(txs []models.Transaction) []float64 {
	out := make([]float64, len(txs))
	for i, t := range txs {
		out[i] = t.TotalAmount
	}
	return out
}

// DateRange returns the earliest and latest invoice timestamps.
func DateRange(txs []models.Transaction) (min, max time.Time) {
	for i, t := range txs {
		if i == 0 || t.InvoiceDate.Before(min) {
			min = t.InvoiceDate
		}
		if i == 0 || t.InvoiceDate.After(max) {
			max = t.InvoiceDate
		}
	}
	return min, max
}

// Histogram bins integer values into `bins` equal-width buckets and returns
// a "lo–hi" label plus a count per bucket.
func Histogram(values []int64, bins int) (labels []string, counts []int) {
	if len(values) == 0 || bins <= 0 {
		return nil, nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo + 1
	if int64(bins) > span {
		bins = int(span)
	}
	width := float64(span) / float64(bins)

	counts = make([]int, bins)
	for _, v := range values {
		idx := int(float64(v-lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	labels = make([]string, bins)
	for i := range labels {
		bLo := lo + int64(float64(i)*width)
		bHi := lo + int64(float64(i+1)*width) - 1
		if bHi < bLo {
			bHi = bLo
		}
		labels[i] = fmt.Sprintf("%d–%d", bLo, bHi)
	}
	return labels, counts
}
