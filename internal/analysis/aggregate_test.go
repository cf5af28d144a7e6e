package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devanshdp04/E-commerceanalysis/internal/domain/models"
)

// fixture covers two months, two countries, and two invoices on distinct
// weekdays/hours so every grouping has something to chew on.
func fixture() []models.Transaction {
	// Wed 2010-12-01 and Tue 2011-01-04.
	dec := time.Date(2010, 12, 1, 8, 26, 0, 0, time.UTC)
	jan := time.Date(2011, 1, 4, 13, 10, 0, 0, time.UTC)
	return []models.Transaction{
		{Invoice: "536365", StockCode: "85123A", Description: "HEART HOLDER", Quantity: 6, InvoiceDate: dec, Price: 2.55, CustomerID: "17850", Country: "United Kingdom", TotalAmount: 15.3},
		{Invoice: "536365", StockCode: "71053", Description: "METAL LANTERN", Quantity: 2, InvoiceDate: dec, Price: 3.39, CustomerID: "17850", Country: "United Kingdom", TotalAmount: 6.78},
		{Invoice: "537001", StockCode: "84879", Description: "BIRD ORNAMENT", Quantity: 32, InvoiceDate: jan, Price: 1.69, CustomerID: "13047", Country: "France", TotalAmount: 54.08},
	}
}

func TestMonthlySales(t *testing.T) {
	got := MonthlySales(fixture())
	require.Len(t, got, 2)
	assert.Equal(t, "2010-12", got[0].Month)
	assert.InDelta(t, 22.08, got[0].Total, 1e-9)
	assert.Equal(t, "2011-01", got[1].Month)
	assert.InDelta(t, 54.08, got[1].Total, 1e-9)
}

func TestWeekdayAverages(t *testing.T) {
	got := WeekdayAverages(fixture())
	require.Len(t, got, 7)
	assert.Equal(t, "Monday", got[0].Day)
	assert.Equal(t, "Sunday", got[6].Day)

	byDay := map[string]float64{}
	for _, w := range got {
		byDay[w.Day] = w.Average
	}
	assert.InDelta(t, (15.3+6.78)/2, byDay["Wednesday"], 1e-9)
	assert.InDelta(t, 54.08, byDay["Tuesday"], 1e-9)
	assert.Zero(t, byDay["Sunday"])
}

func TestSalesByDayHour(t *testing.T) {
	days, cells := SalesByDayHour(fixture())
	require.Len(t, days, 7)
	require.Len(t, cells, 7)
	// Wednesday is row 2 (Monday-first), hour 8.
	assert.InDelta(t, 22.08, cells[2][8], 1e-9)
	// Tuesday row 1, hour 13.
	assert.InDelta(t, 54.08, cells[1][13], 1e-9)
	assert.Zero(t, cells[0][0])
}

func TestHourlyAverages(t *testing.T) {
	got := HourlyAverages(fixture())
	require.Len(t, got, 2)
	assert.Equal(t, 8, got[0].Hour)
	assert.InDelta(t, (15.3+6.78)/2, got[0].Average, 1e-9)
	assert.Equal(t, 13, got[1].Hour)
}

func TestTopProductsByRevenue(t *testing.T) {
	got := TopProductsByRevenue(fixture(), 2)
	require.Len(t, got, 2)
	// Ascending: the biggest seller comes last.
	assert.Equal(t, "HEART HOLDER", got[0].Description)
	assert.Equal(t, "BIRD ORNAMENT", got[1].Description)
}

func TestTopProductsByQuantity(t *testing.T) {
	got := TopProductsByQuantity(fixture(), 2)
	require.Len(t, got, 2)
	assert.Equal(t, "BIRD ORNAMENT", got[0].Description)
	assert.EqualValues(t, 32, got[0].Quantity)
}

func TestCountryBreakdown(t *testing.T) {
	stats := CountryBreakdown(fixture())
	require.Len(t, stats, 2)

	byCountry := map[string]models.CountryStat{}
	for _, s := range stats {
		byCountry[s.Country] = s
	}
	uk := byCountry["United Kingdom"]
	assert.InDelta(t, 22.08, uk.Sales, 1e-9)
	assert.Equal(t, 1, uk.Orders) // two line items, one invoice
	assert.Equal(t, 2, uk.Transactions)

	top := TopCountriesBySales(stats, 1)
	require.Len(t, top, 1)
	assert.Equal(t, "France", top[0].Country)

	byTx := TopCountriesByTransactions(stats, 1)
	require.Len(t, byTx, 1)
	assert.Equal(t, "United Kingdom", byTx[0].Country)
}

func TestBasketSizes(t *testing.T) {
	got := BasketSizes(fixture())
	require.Len(t, got, 2)
	assert.Equal(t, "536365", got[0].Invoice)
	assert.EqualValues(t, 8, got[0].Quantity)
	assert.EqualValues(t, 32, got[1].Quantity)
}

func TestDateRange(t *testing.T) {
	min, max := DateRange(fixture())
	assert.Equal(t, 2010, min.Year())
	assert.Equal(t, 2011, max.Year())
}

func TestHistogram(t *testing.T) {
	labels, counts := Histogram([]int64{1, 1, 2, 5, 9, 10}, 3)
	require.Len(t, labels, 3)
	require.Len(t, counts, 3)
	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, 6, total)

	// Fewer distinct values than bins collapses to the value span.
	labels, counts = Histogram([]int64{4, 4, 4}, 50)
	assert.Len(t, labels, 1)
	assert.Equal(t, []int{3}, counts)

	labels, counts = Histogram(nil, 10)
	assert.Nil(t, labels)
	assert.Nil(t, counts)
}

func TestRevenuesAndStats(t *testing.T) {
	rev := Revenues(fixture())
	require.Len(t, rev, 3)
	assert.InDelta(t, 76.16, Sum(rev), 1e-9)
	assert.InDelta(t, 76.16/3, Mean(rev), 1e-9)
	assert.InDelta(t, 15.3, Median(rev), 1e-9)
}

func TestStats_Empty(t *testing.T) {
	assert.Zero(t, Sum(nil))
	assert.Zero(t, Mean(nil))
	assert.Zero(t, Median(nil))
}

func TestMedian_Even(t *testing.T) {
	assert.InDelta(t, 2.5, Median([]float64{4, 1, 3, 2}), 1e-9)
}
