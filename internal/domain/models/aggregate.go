package models

// MonthlySale is the summed revenue of one calendar month ("2006-01" key).
type MonthlySale struct {
	Month string
	Total float64
}

// WeekdayAverage is the mean transaction value for one day of the week.
type WeekdayAverage struct {
	Day     string
	Average float64
}

// HourlyAverage is the mean transaction value for one hour of the day.
type HourlyAverage struct {
	Hour    int
	Average float64
}

// RFM is the Recency/Frequency/Monetary score of one customer:
// days since the last purchase relative to the newest invoice in the
// dataset, number of line items bought, and total spend.
type RFM struct {
	CustomerID  string
	RecencyDays int
	Frequency   int
	Monetary    float64
}

// ProductRevenue is the summed revenue of one product description.
type ProductRevenue struct {
	Description string
	Revenue     float64
}

// ProductQuantity is the summed quantity sold of one product description.
type ProductQuantity struct {
	Description string
	Quantity    int64
}

// CountryStat aggregates one country: summed revenue, distinct invoice
// count (orders), and line-item count (transactions).
type CountryStat struct {
	Country      string
	Sales        float64
	Orders       int
	Transactions int
}

// BasketSize is the summed quantity of all line items on one invoice.
type BasketSize struct {
	Invoice  string
	Quantity int64
}
