package analysis

import (
	"sort"

	"github.com/devanshdp04/E-commerceanalysis/internal/domain/models"
)

// CustomerRFM scores every customer by recency, frequency, and monetary
// value. Recency is counted in whole days between the customer's newest
// invoice and the newest invoice in the whole dataset; frequency is the
// number of line items bought; monetary is the summed TotalAmount.
func CustomerRFM(txs []models.Transaction) []models.RFM {
	if len(txs) == 0 {
		return nil
	}
	_, newest := DateRange(txs)

	type acc struct {
		last     int64 // unix seconds of the customer's newest invoice
		count    int
		monetary float64
	}
	byCustomer := map[string]*acc{}
	for _, t := range txs {
		a := byCustomer[t.CustomerID]
		if a == nil {
			a = &acc{}
			byCustomer[t.CustomerID] = a
		}
		if u := t.InvoiceDate.Unix(); u > a.last || a.count == 0 {
			a.last = u
		}
		a.count++
		a.monetary += t.TotalAmount
	}

	out := make([]models.RFM, 0, len(byCustomer))
	for id, a := range byCustomer {
		days := int(newest.Unix()-a.last) / 86400
		out = append(out, models.RFM{
			CustomerID:  id,
			RecencyDays: days,
			Frequency:   a.count,
			Monetary:    a.monetary,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerID < out[j].CustomerID })
	return out
}
