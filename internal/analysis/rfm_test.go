package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devanshdp04/E-commerceanalysis/internal/domain/models"
)

func TestCustomerRFM(t *testing.T) {
	base := time.Date(2011, 1, 10, 12, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		{Invoice: "1", CustomerID: "A", InvoiceDate: base.AddDate(0, 0, -30), TotalAmount: 10},
		{Invoice: "2", CustomerID: "A", InvoiceDate: base.AddDate(0, 0, -5), TotalAmount: 20},
		{Invoice: "3", CustomerID: "B", InvoiceDate: base, TotalAmount: 7.5},
	}

	got := CustomerRFM(txs)
	require.Len(t, got, 2)

	a, b := got[0], got[1]
	require.Equal(t, "A", a.CustomerID)
	require.Equal(t, "B", b.CustomerID)

	// Recency is measured against the newest invoice in the dataset.
	assert.Equal(t, 5, a.RecencyDays)
	assert.Equal(t, 0, b.RecencyDays)

	assert.Equal(t, 2, a.Frequency)
	assert.Equal(t, 1, b.Frequency)

	assert.InDelta(t, 30, a.Monetary, 1e-9)
	assert.InDelta(t, 7.5, b.Monetary, 1e-9)
}

func TestCustomerRFM_Empty(t *testing.T) {
	assert.Nil(t, CustomerRFM(nil))
}
