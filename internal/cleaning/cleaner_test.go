package cleaning

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devanshdp04/E-commerceanalysis/internal/ingestion"
)

func rawTable(rows ...[]string) *ingestion.Table {
	return &ingestion.Table{Columns: ingestion.RawHeaders(), Rows: rows}
}

func TestClean_FilterSteps(t *testing.T) {
	tbl := rawTable(
		[]string{"536365", "85123A", "WHITE HANGING HEART T-LIGHT HOLDER", "6", "2010-12-01 08:26:00", "2.55", "17850", "United Kingdom"},
		[]string{"536366", "71053", "WHITE METAL LANTERN", "2", "2010-12-01 08:28:00", "3.39", "17850", "United Kingdom"},
		// missing description
		[]string{"536367", "84879", "", "32", "2010-12-01 08:34:00", "1.69", "13047", "United Kingdom"},
		// missing customer id
		[]string{"536368", "22960", "JAM MAKING SET WITH JARS", "6", "2010-12-01 08:34:00", "4.25", "", "United Kingdom"},
		// zero price
		[]string{"536369", "21756", "BATH BUILDING BLOCK WORD", "3", "2010-12-01 08:35:00", "0", "13047", "United Kingdom"},
		// cancellation with negative quantity
		[]string{"C536379", "D", "Discount", "-1", "2010-12-01 09:41:00", "27.50", "14527", "United Kingdom"},
	)

	txs, rep, err := Clean(tbl)
	require.NoError(t, err)

	assert.Equal(t, 6, rep.InitialRows)
	assert.Equal(t, 2, rep.MissingDropped)
	assert.Equal(t, 2, rep.NonPositiveDropped) // zero price + cancelled negative quantity
	assert.Equal(t, 0, rep.CancellationsDropped)
	assert.Equal(t, 2, rep.FinalRows)
	assert.Len(t, txs, 2)
}

func TestClean_Invariants(t *testing.T) {
	tbl := rawTable(
		[]string{"536365", "85123A", "A", "6", "2010-12-01 08:26:00", "2.55", "17850", "United Kingdom"},
		[]string{"C536380", "22961", "B", "4", "2010-12-01 09:41:00", "1.00", "14527", "United Kingdom"},
		[]string{"536381", "22962", "C", "-3", "2010-12-01 09:45:00", "1.50", "15311", "United Kingdom"},
		[]string{"536382", "22963", "D", "8", "2010-12-01 09:50:00", "-0.10", "15311", "France"},
	)

	txs, _, err := Clean(tbl)
	require.NoError(t, err)

	for _, tx := range txs {
		assert.Positive(t, tx.Quantity)
		assert.Positive(t, tx.Price)
		assert.False(t, tx.IsCancellation())
		assert.NotEmpty(t, tx.Invoice)
		assert.NotEmpty(t, tx.CustomerID)
		assert.False(t, tx.InvoiceDate.IsZero())
		assert.Equal(t, float64(tx.Quantity)*tx.Price, tx.TotalAmount)
	}
}

func TestClean_DerivedAmountExact(t *testing.T) {
	tbl := rawTable(
		[]string{"536365", "85123A", "WHITE HANGING HEART T-LIGHT HOLDER", "6", "2010-12-01 08:26:00", "2.55", "17850", "United Kingdom"},
	)
	txs, _, err := Clean(tbl)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, float64(txs[0].Quantity)*txs[0].Price, txs[0].TotalAmount)
	assert.InDelta(t, 15.30, txs[0].TotalAmount, 1e-9)
}

func TestClean_CancellationMarkerAnywhere(t *testing.T) {
	// The marker matches anywhere in the identifier, by design.
	tbl := rawTable(
		[]string{"536C65", "85123A", "A", "6", "2010-12-01 08:26:00", "2.55", "17850", "United Kingdom"},
	)
	txs, rep, err := Clean(tbl)
	require.NoError(t, err)
	assert.Empty(t, txs)
	assert.Equal(t, 1, rep.CancellationsDropped)
}

func TestClean_MalformedValueFailsRun(t *testing.T) {
	tbl := rawTable(
		[]string{"536365", "85123A", "A", "six", "2010-12-01 08:26:00", "2.55", "17850", "United Kingdom"},
	)
	txs, rep, err := Clean(tbl)
	require.Error(t, err)
	assert.Nil(t, txs)
	assert.Nil(t, rep)
}

func TestClean_NilTable(t *testing.T) {
	_, _, err := Clean(nil)
	require.Error(t, err)
}

func TestClean_RowCountNeverGrows(t *testing.T) {
	tbl := rawTable(
		[]string{"536365", "85123A", "A", "6", "2010-12-01 08:26:00", "2.55", "17850", "United Kingdom"},
		[]string{"536366", "85123B", "B", "1", "2010-12-01 08:27:00", "1.25", "17851", "France"},
	)
	txs, rep, err := Clean(tbl)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(txs), rep.InitialRows)
}

func TestClean_Idempotent(t *testing.T) {
	tbl := rawTable(
		[]string{"536365", "85123A", "WHITE HANGING HEART T-LIGHT HOLDER", "6", "2010-12-01 08:26:00", "2.55", "17850", "United Kingdom"},
		[]string{"C536379", "D", "Discount", "-1", "2010-12-01 09:41:00", "27.50", "14527", "United Kingdom"},
		[]string{"536367", "84879", "ASSORTED COLOUR BIRD ORNAMENT", "32", "2010-12-01 08:34:00", "1.69", "13047", "United Kingdom"},
	)

	first, _, err := Clean(tbl)
	require.NoError(t, err)

	// Rebuild a table from the cleaned output (nine-column layout) and clean
	// it again: the row set must not change.
	again := &ingestion.Table{Columns: ingestion.CleanedHeaders()}
	for _, tx := range first {
		again.Rows = append(again.Rows, []string{
			tx.Invoice, tx.StockCode, tx.Description,
			strconv.FormatInt(tx.Quantity, 10),
			tx.InvoiceDate.Format(ingestion.TimestampLayout),
			strconv.FormatFloat(tx.Price, 'f', -1, 64),
			tx.CustomerID, tx.Country,
			strconv.FormatFloat(tx.TotalAmount, 'f', -1, 64),
		})
	}

	second, rep, err := Clean(again)
	require.NoError(t, err)
	assert.Equal(t, 0, rep.MissingDropped+rep.NonPositiveDropped+rep.CancellationsDropped)
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i], second[i])
	}
}
