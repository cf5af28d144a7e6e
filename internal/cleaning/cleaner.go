package cleaning

import (
	"fmt"
	"strings"

	"github.com/devanshdp04/E-commerceanalysis/internal/domain/models"
	"github.com/devanshdp04/E-commerceanalysis/internal/ingestion"
	"github.com/devanshdp04/E-commerceanalysis/internal/logger"
)

// Report records how many rows each cleaning step removed.
type Report struct {
	InitialRows          int
	MissingDropped       int
	NonPositiveDropped   int
	CancellationsDropped int
	FinalRows            int
}

// Clean turns a raw table into the cleaned transaction set.
//
// Order of operations:
//  1. Drop rows with any empty cell among the eight raw columns.
//  2. Parse surviving rows (malformed values fail the whole run).
//  3. Drop rows with Quantity <= 0 or Price <= 0.
//  4. Drop cancellations (invoice identifier containing "C").
//  5. Derive TotalAmount = Quantity × Price.
//
// The returned set satisfies every invariant of the cleaned table; re-running
// Clean over its own output yields the same rows.
func Clean(tbl *ingestion.Table) ([]models.Transaction, *Report, error) {
	if tbl == nil {
		return nil, nil, fmt.Errorf("nil table")
	}

	rep := &Report{InitialRows: len(tbl.Rows)}
	logger.L().Info().Int("rows", rep.InitialRows).Int("columns", len(tbl.Columns)).Msg("cleaning start")

	txs := make([]models.Transaction, 0, len(tbl.Rows))
	for i, rec := range tbl.Rows {
		if hasMissing(rec) {
			rep.MissingDropped++
			continue
		}

		t, err := ingestion.RecordToTransaction(rec)
		if err != nil {
			// Malformed value → fail the whole run, nothing is written.
			return nil, nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		if t.Quantity <= 0 || t.Price <= 0 {
			rep.NonPositiveDropped++
			continue
		}
		if t.IsCancellation() {
			rep.CancellationsDropped++
			continue
		}

		t.TotalAmount = float64(t.Quantity) * t.Price
		txs = append(txs, t)
	}
	rep.FinalRows = len(txs)

	logger.L().Info().
		Int("missing", rep.MissingDropped).
		Int("non_positive", rep.NonPositiveDropped).
		Int("cancellations", rep.CancellationsDropped).
		Int("kept", rep.FinalRows).
		Msg("cleaning done")

	return txs, rep, nil
}

// hasMissing reports whether any of the eight raw cells is blank. The
// derived TotalAmount cell, when present, is ignored: it is recomputed.
func hasMissing(rec []string) bool {
	n := len(ingestion.RawHeaders())
	if n > len(rec) {
		n = len(rec)
	}
	for _, cell := range rec[:n] {
		if strings.TrimSpace(cell) == "" {
			return true
		}
	}
	return false
}
