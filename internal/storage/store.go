package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/devanshdp04/E-commerceanalysis/internal/domain/models"
	"github.com/devanshdp04/E-commerceanalysis/internal/ingestion"
)

// DatasetStore defines the contract for persisting and reloading the
// cleaned transaction table.
type DatasetStore interface {
	SaveCleaned(path string, txs []models.Transaction) error
	LoadCleaned(ctx context.Context, path string) ([]models.Transaction, error)
}

type csvStore struct{}

// NewCSVStore returns a DatasetStore backed by a single CSV file.
func NewCSVStore() DatasetStore {
	return &csvStore{}
}

// SaveCleaned writes the cleaned table to path, overwriting any existing
// file. The write goes through a temp file in the same directory followed by
// a rename, so the target is either the complete new table or untouched.
func (s *csvStore) SaveCleaned(path string, txs []models.Transaction) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	w := csv.NewWriter(tmp)
	if err := w.Write(ingestion.CleanedHeaders()); err != nil {
		cleanup()
		return fmt.Errorf("write header: %w", err)
	}
	for i, t := range txs {
		rec := []string{
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
		if err := w.Write(rec); err != nil {
			cleanup()
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		cleanup()
		return fmt.Errorf("flush: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

// LoadCleaned reads a previously saved cleaned table back into memory.
// The file must carry the nine-column cleaned layout; rows are parsed
// strictly since the store wrote them itself.
func (s *csvStore) LoadCleaned(ctx context.Context, path string) ([]models.Transaction, error) {
	tbl, err := ingestion.LoadTable(ctx, path)
	if err != nil {
		return nil, err
	}
	if !tbl.HasDerived() {
		return nil, fmt.Errorf("%s: not a cleaned table (missing TotalAmount column)", path)
	}

	txs := make([]models.Transaction, 0, len(tbl.Rows))
	for i, rec := range tbl.Rows {
		t, err := ingestion.RecordToTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txs = append(txs, t)
	}
	return txs, nil
}
