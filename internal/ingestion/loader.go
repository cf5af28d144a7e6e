package ingestion

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadTable opens and parses a tabular input file. The format is chosen by
// extension: .xlsx/.xlsm via excelize, .csv/.txt via encoding/csv.
//
// It fails on:
//   - unreadable files
//   - a header not matching the expected order/length
//   - CSV rows with the wrong column count
//
// It tolerates:
//   - empty cells (cleaning decides their fate)
//   - spreadsheet rows with trailing empty cells trimmed by the reader
func LoadTable(ctx context.Context, path string) (*Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return loadWorkbook(ctx, path)
	case ".csv", ".txt":
		return loadCSV(ctx, path)
	default:
		return nil, fmt.Errorf("unsupported input format %q", ext)
	}
}

// loadWorkbook reads the first sheet of a spreadsheet file.
func loadWorkbook(ctx context.Context, path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	cols, err := validateHeader(rows[0])
	if err != nil {
		return nil, err
	}

	tbl := &Table{Columns: cols, Rows: make([][]string, 0, len(rows)-1)}
	for i, rec := range rows[1:] {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if len(rec) > len(cols) {
			return nil, fmt.Errorf("invalid column count on row %d: expected %d got %d", i+2, len(cols), len(rec))
		}
		// excelize trims trailing empty cells per row; pad back to width.
		for len(rec) < len(cols) {
			rec = append(rec, "")
		}
		tbl.Rows = append(tbl.Rows, rec)
	}
	return tbl, nil
}

// loadCSV reads a comma-delimited file with a strict column count.
func loadCSV(ctx context.Context, path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1 // allow variable but we’ll check explicitly

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := validateHeader(header)
	if err != nil {
		return nil, err
	}

	tbl := &Table{Columns: cols}
	lineNumber := 1 // header already read

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		if len(rec) != len(cols) {
			return nil, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(cols), len(rec))
		}
		tbl.Rows = append(tbl.Rows, rec)
	}
	return tbl, nil
}
