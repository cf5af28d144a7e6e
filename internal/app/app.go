// Package app wires the pipeline stages together: configuration, loading,
// cleaning, persistence, exploration, and chart rendering.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/devanshdp04/E-commerceanalysis/config"
	"github.com/devanshdp04/E-commerceanalysis/internal/charts"
	"github.com/devanshdp04/E-commerceanalysis/internal/cleaning"
	"github.com/devanshdp04/E-commerceanalysis/internal/explore"
	"github.com/devanshdp04/E-commerceanalysis/internal/ingestion"
	"github.com/devanshdp04/E-commerceanalysis/internal/logger"
	"github.com/devanshdp04/E-commerceanalysis/internal/storage"
)

// storeCtor is an indirection for creating the dataset store; tests can
// override this.
var storeCtor = func() storage.DatasetStore {
	return storage.NewCSVStore()
}

// RunClean executes stage 1: load the raw table, clean it, persist the
// cleaned CSV, and print the overview and insights to out.
//
// Unreadable or malformed input is reported and swallowed: the stage halts
// gracefully with a nil error and no output file is produced. Internal
// failures past that point (e.g. the cleaned file cannot be written) are
// returned.
func RunClean(ctx context.Context, cfg config.Config, out io.Writer) error {
	start := time.Now()
	logger.L().Info().Str("input", cfg.Dataset.InputFile).Msg("loading dataset")

	tbl, err := ingestion.LoadTable(ctx, cfg.Dataset.InputFile)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		reason := "cannot parse input"
		if errors.Is(err, os.ErrNotExist) {
			reason = "input file not found"
		}
		logger.L().Error().Str("input", cfg.Dataset.InputFile).Err(err).Msg(reason)
		return nil
	}
	logger.L().Info().Int("rows", len(tbl.Rows)).Msg("dataset loaded")

	txs, rep, err := cleaning.Clean(tbl)
	if err != nil {
		logger.L().Error().Err(err).Msg("cannot parse input")
		return nil
	}

	store := storeCtor()
	if err := store.SaveCleaned(cfg.Dataset.CleanedFile, txs); err != nil {
		return fmt.Errorf("save cleaned table: %w", err)
	}
	logger.L().Info().
		Str("file", cfg.Dataset.CleanedFile).
		Int("rows", rep.FinalRows).
		Dur("elapsed", time.Since(start)).
		Msg("cleaned table saved")

	ex := explore.NewExplorer(out)
	ex.Overview(txs)
	ex.Insights(txs)
	return nil
}

// RunCharts executes stage 2: load the cleaned CSV and render the chart
// set. It depends on RunClean's output file existing.
func RunCharts(ctx context.Context, cfg config.Config) error {
	start := time.Now()
	logger.L().Info().Str("file", cfg.Dataset.CleanedFile).Msg("loading cleaned table")

	store := storeCtor()
	txs, err := store.LoadCleaned(ctx, cfg.Dataset.CleanedFile)
	if err != nil {
		return fmt.Errorf("load cleaned table: %w", err)
	}

	written := charts.NewRenderer(txs, cfg.Charts).RenderAll()
	logger.L().Info().
		Int("charts", len(written)).
		Str("dir", cfg.Charts.OutputDir).
		Dur("elapsed", time.Since(start)).
		Msg("chart rendering done")
	return nil
}
