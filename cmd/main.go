package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/devanshdp04/E-commerceanalysis/config"
	"github.com/devanshdp04/E-commerceanalysis/internal/app"
	"github.com/devanshdp04/E-commerceanalysis/internal/logger"
)

// main is the entry point of the retail EDA pipeline.
//
// Modes (selected via --mode flag):
//   - clean:  Loads the raw dataset, cleans it, writes the cleaned CSV, and
//     prints the dataset overview and insights.
//   - charts: Loads the cleaned CSV and renders the chart set as HTML.
//
// Flags:
//   - --mode:   Execution mode ("clean" or "charts"). Default: "clean".
//   - --input:  Raw dataset path. Defaults to config (INPUT_FILE).
//   - --output: Cleaned CSV path. Defaults to config (CLEANED_FILE).
//   - --charts-dir: Chart output directory. Defaults to config (CHARTS_DIR).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger, stamped with a per-run identifier
	logger.Init()
	logger.WithRun(uuid.NewString())

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "clean", "Mode: clean or charts")
	input := flag.String("input", config.AppConfig.Dataset.InputFile, "Raw dataset file (.xlsx or .csv)")
	output := flag.String("output", config.AppConfig.Dataset.CleanedFile, "Cleaned CSV path")
	chartsDir := flag.String("charts-dir", config.AppConfig.Charts.OutputDir, "Chart output directory")
	flag.Parse()

	cfg := config.AppConfig
	cfg.Dataset.InputFile = *input
	cfg.Dataset.CleanedFile = *output
	cfg.Charts.OutputDir = *chartsDir

	if err := run(ctx, *mode, cfg); err != nil {
		logger.L().Fatal().Str("mode", *mode).Err(err).Msg("pipeline failed")
	}
}

// run dispatches one pipeline stage.
func run(ctx context.Context, mode string, cfg config.Config) error {
	switch mode {
	case "clean":
		logger.L().Info().Msg("running cleaning stage")
		return app.RunClean(ctx, cfg, os.Stdout)
	case "charts":
		logger.L().Info().Msg("running chart stage")
		return app.RunCharts(ctx, cfg)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}
