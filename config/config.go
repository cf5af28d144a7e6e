package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs that represent the two stages of the
// pipeline: dataset loading/cleaning and chart rendering.
//
// Example ENV equivalent:
//
//	INPUT_FILE=online_retail_II.xlsx
//	CLEANED_FILE=uk_retail_processed.csv
//	CHARTS_DIR=./charts
//	TOP_PRODUCTS=10
//	TOP_COUNTRIES=10
//	HISTOGRAM_BINS=50
type Config struct {
	Dataset DatasetConfig // input/output file locations
	Charts  ChartsConfig  // chart rendering settings
}

// DatasetConfig holds the file locations of the pipeline.
//
// Fields:
//   - InputFile: raw spreadsheet (.xlsx) or delimited (.csv) input.
//   - CleanedFile: path where the cleaned table is written (and read back
//     by the charts stage).
type DatasetConfig struct {
	InputFile   string
	CleanedFile string
}

// ChartsConfig holds chart rendering settings.
//
// Fields:
//   - OutputDir: directory where chart HTML documents are written.
//   - TopProducts: how many products the product-revenue chart shows.
//   - TopCountries: how many countries the geography charts show.
//   - HistogramBins: bin count of the basket-size histogram.
type ChartsConfig struct {
	OutputDir     string
	TopProducts   int
	TopCountries  int
	HistogramBins int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All packages should read from AppConfig instead of reloading environment
// variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables end up empty, validateConfig() terminates the
//     app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("INPUT_FILE", "online_retail_II.xlsx")
	viper.SetDefault("CLEANED_FILE", "uk_retail_processed.csv")

	viper.SetDefault("CHARTS_DIR", "./charts")
	viper.SetDefault("TOP_PRODUCTS", 10)
	viper.SetDefault("TOP_COUNTRIES", 10)
	viper.SetDefault("HISTOGRAM_BINS", 50)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Dataset: DatasetConfig{
			InputFile:   viper.GetString("INPUT_FILE"),
			CleanedFile: viper.GetString("CLEANED_FILE"),
		},
		Charts: ChartsConfig{
			OutputDir:     viper.GetString("CHARTS_DIR"),
			TopProducts:   viper.GetInt("TOP_PRODUCTS"),
			TopCountries:  viper.GetInt("TOP_COUNTRIES"),
			HistogramBins: viper.GetInt("HISTOGRAM_BINS"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Dataset.InputFile == "" {
		missing = append(missing, "INPUT_FILE")
	}
	if AppConfig.Dataset.CleanedFile == "" {
		missing = append(missing, "CLEANED_FILE")
	}
	if AppConfig.Charts.OutputDir == "" {
		missing = append(missing, "CHARTS_DIR")
	}
	if AppConfig.Charts.TopProducts <= 0 {
		missing = append(missing, "TOP_PRODUCTS")
	}
	if AppConfig.Charts.TopCountries <= 0 {
		missing = append(missing, "TOP_COUNTRIES")
	}
	if AppConfig.Charts.HistogramBins <= 0 {
		missing = append(missing, "HISTOGRAM_BINS")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
