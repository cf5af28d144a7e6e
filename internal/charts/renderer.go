// Package charts renders the exploratory chart set as interactive HTML
// documents (ECharts). Each chart builder is independent and failure
// isolated: an error or panic in one chart is logged and the remaining
// charts still render.
package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/devanshdp04/E-commerceanalysis/config"
	"github.com/devanshdp04/E-commerceanalysis/internal/domain/models"
	"github.com/devanshdp04/E-commerceanalysis/internal/logger"
)

// renderable is satisfied by every go-echarts chart and page.
type renderable interface {
	Render(w io.Writer) error
}

// Renderer draws the full chart set for one cleaned transaction table.
type Renderer struct {
	txs []models.Transaction
	cfg config.ChartsConfig
}

// NewRenderer returns a Renderer over the cleaned transactions.
func NewRenderer(txs []models.Transaction, cfg config.ChartsConfig) *Renderer {
	return &Renderer{txs: txs, cfg: cfg}
}

type chartSpec struct {
	name  string
	file  string
	build func() (renderable, error)
}

func (r *Renderer) specs() []chartSpec {
	return []chartSpec{
		{name: "sales trends", file: "sales_trends.html", build: r.salesTrends},
		{name: "hourly heatmap", file: "hourly_heatmap.html", build: r.hourlyHeatmap},
		{name: "customer segments", file: "customer_segments.html", build: r.customerSegments},
		{name: "product analysis", file: "product_analysis.html", build: r.productAnalysis},
		{name: "customer geography", file: "customer_geography.html", build: r.customerGeography},
		{name: "basket analysis", file: "basket_analysis.html", build: r.basketAnalysis},
	}
}

// RenderAll renders every chart into the configured output directory and
// returns the paths written. A failing chart is logged and skipped.
func (r *Renderer) RenderAll() []string {
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		logger.L().Error().Str("dir", r.cfg.OutputDir).Err(err).Msg("create charts dir failed")
		return nil
	}

	var written []string
	for _, s := range r.specs() {
		path, err := r.renderOne(s)
		if err != nil {
			logger.L().Error().Str("chart", s.name).Err(err).Msg("chart failed")
			continue
		}
		logger.L().Info().Str("chart", s.name).Str("file", path).Msg("chart written")
		written = append(written, path)
	}
	return written
}

// renderOne builds and writes a single chart, converting panics from the
// charting layer into errors so one bad chart cannot take down the run.
func (r *Renderer) renderOne(s chartSpec) (path string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()

	c, err := s.build()
	if err != nil {
		return "", err
	}

	path = filepath.Join(r.cfg.OutputDir, s.file)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := c.Render(f); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return path, nil
}
