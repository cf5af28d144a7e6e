package charts

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/devanshdp04/E-commerceanalysis/internal/analysis"
)

// productAnalysis builds the horizontal top-products-by-revenue bar.
func (r *Renderer) productAnalysis() (renderable, error) {
	top := analysis.TopProductsByRevenue(r.txs, r.cfg.TopProducts)
	if len(top) == 0 {
		return nil, fmt.Errorf("no data")
	}

	names := make([]string, len(top))
	data := make([]opts.BarData, len(top))
	for i, p := range top {
		names[i] = p.Description
		data[i] = opts.BarData{Value: p.Revenue}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Top %d Products by Revenue", len(top))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(names).AddSeries("Total Revenue", data)
	// Long product names read better on the Y axis.
	bar.XYReversal()
	return bar, nil
}
