package charts

import (
	"fmt"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/devanshdp04/E-commerceanalysis/internal/analysis"
)

// basketAnalysis builds the basket-size histogram and the average
// transaction value by hour line on a single page.
func (r *Renderer) basketAnalysis() (renderable, error) {
	baskets := analysis.BasketSizes(r.txs)
	if len(baskets) == 0 {
		return nil, fmt.Errorf("no data")
	}

	sizes := make([]int64, len(baskets))
	for i, b := range baskets {
		sizes[i] = b.Quantity
	}
	labels, counts := analysis.Histogram(sizes, r.cfg.HistogramBins)

	histData := make([]opts.BarData, len(counts))
	for i, c := range counts {
		histData[i] = opts.BarData{Value: c}
	}

	hist := charts.NewBar()
	hist.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Basket Size Distribution", Subtitle: "Summed quantity per invoice"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	hist.SetXAxis(labels).AddSeries("Baskets", histData)
	hist.SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{BarCategoryGap: "0%"}))

	hourly := analysis.HourlyAverages(r.txs)
	hours := make([]string, len(hourly))
	lineData := make([]opts.LineData, len(hourly))
	for i, h := range hourly {
		hours[i] = strconv.Itoa(h.Hour)
		lineData[i] = opts.LineData{Value: h.Average}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Average Basket Value by Hour"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	line.SetXAxis(hours).AddSeries("Avg Basket Value", lineData)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	page := components.NewPage()
	page.PageTitle = "Basket Analysis"
	page.AddCharts(hist, line)
	return page, nil
}
