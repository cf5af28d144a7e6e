package charts

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/devanshdp04/E-commerceanalysis/internal/analysis"
)

// salesTrends builds the monthly sales line and the average-by-weekday bar
// on a single page.
func (r *Renderer) salesTrends() (renderable, error) {
	monthly := analysis.MonthlySales(r.txs)
	if len(monthly) == 0 {
		return nil, fmt.Errorf("no data")
	}

	months := make([]string, len(monthly))
	lineData := make([]opts.LineData, len(monthly))
	for i, m := range monthly {
		months[i] = m.Month
		lineData[i] = opts.LineData{Value: m.Total}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Monthly Sales Trend"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	line.SetXAxis(months).AddSeries("Monthly Sales", lineData)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{
		Smooth:     opts.Bool(true),
		ShowSymbol: opts.Bool(true),
	}))

	weekdays := analysis.WeekdayAverages(r.txs)
	days := make([]string, len(weekdays))
	barData := make([]opts.BarData, len(weekdays))
	for i, w := range weekdays {
		days[i] = w.Day
		barData[i] = opts.BarData{Value: w.Average}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Daily Sales Pattern", Subtitle: "Average transaction value per weekday"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(days).AddSeries("Average Daily Sales", barData)

	page := components.NewPage()
	page.PageTitle = "Sales Trends Analysis"
	page.AddCharts(line, bar)
	return page, nil
}
