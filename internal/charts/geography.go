package charts

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/devanshdp04/E-commerceanalysis/internal/analysis"
)

// customerGeography builds the per-country sales and order-count bars.
func (r *Renderer) customerGeography() (renderable, error) {
	stats := analysis.CountryBreakdown(r.txs)
	if len(stats) == 0 {
		return nil, fmt.Errorf("no data")
	}

	bySales := analysis.TopCountriesBySales(stats, r.cfg.TopCountries)
	salesNames := make([]string, len(bySales))
	salesData := make([]opts.BarData, len(bySales))
	for i, c := range bySales {
		salesNames[i] = c.Country
		salesData[i] = opts.BarData{Value: c.Sales}
	}

	salesBar := charts.NewBar()
	salesBar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Total Sales by Country"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	salesBar.SetXAxis(salesNames).AddSeries("Total Sales", salesData)

	byOrders := analysis.TopCountriesByOrders(stats, r.cfg.TopCountries)
	orderNames := make([]string, len(byOrders))
	orderData := make([]opts.BarData, len(byOrders))
	for i, c := range byOrders {
		orderNames[i] = c.Country
		orderData[i] = opts.BarData{Value: c.Orders}
	}

	ordersBar := charts.NewBar()
	ordersBar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Number of Orders by Country"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	ordersBar.SetXAxis(orderNames).AddSeries("Number of Orders", orderData)

	page := components.NewPage()
	page.PageTitle = "Geographical Analysis"
	page.AddCharts(salesBar, ordersBar)
	return page, nil
}
