package charts

import (
	"fmt"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/devanshdp04/E-commerceanalysis/internal/analysis"
)

// hourlyHeatmap builds the day-of-week × hour sales heatmap.
func (r *Renderer) hourlyHeatmap() (renderable, error) {
	if len(r.txs) == 0 {
		return nil, fmt.Errorf("no data")
	}
	days, cells := analysis.SalesByDayHour(r.txs)

	hours := make([]string, 24)
	for h := range hours {
		hours[h] = strconv.Itoa(h)
	}

	var data []opts.HeatMapData
	var maxVal float64
	for d, row := range cells {
		for h, v := range row {
			if v == 0 {
				continue
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{h, d, v}})
			if v > maxVal {
				maxVal = v
			}
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Sales Heatmap by Hour and Day of Week"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: "Hour of Day"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Name: "Day of Week", Data: days}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxVal),
			Orient:     "horizontal",
			Left:       "center",
		}),
	)
	hm.SetXAxis(hours).AddSeries("Total Sales", data)
	return hm, nil
}
