package charts

import (
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/devanshdp04/E-commerceanalysis/internal/analysis"
)

// customerSegments builds the 3-D RFM scatter. Axes carry log1p-transformed
// values so the long tail of heavy spenders stays readable.
func (r *Renderer) customerSegments() (renderable, error) {
	rfm := analysis.CustomerRFM(r.txs)
	if len(rfm) == 0 {
		return nil, fmt.Errorf("no data")
	}

	data := make([]opts.Chart3DData, len(rfm))
	var maxMonetary float64
	for i, c := range rfm {
		m := math.Log1p(c.Monetary)
		data[i] = opts.Chart3DData{
			Name: c.CustomerID,
			Value: []interface{}{
				math.Log1p(float64(c.RecencyDays)),
				math.Log1p(float64(c.Frequency)),
				m,
			},
		}
		if m > maxMonetary {
			maxMonetary = m
		}
	}

	sc := charts.NewScatter3D()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "3D Customer Segmentation based on RFM Analysis"}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "Recency (log)"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "Frequency (log)"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "Monetary (log)"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Max:        float32(maxMonetary),
			InRange:    &opts.VisualMapInRange{Color: []string{"#50a3ba", "#eac736", "#d94e5d"}},
		}),
	)
	sc.AddSeries("Customers", data)
	return sc, nil
}
