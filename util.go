package forecaster

import (
	"math"
	"time"

	"github.com/aouyang1/go-trendpredictor/timedataset"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	dayLayout = "2006-01-02"

	// echarts leaves a gap for this value
	missingValue = "-"
)

// lineStyles cycles through dashed styles for the forecast series so they stand apart from
// the solid actual price line
var lineStyles = []string{"dashed", "dotted"}

// alignToDays pads values with NaN so that values[i] lands on day index i+offset of a series
// with n days
func alignToDays(n, offset int, values []float64) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = math.NaN()
	}
	for i, v := range values {
		if i+offset >= n {
			break
		}
		res[i+offset] = v
	}
	return res
}

func toLineData(y []float64) []opts.LineData {
	lineData := make([]opts.LineData, 0, len(y))
	for _, v := range y {
		if math.IsNaN(v) {
			lineData = append(lineData, opts.LineData{Value: missingValue})
			continue
		}
		lineData = append(lineData, opts.LineData{Value: v})
	}
	return lineData
}

func dayLabels(t []time.Time) []string {
	labels := make([]string, 0, len(t))
	for _, tPnt := range t {
		labels = append(labels, tPnt.Format(dayLayout))
	}
	return labels
}

// LineTSeries generates an echart multi-line chart for some arbitrary day/value combination. Each
// series in y must have the same length as t. NaN values are left as gaps.
func LineTSeries(title string, seriesName []string, t []time.Time, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
		charts.WithXAxisOpts(opts.XAxis{Name: "Trading Day"}),
	)

	line = line.SetXAxis(dayLabels(t))
	for i, series := range seriesName {
		line = line.AddSeries(series, toLineData(y[i]))
	}
	return line
}

// LineForecaster generates an echart line chart of the actual prices along with every window's
// forecast plotted on the day it predicts. t may be one day longer than the training data when
// the next day forecasts are included.
func LineForecaster(title string, t []time.Time, trainingData *timedataset.TimeDataset, res []*Results, includeNext bool) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
		charts.WithXAxisOpts(opts.XAxis{Name: "Trading Day"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Price ($)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	actual := alignToDays(len(t), 0, trainingData.Y)

	line.SetXAxis(dayLabels(t)).
		AddSeries("Actual Price", toLineData(actual))

	for i, r := range res {
		forecasts := alignToDays(len(t), r.Window, r.Forecast)
		if includeNext && r.Next != nil && len(t) > trainingData.Len() {
			forecasts[len(t)-1] = *r.Next
		}
		line.AddSeries(
			r.Name+" Forecast",
			toLineData(forecasts),
			charts.WithLineStyleOpts(opts.LineStyle{Type: lineStyles[i%len(lineStyles)]}),
		)
	}
	return line
}
