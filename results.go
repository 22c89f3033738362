package forecaster

import (
	"time"

	"github.com/aouyang1/go-trendpredictor/forecast"
)

// Results holds a single window's forecasts aligned to the days they predict. Forecast[i]
// predicts the price on T[i], which is day Days[i] of the training data. Residual is the
// absolute error against the actual price on that day.
type Results struct {
	Name     string           `json:"name"`
	Window   int              `json:"window"`
	T        []time.Time      `json:"time"`
	Days     []int            `json:"day"`
	Forecast []float64        `json:"forecast"`
	Residual []float64        `json:"residual"`
	Scores   *forecast.Scores `json:"scores"`
	Next     *float64         `json:"next,omitempty"`
}

// ForecastAt returns the forecast for the 1-indexed day and whether one exists
func (r *Results) ForecastAt(day int) (float64, bool) {
	idx := day - 1 - r.Window
	if idx < 0 || idx >= len(r.Forecast) {
		return 0, false
	}
	return r.Forecast[idx], true
}
