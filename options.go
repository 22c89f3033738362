package forecaster

import (
	"errors"

	"github.com/aouyang1/go-trendpredictor/forecast"
)

var ErrNoWindows = errors.New("no forecast windows configured")

const (
	ShortTermWindow = 3
	LongTermWindow  = 5
)

// Options configures the set of moving average forecasts that are fit over the same series
type Options struct {
	Windows []*forecast.Options `json:"windows"`
}

// NewDefaultOptions returns a short term 3 day and long term 5 day forecast
func NewDefaultOptions() *Options {
	return NewWindowsOptions(ShortTermWindow, LongTermWindow)
}

// NewWindowsOptions returns options with one default forecast per window
func NewWindowsOptions(windows ...int) *Options {
	opt := &Options{
		Windows: make([]*forecast.Options, 0, len(windows)),
	}
	for _, w := range windows {
		opt.Windows = append(opt.Windows, forecast.NewWindowOptions(w))
	}
	return opt
}
