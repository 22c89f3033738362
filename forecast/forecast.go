package forecast

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-trendpredictor/forecast/util"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrUninitializedForecast = errors.New("uninitialized forecast")
	ErrUntrainedForecast     = errors.New("forecast has not been trained yet")
	ErrInvalidWindow         = errors.New("window must be a positive integer")
	ErrInvalidPrecision      = errors.New("precision must not be negative")
	ErrInsufficientData      = errors.New("fewer observations than the window")
)

// MovingAverage computes the trailing mean of every window sized slice of prices, rounded
// to cents. The i-th value is the mean of prices[i:i+window] and is the prediction for
// prices[i+window]. A window at least as long as prices yields an empty result.
func MovingAverage(prices []float64, window int) ([]float64, error) {
	return movingAverage(prices, window, DefaultPrecision)
}

func movingAverage(prices []float64, window, precision int) ([]float64, error) {
	if window < 1 {
		return nil, fmt.Errorf("window of %d, %w", window, ErrInvalidWindow)
	}

	numWindows := len(prices) - window
	if numWindows <= 0 {
		return []float64{}, nil
	}

	res := make([]float64, numWindows)
	for i := 0; i < numWindows; i++ {
		res[i] = floats.Sum(prices[i:i+window]) / float64(window)
	}
	return util.SliceMap(res, util.Rounder(precision)), nil
}

// AbsoluteErrors returns |actual - predicted| for each forecast that has a realized value.
// The i-th forecast is compared against prices[i+window]; forecasts reaching past the end
// of prices are dropped.
func AbsoluteErrors(prices, forecasts []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, fmt.Errorf("window of %d, %w", window, ErrInvalidWindow)
	}

	n := overlap(len(prices), len(forecasts), window)
	res := make([]float64, n)
	for i := 0; i < n; i++ {
		diff := prices[i+window] - forecasts[i]
		if diff < 0 {
			diff = -diff
		}
		res[i] = diff
	}
	return res, nil
}

// overlap is the number of leading forecasts that have an actual to compare against
func overlap(numPrices, numForecasts, window int) int {
	n := numPrices - window
	if numForecasts < n {
		n = numForecasts
	}
	if n < 0 {
		n = 0
	}
	return n
}

// Forecast represents a single moving average forecast of a price series over a fixed window.
type Forecast struct {
	opt    *Options
	scores *Scores // nil if no forecast could be compared against an actual

	trainSize   int
	predictions []float64
	residual    []float64
	next        float64
	hasNext     bool

	trained bool
}

// New creates a new forecast instance with the given options. If none are provided, a default
// is used
func New(opt *Options) (*Forecast, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if err := opt.Valid(); err != nil {
		return nil, err
	}

	return &Forecast{opt: opt}, nil
}

// NewFromModel creates a new forecast instance given a forecast Model. The forecast is treated
// as trained and its predictions and scores can be read immediately.
func NewFromModel(model Model) (*Forecast, error) {
	f, err := New(model.Options)
	if err != nil {
		return nil, err
	}

	f.trainSize = model.TrainSize
	f.predictions = append([]float64{}, model.Predictions...)
	f.residual = append([]float64{}, model.Residual...)
	f.scores = model.Scores
	if model.Next != nil {
		f.next = *model.Next
		f.hasNext = true
	}
	f.trained = true
	return f, nil
}

// Fit computes the moving average predictions over y and scores them against the values
// they predict. A window that is at least as long as y is not an error, but results in no
// predictions and no scores.
func (f *Forecast) Fit(y []float64) error {
	if f == nil {
		return ErrUninitializedForecast
	}

	window := f.opt.Window
	predictions, err := movingAverage(y, window, f.opt.Precision)
	if err != nil {
		return fmt.Errorf("unable to compute moving average, %w", err)
	}
	residual, err := AbsoluteErrors(y, predictions, window)
	if err != nil {
		return fmt.Errorf("unable to compute absolute errors, %w", err)
	}

	scores, err := Score(y, predictions, window)
	switch {
	case errors.Is(err, ErrNoData):
		scores = nil
	case err != nil:
		return fmt.Errorf("unable to score forecast, %w", err)
	}

	f.trainSize = len(y)
	f.predictions = predictions
	f.residual = residual
	f.scores = scores
	f.hasNext = len(y) >= window
	if f.hasNext {
		f.next = util.Round(floats.Sum(y[len(y)-window:])/float64(window), f.opt.Precision)
	}
	f.trained = true
	return nil
}

// Options returns the forecast options
func (f *Forecast) Options() *Options {
	return f.opt
}

// Window returns the look back length of the forecast
func (f *Forecast) Window() int {
	return f.opt.Window
}

// Predictions returns the fitted moving average values. The i-th prediction is for the
// observation at index i+window of the training data.
func (f *Forecast) Predictions() []float64 {
	return f.predictions
}

// Residuals returns the absolute difference between each prediction and its actual value
func (f *Forecast) Residuals() []float64 {
	return f.residual
}

// Scores returns the fit scores. This is nil if there were no predictions to compare.
func (f *Forecast) Scores() *Scores {
	return f.scores
}

// Next returns the prediction for the observation after the end of the training data
func (f *Forecast) Next() (float64, error) {
	if f == nil {
		return 0, ErrUninitializedForecast
	}
	if !f.trained {
		return 0, ErrUntrainedForecast
	}
	if !f.hasNext {
		return 0, fmt.Errorf("%d observations with window %d, %w", f.trainSize, f.opt.Window, ErrInsufficientData)
	}
	return f.next, nil
}

// Model returns the serializable representation of a trained forecast
func (f *Forecast) Model() (Model, error) {
	if f == nil {
		return Model{}, ErrUninitializedForecast
	}
	if !f.trained {
		return Model{}, ErrUntrainedForecast
	}

	m := Model{
		Options:     f.opt,
		TrainSize:   f.trainSize,
		Scores:      f.scores,
		Predictions: f.predictions,
		Residual:    f.residual,
	}
	if f.hasNext {
		next := f.next
		m.Next = &next
	}
	return m, nil
}
