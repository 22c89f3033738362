package forecaster

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aouyang1/go-trendpredictor/forecast"
	"github.com/aouyang1/go-trendpredictor/timedataset"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/rickar/cal/v2"
)

var (
	ErrEmptyTimeDataset    = errors.New("no timedataset or uninitialized")
	ErrNoOptionsInModel    = errors.New("no options set in model")
	ErrModelWindowMismatch = errors.New("number of windows does not match number of forecast models")
	ErrUnfitForecaster     = errors.New("forecaster has not been fit")
)

// Forecaster fits a moving average forecast per configured window over a daily price series
type Forecaster struct {
	opt *Options

	forecasts []*forecast.Forecast

	fitTrainingData *timedataset.TimeDataset
	fitResults      []*Results

	// training range of a forecaster loaded from a model
	trainStartTime time.Time
	trainEndTime   time.Time
}

// New creates a new instance of a Forecaster using the provided options. If no options are provided
// a 3 day and 5 day forecast are used.
func New(opt *Options) (*Forecaster, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if len(opt.Windows) == 0 {
		return nil, ErrNoWindows
	}

	f := &Forecaster{
		opt:       opt,
		forecasts: make([]*forecast.Forecast, 0, len(opt.Windows)),
	}
	for i, wOpt := range opt.Windows {
		fc, err := forecast.New(wOpt)
		if err != nil {
			return nil, fmt.Errorf("unable to initialize forecast %d, %w", i, err)
		}
		f.forecasts = append(f.forecasts, fc)
	}
	return f, nil
}

// NewFromModel creates a new instance of Forecaster from a pre-existing model. This should be generated
// from a previous forecaster call to Model(). The training series is not part of the model so
// results can be inspected per forecast but not plotted.
func NewFromModel(model Model) (*Forecaster, error) {
	if model.Options == nil {
		return nil, ErrNoOptionsInModel
	}
	if len(model.Forecasts) != len(model.Options.Windows) {
		return nil, fmt.Errorf("%d windows and %d forecast models, %w",
			len(model.Options.Windows), len(model.Forecasts), ErrModelWindowMismatch)
	}

	f := &Forecaster{
		opt:            model.Options,
		forecasts:      make([]*forecast.Forecast, 0, len(model.Forecasts)),
		trainStartTime: model.TrainStartTime,
		trainEndTime:   model.TrainEndTime,
	}
	for i, m := range model.Forecasts {
		fc, err := forecast.NewFromModel(m)
		if err != nil {
			return nil, fmt.Errorf("unable to load forecast model %d, %w", i, err)
		}
		f.forecasts = append(f.forecasts, fc)
	}
	return f, nil
}

// Fit computes every configured forecast over the daily series. Windows that are not shorter
// than the series produce no forecasts and no scores.
func (f *Forecaster) Fit(t []time.Time, y []float64) error {
	td, err := timedataset.NewUnivariateDataset(t, y)
	if err != nil {
		return fmt.Errorf("unable to create training dataset, %w", err)
	}
	f.fitTrainingData = td

	f.fitResults = make([]*Results, 0, len(f.forecasts))
	for _, fc := range f.forecasts {
		if err := fc.Fit(td.Y); err != nil {
			return fmt.Errorf("unable to fit %s forecast, %w", fc.Options().Name(), err)
		}
		if fc.Scores() == nil {
			slog.Warn("window is not shorter than the series, no forecasts to score",
				"window", fc.Window(), "days", td.Len())
		}
		f.fitResults = append(f.fitResults, newResults(td, fc))
	}
	return nil
}

func newResults(td *timedataset.TimeDataset, fc *forecast.Forecast) *Results {
	window := fc.Window()
	predictions := fc.Predictions()

	// every prediction has an actual so the aligned times are the days after the first window
	tAligned := timedataset.TimeSlice(td.T).Offset(window)
	days := td.Days()
	if window < len(days) {
		days = days[window:]
	} else {
		days = []int{}
	}

	r := &Results{
		Name:     fc.Options().Name(),
		Window:   window,
		T:        tAligned[:len(predictions)],
		Days:     days[:len(predictions)],
		Forecast: predictions,
		Residual: fc.Residuals(),
		Scores:   fc.Scores(),
	}
	if next, err := fc.Next(); err == nil {
		r.Next = &next
	}
	return r
}

// Forecasts returns the per window forecasts in the configured order
func (f *Forecaster) Forecasts() []*forecast.Forecast {
	return f.forecasts
}

// TrainingData returns the training data used to fit the current forecaster
func (f *Forecaster) TrainingData() *timedataset.TimeDataset {
	return f.fitTrainingData
}

// FitResults returns the aligned results of each forecast in the configured order
func (f *Forecaster) FitResults() []*Results {
	return f.fitResults
}

// Model generates a serializeable representation of the options and every fitted forecast
func (f *Forecaster) Model() (Model, error) {
	m := Model{
		Options:        f.opt,
		TrainStartTime: f.trainStartTime,
		TrainEndTime:   f.trainEndTime,
		Forecasts:      make([]forecast.Model, 0, len(f.forecasts)),
	}
	for _, fc := range f.forecasts {
		fm, err := fc.Model()
		if err != nil {
			return Model{}, fmt.Errorf("unable to fetch %s forecast model, %w", fc.Options().Name(), err)
		}
		m.Forecasts = append(m.Forecasts, fm)
	}
	if td := f.TrainingData(); td != nil {
		m.TrainStartTime = timedataset.TimeSlice(td.T).StartTime()
		m.TrainEndTime = timedataset.TimeSlice(td.T).EndTime()
	}
	return m, nil
}

// PlotOpts configures the chart. IncludeNext extends the day axis by one trading day and plots
// each forecast's prediction for it. Calendar decides the next trading day and defaults to
// timedataset.NewTradingCalendar.
type PlotOpts struct {
	Title       string
	IncludeNext bool
	Calendar    *cal.BusinessCalendar
}

// PlotFit uses the Apache Echarts library to generate an html page showing the actual prices with
// each moving average forecast, and the absolute forecast errors
func (f *Forecaster) PlotFit(w io.Writer, opt *PlotOpts) error {
	td := f.TrainingData()
	if td == nil {
		return ErrEmptyTimeDataset
	}
	if opt == nil {
		opt = &PlotOpts{}
	}
	title := opt.Title
	if title == "" {
		title = "Stock Price Forecasts"
	}

	t := make([]time.Time, len(td.T), len(td.T)+1)
	copy(t, td.T)
	if opt.IncludeNext {
		t = append(t, timedataset.NextTradingDay(timedataset.TimeSlice(td.T).EndTime(), opt.Calendar))
	}

	residualNames := make([]string, 0, len(f.fitResults))
	residuals := make([][]float64, 0, len(f.fitResults))
	for _, res := range f.fitResults {
		residualNames = append(residualNames, res.Name)
		residuals = append(residuals, alignToDays(len(t), res.Window, res.Residual))
	}

	page := components.NewPage()
	page.AddCharts(
		LineForecaster(title, t, td, f.fitResults, opt.IncludeNext),
		LineTSeries(
			"Forecast Absolute Error",
			residualNames,
			t,
			residuals,
		),
	)
	return page.Render(w)
}
