package forecaster

import (
	"bytes"
	"testing"
	"time"

	"github.com/aouyang1/go-trendpredictor/forecast"
	"github.com/aouyang1/go-trendpredictor/timedataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateDays(n int) []time.Time {
	t := make([]time.Time, 0, n)
	start := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		t = append(t, start.AddDate(0, 0, i))
	}
	return t
}

func TestNew(t *testing.T) {
	testData := map[string]struct {
		opt        *Options
		numWindows int
		err        error
	}{
		"default options": {
			numWindows: 2,
		},
		"three windows": {
			opt:        NewWindowsOptions(2, 3, 7),
			numWindows: 3,
		},
		"no windows": {
			opt: &Options{},
			err: ErrNoWindows,
		},
		"invalid window": {
			opt: NewWindowsOptions(3, 0),
			err: forecast.ErrInvalidWindow,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			f, err := New(td.opt)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Len(t, f.Forecasts(), td.numWindows)
		})
	}
}

func TestFit(t *testing.T) {
	tSeries := generateDays(4)
	y := []float64{10, 20, 30, 40}

	f, err := New(NewWindowsOptions(1, 2, 4))
	require.Nil(t, err)
	require.Nil(t, f.Fit(tSeries, y))

	results := f.FitResults()
	require.Len(t, results, 3)

	oneDay := results[0]
	assert.Equal(t, "1-Day", oneDay.Name)
	assert.Equal(t, tSeries[1:], oneDay.T)
	assert.Equal(t, []int{2, 3, 4}, oneDay.Days)
	assert.InDeltaSlice(t, []float64{10, 20, 30}, oneDay.Forecast, 1e-9)
	assert.InDeltaSlice(t, []float64{10, 10, 10}, oneDay.Residual, 1e-9)
	require.NotNil(t, oneDay.Scores)
	assert.InDelta(t, 10.0, oneDay.Scores.MAE, 1e-9)
	assert.InDelta(t, 60.0, oneDay.Scores.Accuracy, 1e-9)
	require.NotNil(t, oneDay.Next)
	assert.InDelta(t, 40.0, *oneDay.Next, 1e-9)

	twoDay := results[1]
	assert.Equal(t, tSeries[2:], twoDay.T)
	assert.Equal(t, []int{3, 4}, twoDay.Days)
	assert.InDeltaSlice(t, []float64{15, 25}, twoDay.Forecast, 1e-9)
	require.NotNil(t, twoDay.Scores)
	assert.InDelta(t, 15.0, twoDay.Scores.MAE, 1e-9)

	// window equal to the series length has nothing to score but can still predict the next day
	fourDay := results[2]
	assert.Empty(t, fourDay.Forecast)
	assert.Empty(t, fourDay.T)
	assert.Empty(t, fourDay.Days)
	assert.Nil(t, fourDay.Scores)
	require.NotNil(t, fourDay.Next)
	assert.InDelta(t, 25.0, *fourDay.Next, 1e-9)

	assert.Equal(t, y, f.TrainingData().Y)
}

func TestFitInputCopied(t *testing.T) {
	tSeries := generateDays(3)
	y := []float64{100, 102, 104}

	f, err := New(NewWindowsOptions(1))
	require.Nil(t, err)
	require.Nil(t, f.Fit(tSeries, y))

	y[0] = 0
	assert.Equal(t, []float64{100, 102, 104}, f.TrainingData().Y)
	assert.InDeltaSlice(t, []float64{100, 102}, f.FitResults()[0].Forecast, 1e-9)
}

func TestFitErrors(t *testing.T) {
	testData := map[string]struct {
		t   []time.Time
		y   []float64
		err error
	}{
		"no data": {
			err: timedataset.ErrNoTrainingData,
		},
		"length mismatch": {
			t:   generateDays(2),
			y:   []float64{1, 2, 3},
			err: timedataset.ErrDatasetLenMismatch,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			f, err := New(nil)
			require.Nil(t, err)
			assert.ErrorIs(t, f.Fit(td.t, td.y), td.err)
		})
	}
}

func TestResultsForecastAt(t *testing.T) {
	r := &Results{
		Window:   2,
		Forecast: []float64{15, 25},
	}

	testData := map[string]struct {
		day      int
		expected float64
		ok       bool
	}{
		"inside first window": {day: 2},
		"first forecast":      {day: 3, expected: 15, ok: true},
		"last forecast":       {day: 4, expected: 25, ok: true},
		"past the series":     {day: 5},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			val, ok := r.ForecastAt(td.day)
			assert.Equal(t, td.ok, ok)
			assert.InDelta(t, td.expected, val, 1e-9)
		})
	}
}

func TestModelRoundTrip(t *testing.T) {
	f, err := New(nil)
	require.Nil(t, err)
	require.Nil(t, f.Fit(generateDays(10), []float64{100, 102, 104, 103, 107, 110, 108, 112, 115, 113}))

	var buf bytes.Buffer
	require.Nil(t, f.WriteModel(&buf))

	m, err := ReadModel(&buf)
	require.Nil(t, err)
	assert.Equal(t, time.Date(1970, 1, 10, 0, 0, 0, 0, time.UTC), m.TrainEndTime.UTC())

	restored, err := NewFromModel(m)
	require.Nil(t, err)
	require.Len(t, restored.Forecasts(), 2)
	for i, fc := range restored.Forecasts() {
		assert.Equal(t, f.Forecasts()[i].Window(), fc.Window())
		assert.InDeltaSlice(t, f.Forecasts()[i].Predictions(), fc.Predictions(), 1e-9)
		assert.InDelta(t, f.Forecasts()[i].Scores().MAE, fc.Scores().MAE, 1e-9)
	}
}

func TestModelErrors(t *testing.T) {
	f, err := New(nil)
	require.Nil(t, err)
	_, err = f.Model()
	assert.ErrorIs(t, err, forecast.ErrUntrainedForecast)

	_, err = NewFromModel(Model{})
	assert.ErrorIs(t, err, ErrNoOptionsInModel)

	_, err = NewFromModel(Model{Options: NewDefaultOptions()})
	assert.ErrorIs(t, err, ErrModelWindowMismatch)
	assert.NotErrorIs(t, err, ErrNoOptionsInModel)

	_, err = ReadModel(bytes.NewBufferString("{not json"))
	assert.Error(t, err)
}

func TestModelTablePrint(t *testing.T) {
	f, err := New(NewWindowsOptions(2))
	require.Nil(t, err)
	require.Nil(t, f.Fit(generateDays(4), []float64{10, 20, 30, 40}))

	m, err := f.Model()
	require.Nil(t, err)

	var buf bytes.Buffer
	require.Nil(t, m.TablePrint(&buf))
	out := buf.String()
	assert.Contains(t, out, "Training Window: 1970-01-01 to 1970-01-04\n")
	assert.Contains(t, out, "Moving Average 2-Day:\n")
	assert.Contains(t, out, "    Window: 2\n")
	assert.Contains(t, out, "    Next: 35.00\n")

	restored, err := NewFromModel(m)
	require.Nil(t, err)
	rm, err := restored.Model()
	require.Nil(t, err)
	buf.Reset()
	require.Nil(t, rm.TablePrint(&buf))
	assert.Contains(t, buf.String(), "Training Window: 1970-01-01 to 1970-01-04\n")

	buf.Reset()
	require.Nil(t, Model{}.TablePrint(&buf))
	assert.Equal(t, "Training Window: None\n", buf.String())
}
