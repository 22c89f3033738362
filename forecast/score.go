package forecast

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrResLenMismatch = errors.New("predicted and actual have different lengths")
	ErrNoData         = errors.New("no forecasts with an actual value to score")
	ErrZeroMean       = errors.New("series mean is zero")
)

// Scores tracks the fit scores of a moving average forecast
type Scores struct {
	Count    int     `json:"count"`
	MAE      float64 `json:"mean_absolute_error"`
	Accuracy float64 `json:"accuracy_percent"`
	MSE      float64 `json:"mean_squared_error"`
	MAPE     float64 `json:"mean_average_percent_error"`
	R2       float64 `json:"r_squared"`
}

// Score compares each forecast against the price it predicts, prices[i+window]. Only forecasts
// with a realized price are scored. Accuracy is 100 * (1 - MAE / mean(prices)) and is not bounded
// below. ErrNoData is returned when no forecast can be compared.
func Score(prices, forecasts []float64, window int) (*Scores, error) {
	if window < 1 {
		return nil, fmt.Errorf("window of %d, %w", window, ErrInvalidWindow)
	}

	n := overlap(len(prices), len(forecasts), window)
	if n == 0 {
		return nil, fmt.Errorf("%d prices and %d forecasts with window %d, %w",
			len(prices), len(forecasts), window, ErrNoData)
	}

	actual := prices[window : window+n]
	predicted := forecasts[:n]

	scores, err := NewScores(predicted, actual)
	if err != nil {
		return nil, err
	}

	acc, err := Accuracy(scores.MAE, prices)
	if err != nil {
		return nil, fmt.Errorf("unable to compute accuracy, %w", err)
	}
	scores.Accuracy = acc
	return scores, nil
}

// NewScores calculates the fit scores given the predicted and actual input slice values.
// Accuracy is left unset since it depends on the full series.
func NewScores(predicted, actual []float64) (*Scores, error) {
	if len(actual) == 0 {
		return nil, ErrNoData
	}
	mae, err := MAE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean absolute error, %w", err)
	}
	mse, err := MSE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean squared error, %w", err)
	}
	mape, err := MAPE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean average percent error, %w", err)
	}
	rs, err := RSquared(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute r-squared, %w", err)
	}

	return &Scores{
		Count: len(actual),
		MAE:   mae,
		MSE:   mse,
		MAPE:  mape,
		R2:    rs,
	}, nil
}

// Accuracy converts a mean absolute error into a percentage of the series mean,
// 100 * (1 - mae / mean(series)).
func Accuracy(mae float64, series []float64) (float64, error) {
	if len(series) == 0 {
		return 0, ErrNoData
	}
	mean := stat.Mean(series, nil)
	if mean == 0 {
		return 0, ErrZeroMean
	}
	return 100.0 * (1.0 - mae/mean), nil
}

// MAE computes the mean absolute error, sum(abs(y-yhat))/n. A score of 0 means a perfect match.
func MAE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}
	if len(actual) == 0 {
		return 0, ErrNoData
	}

	mae := 0.0
	for i := 0; i < len(actual); i++ {
		mae += math.Abs(actual[i] - predicted[i])
	}
	mae /= float64(len(actual))
	return mae, nil
}

// MSE computes the mean squared error. This is the same as sum((y-yhat)^2).
// A score of 0 means a perfect match with no errors.
func MSE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}
	if len(actual) == 0 {
		return 0, ErrNoData
	}

	mse := 0.0
	for i := 0; i < len(actual); i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) {
			continue
		}
		mse += math.Pow(actual[i]-predicted[i], 2.0)
	}
	mse /= float64(len(actual))
	return mse, nil
}

// MAPE calculates the mean average percent error. This is the same as sum(abs((y-yhat)/y)).
// A score of 0 means a perfect match with no errors.
func MAPE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}
	if len(actual) == 0 {
		return 0, ErrNoData
	}

	mape := 0.0
	for i := 0; i < len(actual); i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) || actual[i] == 0 {
			continue
		}
		mape += math.Abs((actual[i] - predicted[i]) / actual[i])
	}
	mape /= float64(len(actual))
	return mape, nil
}

// RSquared computes the r squared value between the predicted and actual where 1.0 means perfect
// fit and 0 represents no relationship
func RSquared(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}

	predictCopy := make([]float64, 0, len(predicted))
	actualCopy := make([]float64, 0, len(actual))
	for i := 0; i < len(predicted); i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) {
			continue
		}
		predictCopy = append(predictCopy, predicted[i])
		actualCopy = append(actualCopy, actual[i])
	}
	r2 := stat.RSquaredFrom(predictCopy, actualCopy, nil)
	if math.IsNaN(r2) {
		return 1.0, nil
	}
	// constant actuals with any error leave r2 at -Inf
	if math.IsInf(r2, 0) {
		return 0.0, nil
	}
	return r2, nil
}
