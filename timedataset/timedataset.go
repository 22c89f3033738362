package timedataset

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrNoTrainingData     = errors.New("no prices in series")
	ErrNonMonotonic       = errors.New("trading days are not strictly increasing")
	ErrDatasetLenMismatch = errors.New("number of trading days does not match number of prices")
	ErrNonFiniteValue     = errors.New("price is NaN or infinite")
)

// TimeDataset represents a daily price series storing a slice of trading days and prices.
// Both must be of the same length. Day k of the series, counting from 1, is at index k-1.
type TimeDataset struct {
	T []time.Time
	Y []float64
}

// NewUnivariateDataset pairs each trading day with its closing price. Days must be strictly
// increasing and prices finite. Both slices are copied so later changes by the caller are not
// seen by the dataset.
func NewUnivariateDataset(t []time.Time, y []float64) (*TimeDataset, error) {
	if len(y) == 0 {
		return nil, ErrNoTrainingData
	}
	if len(t) != len(y) {
		return nil, fmt.Errorf("%d days for %d prices, %w", len(t), len(y), ErrDatasetLenMismatch)
	}
	for i := 1; i < len(t); i++ {
		if !t[i].After(t[i-1]) {
			return nil, fmt.Errorf("day %d on %s does not follow %s, %w",
				i+1, t[i].Format(time.DateOnly), t[i-1].Format(time.DateOnly), ErrNonMonotonic)
		}
	}
	for i, price := range y {
		if math.IsNaN(price) || math.IsInf(price, 0) {
			return nil, fmt.Errorf("day %d, %w", i+1, ErrNonFiniteValue)
		}
	}

	td := &TimeDataset{T: t, Y: y}
	return td.Copy(), nil
}

// Copy returns a deep copy of the dataset
func (td *TimeDataset) Copy() *TimeDataset {
	return &TimeDataset{
		T: append([]time.Time(nil), td.T...),
		Y: append([]float64(nil), td.Y...),
	}
}

// Len returns the number of days in the dataset
func (td *TimeDataset) Len() int {
	if td == nil {
		return 0
	}
	return len(td.Y)
}

// Mean returns the average price of the series
func (td *TimeDataset) Mean() float64 {
	if td.Len() == 0 {
		return math.NaN()
	}
	return stat.Mean(td.Y, nil)
}

// Days returns the 1-indexed day numbers of the series
func (td *TimeDataset) Days() []int {
	days := make([]int, td.Len())
	for i := range days {
		days[i] = i + 1
	}
	return days
}
