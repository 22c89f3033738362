package timedataset

import (
	"math/rand/v2"
	"time"

	"github.com/aouyang1/go-trendpredictor/forecast/util"
	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

const (
	DefaultNumDays        = 30
	DefaultStartPrice     = 100.0
	DefaultMaxDailyChange = 2.5
)

// Series is a sequence of simulated daily prices
type Series []float64

// NewTradingCalendar returns a business calendar with weekends and US federal holidays off
func NewTradingCalendar() *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(us.Holidays...)
	return c
}

// GenerateTradingDays returns the n most recent trading days ending on or before the date
// returned by nowFunc, in ascending order. Days are truncated to midnight UTC. If no
// calendar is provided, NewTradingCalendar is used.
func GenerateTradingDays(n int, nowFunc func() time.Time, c *cal.BusinessCalendar) []time.Time {
	if n <= 0 {
		return []time.Time{}
	}
	if c == nil {
		c = NewTradingCalendar()
	}

	now := nowFunc().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	t := make([]time.Time, n)
	for i := n - 1; i >= 0; {
		if c.IsWorkday(day) {
			t[i] = day
			i--
		}
		day = day.AddDate(0, 0, -1)
	}
	return t
}

// NextTradingDay returns the first trading day after t
func NextTradingDay(t time.Time, c *cal.BusinessCalendar) time.Time {
	if c == nil {
		c = NewTradingCalendar()
	}
	day := t.AddDate(0, 0, 1)
	for !c.IsWorkday(day) {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// GenerateRandomWalk simulates n daily prices starting at start. Each following price is the
// previous price moved by a uniform random change in [-maxChange, maxChange), rounded to cents.
func GenerateRandomWalk(n int, start, maxChange float64, rng *rand.Rand) Series {
	if n <= 0 {
		return Series{}
	}

	y := make([]float64, 0, n)
	y = append(y, start)
	for i := 1; i < n; i++ {
		change := (rng.Float64()*2.0 - 1.0) * maxChange
		y = append(y, util.Round(y[i-1]+change, 2))
	}
	return Series(y)
}

// NewRand returns a deterministic random source for the given seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
