package timedataset

import "time"

type TimeSlice []time.Time

func (t TimeSlice) StartTime() time.Time {
	var startTime time.Time
	if len(t) < 1 {
		return startTime
	}
	return t[0]
}

func (t TimeSlice) EndTime() time.Time {
	var lastTime time.Time
	if len(t) < 1 {
		return lastTime
	}

	lastTime = t[len(t)-1]
	return lastTime
}

// Offset returns the slice starting at index n, used to align forecasts with the days they
// predict. An offset past the end yields an empty slice.
func (t TimeSlice) Offset(n int) TimeSlice {
	if n < 0 {
		n = 0
	}
	if n > len(t) {
		n = len(t)
	}
	return t[n:]
}
