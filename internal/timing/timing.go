package timing

import (
	"math"
	"time"
)

// Stopwatch measures the duration of a single pipeline phase.
type Stopwatch struct {
	start time.Time
}

// Start begins a new measurement.
func Start() Stopwatch {
	return Stopwatch{start: time.Now()}
}

// ElapsedMs returns the elapsed time in milliseconds, rounded to one decimal.
func (s Stopwatch) ElapsedMs() float64 {
	return RoundMs(time.Since(s.start))
}

// RoundMs converts a duration to milliseconds rounded to one decimal place.
func RoundMs(d time.Duration) float64 {
	ms := float64(d) / float64(time.Millisecond)
	return math.Round(ms*10) / 10
}
