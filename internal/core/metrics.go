package core

import "time"

// Metrics holds everything derived from one contribution index.
type Metrics struct {
	CurrentStreak    int
	LongestStreak    int
	WindowActiveDays int
	WindowTotal      int
	BarHeights       []int
}

// Compute derives all badge metrics from the index for the given today.
func Compute(idx Index, today time.Time) Metrics {
	w := AggregateWindow(idx, today)
	return Metrics{
		CurrentStreak:    CurrentStreak(idx, today),
		LongestStreak:    LongestStreak(idx),
		WindowActiveDays: w.ActiveDays,
		WindowTotal:      w.Total,
		BarHeights:       w.BarHeights,
	}
}
