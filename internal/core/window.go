package core

import "time"

// WindowDays is the length of the trailing activity window.
const WindowDays = 30

const (
	barScale = 6
	barBase  = 4
	barClamp = 5
)

// WindowStats summarizes the trailing window ending at today.
type WindowStats struct {
	ActiveDays int
	Total      int
	BarHeights []int // oldest day first, len == WindowDays
}

// AggregateWindow walks the 30 calendar days ending at and including
// today, oldest first, counting active days, summing counts, and
// computing one rendered bar height per day.
func AggregateWindow(idx Index, today time.Time) WindowStats {
	w := WindowStats{BarHeights: make([]int, 0, WindowDays)}
	start := normalizeDay(today).AddDate(0, 0, -(WindowDays - 1))
	for i := 0; i < WindowDays; i++ {
		count := idx.Lookup(start.AddDate(0, 0, i))
		if count > 0 {
			w.ActiveDays++
			w.Total += count
		}
		w.BarHeights = append(w.BarHeights, BarHeight(count))
	}
	return w
}

// BarHeight maps a daily count to its rendered bar height. Counts above
// barClamp all draw at the same height; the clamp is visual only, the
// window total keeps the true count.
func BarHeight(count int) int {
	if count < 0 {
		count = 0
	}
	if count > barClamp {
		count = barClamp
	}
	return count*barScale + barBase
}
