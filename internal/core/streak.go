package core

import (
	"sort"
	"time"
)

// CurrentStreak counts consecutive active days ending at today,
// walking backward until the first day without recorded activity.
// An empty index, or a today with no activity, yields zero.
func CurrentStreak(idx Index, today time.Time) int {
	streak := 0
	for d := normalizeDay(today); idx.Lookup(d) > 0; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// LongestStreak returns the length of the longest run of consecutive
// calendar days with positive counts anywhere in the index. The run
// need not include today.
func LongestStreak(idx Index) int {
	days := make([]time.Time, 0, len(idx))
	for d, c := range idx {
		if c > 0 {
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	longest := 0
	streak := 0
	for i, d := range days {
		if i > 0 && d.Equal(days[i-1].AddDate(0, 0, 1)) {
			streak++
		} else {
			streak = 1
		}
		if streak > longest {
			longest = streak
		}
	}
	return longest
}
