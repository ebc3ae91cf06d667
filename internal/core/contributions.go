package core

import (
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// MalformedDateError reports an input date that could not be parsed as
// an ISO-8601 calendar date.
type MalformedDateError struct {
	Value string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed calendar date %q (want YYYY-MM-DD)", e.Value)
}

// Index maps UTC-midnight calendar dates to daily contribution counts.
// Dates absent from the index read as zero.
type Index map[time.Time]int

// BuildIndex normalizes raw day counts into an Index. When the same
// date appears more than once, the later entry wins.
func BuildIndex(entries []DayCount) (Index, error) {
	idx := make(Index, len(entries))
	for _, e := range entries {
		day, err := time.ParseInLocation(dayLayout, e.Date, time.UTC)
		if err != nil {
			return nil, &MalformedDateError{Value: e.Date}
		}
		idx[day] = e.Count
	}
	return idx, nil
}

// Lookup returns the count recorded for day, or zero when absent.
func (idx Index) Lookup(day time.Time) int {
	return idx[normalizeDay(day)]
}

func normalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
