package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name    string
		entries []DayCount
		today   string
		want    int
	}{
		{
			name:    "empty index",
			entries: nil,
			today:   "2024-01-03",
			want:    0,
		},
		{
			name: "today has zero count",
			entries: []DayCount{
				{Date: "2024-01-01", Count: 3},
				{Date: "2024-01-02", Count: 1},
				{Date: "2024-01-03", Count: 0},
			},
			today: "2024-01-03",
			want:  0,
		},
		{
			name:    "single active day",
			entries: []DayCount{{Date: "2024-01-05", Count: 2}},
			today:   "2024-01-05",
			want:    1,
		},
		{
			name: "run ends at today",
			entries: []DayCount{
				{Date: "2024-01-01", Count: 1},
				{Date: "2024-01-02", Count: 4},
				{Date: "2024-01-03", Count: 2},
			},
			today: "2024-01-03",
			want:  3,
		},
		{
			name: "gap before run is not counted",
			entries: []DayCount{
				{Date: "2023-12-30", Count: 9},
				{Date: "2024-01-02", Count: 4},
				{Date: "2024-01-03", Count: 2},
			},
			today: "2024-01-03",
			want:  2,
		},
		{
			name:    "activity only in the past",
			entries: []DayCount{{Date: "2024-01-01", Count: 5}},
			today:   "2024-01-03",
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := BuildIndex(tt.entries)
			require.NoError(t, err)
			assert.Equal(t, tt.want, CurrentStreak(idx, mustDay(t, tt.today)))
		})
	}
}

func TestCurrentStreak_ExactRunLength(t *testing.T) {
	// n consecutive active days ending today, with a zero day before the
	// run, must yield exactly n.
	for _, n := range []int{1, 2, 7, 30, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			today := mustDay(t, "2024-06-30")
			entries := make([]DayCount, 0, n+1)
			for i := 0; i < n; i++ {
				d := today.AddDate(0, 0, -i)
				entries = append(entries, DayCount{Date: d.Format("2006-01-02"), Count: 1})
			}
			before := today.AddDate(0, 0, -n)
			entries = append(entries, DayCount{Date: before.Format("2006-01-02"), Count: 0})

			idx, err := BuildIndex(entries)
			require.NoError(t, err)
			assert.Equal(t, n, CurrentStreak(idx, today))
		})
	}
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name    string
		entries []DayCount
		want    int
	}{
		{
			name:    "empty index",
			entries: nil,
			want:    0,
		},
		{
			name: "all zero counts",
			entries: []DayCount{
				{Date: "2024-01-01", Count: 0},
				{Date: "2024-01-02", Count: 0},
			},
			want: 0,
		},
		{
			name:    "isolated day counts as one",
			entries: []DayCount{{Date: "2024-01-05", Count: 2}},
			want:    1,
		},
		{
			name: "run not ending today",
			entries: []DayCount{
				{Date: "2024-01-01", Count: 3},
				{Date: "2024-01-02", Count: 1},
				{Date: "2024-01-03", Count: 0},
			},
			want: 2,
		},
		{
			name: "zero day splits the run",
			entries: []DayCount{
				{Date: "2024-01-01", Count: 1},
				{Date: "2024-01-02", Count: 0},
				{Date: "2024-01-03", Count: 1},
				{Date: "2024-01-04", Count: 1},
				{Date: "2024-01-05", Count: 1},
			},
			want: 3,
		},
		{
			name: "missing day splits the run",
			entries: []DayCount{
				{Date: "2024-01-01", Count: 1},
				{Date: "2024-01-02", Count: 2},
				{Date: "2024-01-10", Count: 1},
			},
			want: 2,
		},
		{
			name: "ties report length only",
			entries: []DayCount{
				{Date: "2024-01-01", Count: 1},
				{Date: "2024-01-02", Count: 1},
				{Date: "2024-02-01", Count: 5},
				{Date: "2024-02-02", Count: 5},
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := BuildIndex(tt.entries)
			require.NoError(t, err)
			assert.Equal(t, tt.want, LongestStreak(idx))
		})
	}
}

func TestLongestStreak_AtLeastCurrent(t *testing.T) {
	entries := []DayCount{
		{Date: "2024-01-01", Count: 1},
		{Date: "2024-01-02", Count: 1},
		{Date: "2024-01-03", Count: 1},
		{Date: "2024-01-07", Count: 2},
		{Date: "2024-01-08", Count: 2},
	}
	idx, err := BuildIndex(entries)
	require.NoError(t, err)

	for _, today := range []string{"2024-01-03", "2024-01-05", "2024-01-08"} {
		current := CurrentStreak(idx, mustDay(t, today))
		assert.GreaterOrEqual(t, LongestStreak(idx), current, "today=%s", today)
	}
}
