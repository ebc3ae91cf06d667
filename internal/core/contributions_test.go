package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	require.NoError(t, err)
	return d
}

func TestBuildIndex_AbsentDateReadsZero(t *testing.T) {
	idx, err := BuildIndex([]DayCount{{Date: "2024-01-05", Count: 2}})
	require.NoError(t, err)

	assert.Equal(t, 2, idx.Lookup(mustDay(t, "2024-01-05")))
	assert.Equal(t, 0, idx.Lookup(mustDay(t, "2024-01-06")))
	assert.Equal(t, 0, idx.Lookup(mustDay(t, "1999-12-31")))
}

func TestBuildIndex_EmptyInput(t *testing.T) {
	idx, err := BuildIndex(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, idx.Lookup(mustDay(t, "2024-01-01")))
}

func TestBuildIndex_LastWriteWins(t *testing.T) {
	idx, err := BuildIndex([]DayCount{
		{Date: "2024-01-05", Count: 3},
		{Date: "2024-01-05", Count: 7},
	})
	require.NoError(t, err)
	assert.Equal(t, 7, idx.Lookup(mustDay(t, "2024-01-05")))

	idx, err = BuildIndex([]DayCount{
		{Date: "2024-01-05", Count: 7},
		{Date: "2024-01-05", Count: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Lookup(mustDay(t, "2024-01-05")))
}

func TestBuildIndex_MalformedDate(t *testing.T) {
	for _, bad := range []string{"2024-13-40", "not-a-date", "2024/01/05", ""} {
		_, err := BuildIndex([]DayCount{{Date: bad, Count: 1}})
		require.Error(t, err, "date %q", bad)

		var malformed *MalformedDateError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, bad, malformed.Value)
	}
}

func TestBuildIndex_OrderIndependent(t *testing.T) {
	entries := []DayCount{
		{Date: "2024-01-01", Count: 3},
		{Date: "2024-01-02", Count: 1},
		{Date: "2024-01-04", Count: 5},
	}
	reversed := []DayCount{entries[2], entries[1], entries[0]}

	a, err := BuildIndex(entries)
	require.NoError(t, err)
	b, err := BuildIndex(reversed)
	require.NoError(t, err)

	today := mustDay(t, "2024-01-04")
	assert.Equal(t, Compute(a, today), Compute(b, today))
}

func TestLookup_IgnoresTimeOfDay(t *testing.T) {
	idx, err := BuildIndex([]DayCount{{Date: "2024-01-05", Count: 4}})
	require.NoError(t, err)

	noon := time.Date(2024, 1, 5, 12, 30, 9, 0, time.UTC)
	assert.Equal(t, 4, idx.Lookup(noon))
}
