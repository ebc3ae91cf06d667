package core

// DayCount is one raw calendar-day activity sample as delivered by a
// provider: an ISO-8601 date string and a non-negative count.
type DayCount struct {
	Date  string
	Count int
}

// ProfileSummary carries the profile scalars shown in the badge footer.
type ProfileSummary struct {
	Repos              int
	Stars              int
	Followers          int
	Following          int
	TotalContributions int
}

// ActivityStats is everything a provider fetches for one user.
type ActivityStats struct {
	Profile ProfileSummary
	Days    []DayCount
}
