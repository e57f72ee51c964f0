package statement

import "time"

// PeriodLayout renders a month as e.g. "April 2024".
const PeriodLayout = "January 2006"

// Period is one calendar month of a user's activity series.
type Period struct {
	Label   string
	Total   int64
	Current bool
}

// FillMonths expands sparse monthly counts into one entry per calendar
// month from the first to the last counted month inclusive. Months with no
// activity get a zero total. counts must be sorted oldest first.
func FillMonths(counts []MonthlyCount, now time.Time) []Period {
	if len(counts) == 0 {
		return []Period{}
	}

	totals := make(map[time.Time]int64, len(counts))
	for _, c := range counts {
		totals[monthStart(c.Year, c.Month)] += c.Total
	}

	first := monthStart(counts[0].Year, counts[0].Month)
	last := monthStart(counts[len(counts)-1].Year, counts[len(counts)-1].Month)
	current := monthStart(now.Year(), now.Month())

	periods := make([]Period, 0, monthsBetween(first, last)+1)
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		periods = append(periods, Period{
			Label:   m.Format(PeriodLayout),
			Total:   totals[m],
			Current: m.Equal(current),
		})
	}
	return periods
}

func monthStart(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func monthsBetween(a, b time.Time) int {
	n := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if n < 0 {
		return 0
	}
	return n
}
