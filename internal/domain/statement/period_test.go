package statement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFillMonths(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		counts []MonthlyCount
		want   []Period
	}{
		{
			name:   "no activity",
			counts: nil,
			want:   []Period{},
		},
		{
			name:   "single month",
			counts: []MonthlyCount{{Year: 2024, Month: time.March, Total: 4}},
			want:   []Period{{Label: "March 2024", Total: 4}},
		},
		{
			name: "gap is zero filled",
			counts: []MonthlyCount{
				{Year: 2024, Month: time.April, Total: 1},
				{Year: 2024, Month: time.June, Total: 1},
			},
			want: []Period{
				{Label: "April 2024", Total: 1},
				{Label: "May 2024", Total: 0},
				{Label: "June 2024", Total: 1, Current: true},
			},
		},
		{
			name: "spans a year boundary",
			counts: []MonthlyCount{
				{Year: 2023, Month: time.November, Total: 2},
				{Year: 2024, Month: time.February, Total: 5},
			},
			want: []Period{
				{Label: "November 2023", Total: 2},
				{Label: "December 2023", Total: 0},
				{Label: "January 2024", Total: 0},
				{Label: "February 2024", Total: 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FillMonths(tt.counts, now))
		})
	}
}

func TestFillMonthsLength(t *testing.T) {
	counts := []MonthlyCount{
		{Year: 2020, Month: time.January, Total: 1},
		{Year: 2022, Month: time.December, Total: 1},
	}

	periods := FillMonths(counts, time.Now())

	assert.Len(t, periods, 36)
	var sum int64
	for _, p := range periods {
		sum += p.Total
	}
	assert.Equal(t, int64(2), sum)
}
