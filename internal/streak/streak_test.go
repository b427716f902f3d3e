package streak

import (
	"testing"
	"time"

	"github.com/lmoren/ritual/internal/models"
)

// Wednesday 2025-06-18 15:00 UTC
var now = time.Date(2025, 6, 18, 15, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return now.AddDate(0, 0, offset)
}

func TestPeriodStart(t *testing.T) {
	tests := []struct {
		name    string
		cadence models.Cadence
		in      time.Time
		want    time.Time
	}{
		{
			name:    "daily truncates time of day",
			cadence: models.CadenceDaily,
			in:      time.Date(2025, 6, 18, 23, 59, 0, 0, time.UTC),
			want:    time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "weekly wednesday maps to monday",
			cadence: models.CadenceWeekly,
			in:      time.Date(2025, 6, 18, 15, 0, 0, 0, time.UTC),
			want:    time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "weekly sunday belongs to previous monday",
			cadence: models.CadenceWeekly,
			in:      time.Date(2025, 6, 22, 10, 0, 0, 0, time.UTC),
			want:    time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "weekly monday maps to itself",
			cadence: models.CadenceWeekly,
			in:      time.Date(2025, 6, 16, 0, 30, 0, 0, time.UTC),
			want:    time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PeriodStart(tt.cadence, tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("PeriodStart(%v, %v) = %v, want %v", tt.cadence, tt.in, got, tt.want)
			}
		})
	}
}

func TestCurrentStreakDaily(t *testing.T) {
	tests := []struct {
		name        string
		completions []time.Time
		want        int
	}{
		{"empty ledger", nil, 0},
		{"today only", []time.Time{day(0)}, 1},
		{"three consecutive days ending today", []time.Time{day(-2), day(-1), day(0)}, 3},
		{"not completed today stops at zero", []time.Time{day(-2), day(-1)}, 0},
		{"gap in the middle cuts the run", []time.Time{day(-3), day(-1), day(0)}, 2},
		{"duplicate completions in one day count once", []time.Time{day(-1), day(0), day(0).Add(2 * time.Hour)}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentStreak(models.CadenceDaily, tt.completions, now)
			if got != tt.want {
				t.Errorf("CurrentStreak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurrentStreakWeekly(t *testing.T) {
	tests := []struct {
		name        string
		completions []time.Time
		want        int
	}{
		{"this week only", []time.Time{day(0)}, 1},
		{"two consecutive weeks", []time.Time{day(-7), day(0)}, 2},
		{"any weekday counts for the week", []time.Time{day(-9), day(-2)}, 2},
		{"missed this week stops at zero", []time.Time{day(-8)}, 0},
		{"skipped week cuts the run", []time.Time{day(-14), day(0)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentStreak(models.CadenceWeekly, tt.completions, now)
			if got != tt.want {
				t.Errorf("CurrentStreak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name        string
		cadence     models.Cadence
		completions []time.Time
		want        int
	}{
		{"empty ledger", models.CadenceDaily, nil, 0},
		{"single day", models.CadenceDaily, []time.Time{day(-5)}, 1},
		{
			"historic run beats the current one",
			models.CadenceDaily,
			[]time.Time{day(-10), day(-9), day(-8), day(-7), day(-1), day(0)},
			4,
		},
		{
			"runs separated by a gap",
			models.CadenceDaily,
			[]time.Time{day(-6), day(-5), day(-3), day(-2), day(-1)},
			3,
		},
		{
			"weekly run across three weeks",
			models.CadenceWeekly,
			[]time.Time{day(-16), day(-8), day(-1)},
			3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LongestStreak(tt.cadence, tt.completions)
			if got != tt.want {
				t.Errorf("LongestStreak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLongestStreakIgnoresNow(t *testing.T) {
	// The longest streak is a property of the ledger alone; a broken habit
	// keeps its historic best.
	completions := []time.Time{day(-30), day(-29), day(-28)}
	if got := LongestStreak(models.CadenceDaily, completions); got != 3 {
		t.Errorf("LongestStreak = %d, want 3", got)
	}
	if got := CurrentStreak(models.CadenceDaily, completions, now); got != 0 {
		t.Errorf("CurrentStreak = %d, want 0", got)
	}
}

func TestIsBrokenDaily(t *testing.T) {
	tests := []struct {
		name        string
		completions []time.Time
		createdAt   time.Time
		want        bool
	}{
		{"fresh habit within grace period", nil, now.Add(-2 * time.Hour), false},
		{"fresh habit past grace period", nil, now.Add(-25 * time.Hour), true},
		{"completed today", []time.Time{day(0)}, day(-30), false},
		{"completed yesterday still has today open", []time.Time{day(-1)}, day(-30), false},
		{"missed a full day", []time.Time{day(-2)}, day(-30), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsBroken(models.CadenceDaily, tt.completions, tt.createdAt, now)
			if got != tt.want {
				t.Errorf("IsBroken = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsBrokenWeekly(t *testing.T) {
	tests := []struct {
		name        string
		completions []time.Time
		createdAt   time.Time
		want        bool
	}{
		{"fresh habit within grace week", nil, day(-3), false},
		{"fresh habit past grace week", nil, day(-8), true},
		{"completed last week still has this week open", []time.Time{day(-7)}, day(-60), false},
		{"missed a full week", []time.Time{day(-14)}, day(-60), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsBroken(models.CadenceWeekly, tt.completions, tt.createdAt, now)
			if got != tt.want {
				t.Errorf("IsBroken = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompletedInPeriod(t *testing.T) {
	tests := []struct {
		name        string
		cadence     models.Cadence
		completions []time.Time
		want        bool
	}{
		{"empty ledger", models.CadenceDaily, nil, false},
		{"completed earlier today", models.CadenceDaily, []time.Time{now.Add(-3 * time.Hour)}, true},
		{"completed only yesterday", models.CadenceDaily, []time.Time{day(-1)}, false},
		{"weekly completed monday", models.CadenceWeekly, []time.Time{day(-2)}, true},
		{"weekly completed last week", models.CadenceWeekly, []time.Time{day(-8)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompletedInPeriod(tt.cadence, tt.completions, now)
			if got != tt.want {
				t.Errorf("CompletedInPeriod = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStreakAcrossTimezones(t *testing.T) {
	// Completions logged in different zones on the same calendar day collapse
	// into one period.
	berlin := time.FixedZone("CEST", 2*3600)
	completions := []time.Time{
		time.Date(2025, 6, 17, 23, 30, 0, 0, berlin),
		time.Date(2025, 6, 18, 8, 0, 0, 0, time.UTC),
	}
	if got := CurrentStreak(models.CadenceDaily, completions, now); got != 2 {
		t.Errorf("CurrentStreak = %d, want 2", got)
	}
}
