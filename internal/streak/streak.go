// Package streak computes streak and break status from a habit's completion
// ledger. All functions are pure: they take the ledger and the current instant
// as inputs and never touch the clock or the store.
//
// A "period" is one calendar day for daily habits and one ISO week (Monday
// start) for weekly habits. Completion instants are always projected onto the
// calendar date of their period; time of day is discarded, so completions at
// 23:59 and 00:01 the next day land in different periods.
package streak

import (
	"sort"
	"time"

	"github.com/lmoren/ritual/internal/models"
)

// dateOf projects t onto its calendar date, pinned to UTC so that day
// arithmetic is exact regardless of the timestamp's zone or DST.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// weekStart returns the Monday of the ISO week containing t.
func weekStart(t time.Time) time.Time {
	d := dateOf(t)
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7 // Sunday belongs to the week that started the previous Monday
	}
	return d.AddDate(0, 0, -(wd - 1))
}

// PeriodStart returns the first calendar date of the period containing t.
func PeriodStart(c models.Cadence, t time.Time) time.Time {
	if c == models.CadenceWeekly {
		return weekStart(t)
	}
	return dateOf(t)
}

func periodDays(c models.Cadence) int {
	if c == models.CadenceWeekly {
		return 7
	}
	return 1
}

// periodSet projects every completion onto its period start.
func periodSet(c models.Cadence, completions []time.Time) map[time.Time]struct{} {
	set := make(map[time.Time]struct{}, len(completions))
	for _, t := range completions {
		set[PeriodStart(c, t)] = struct{}{}
	}
	return set
}

// CurrentStreak counts consecutive completed periods ending at the period
// containing now. A period with no completion stops the walk, so a habit not
// yet completed in the current period has a streak of zero.
func CurrentStreak(c models.Cadence, completions []time.Time, now time.Time) int {
	if len(completions) == 0 {
		return 0
	}

	set := periodSet(c, completions)
	period := PeriodStart(c, now)
	step := periodDays(c)

	streak := 0
	// The walk is bounded by the ledger size so sparse but ancient ledgers
	// cannot cause an unbounded scan.
	for i := 0; i <= len(completions); i++ {
		if _, ok := set[period]; !ok {
			break
		}
		streak++
		period = period.AddDate(0, 0, -step)
	}
	return streak
}

// LongestStreak returns the maximum run of consecutive completed periods
// anywhere in the ledger's history.
func LongestStreak(c models.Cadence, completions []time.Time) int {
	if len(completions) == 0 {
		return 0
	}

	set := periodSet(c, completions)
	periods := make([]time.Time, 0, len(set))
	for p := range set {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Before(periods[j]) })

	step := periodDays(c)
	longest, run := 1, 1
	for i := 1; i < len(periods); i++ {
		if daysBetween(periods[i-1], periods[i]) == step {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// IsBroken reports whether the habit has missed more than one full period.
// A fresh habit with an empty ledger gets a grace period of one period length
// from its creation instant before it counts as broken.
func IsBroken(c models.Cadence, completions []time.Time, createdAt, now time.Time) bool {
	if len(completions) == 0 {
		return now.Sub(createdAt) >= c.PeriodDuration()
	}

	last := completions[len(completions)-1]
	gap := daysBetween(PeriodStart(c, last), PeriodStart(c, now))
	if c == models.CadenceWeekly {
		return gap/7 > 1
	}
	return gap > 1
}

// CompletedInPeriod reports whether the ledger has a completion in the period
// containing now. The complete command uses it to warn about duplicates.
func CompletedInPeriod(c models.Cadence, completions []time.Time, now time.Time) bool {
	key := PeriodStart(c, now)
	// Scan from the end; the ledger is sorted and recent completions are the
	// likely match.
	for i := len(completions) - 1; i >= 0; i-- {
		p := PeriodStart(c, completions[i])
		if p.Equal(key) {
			return true
		}
		if p.Before(key) {
			return false
		}
	}
	return false
}

// daysBetween returns the whole-day distance from a to b. Both arguments must
// already be UTC calendar dates.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
