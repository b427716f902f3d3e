// Package analytics reduces a collection of habits into summaries, rankings,
// and completion-rate metrics. Everything here composes streak engine outputs;
// no new date math. Functions never fail: empty input degrades to zero values.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/lmoren/ritual/internal/models"
	"github.com/lmoren/ritual/internal/streak"
)

// Summary holds aggregate statistics across all habits.
type Summary struct {
	TotalHabits      int     `json:"total_habits"`
	DailyHabits      int     `json:"daily_habits"`
	WeeklyHabits     int     `json:"weekly_habits"`
	ActiveHabits     int     `json:"active_habits"`
	BrokenHabits     int     `json:"broken_habits"`
	TotalCompletions int     `json:"total_completions"`
	LongestStreak    int     `json:"longest_streak"`
	AverageStreak    float64 `json:"average_streak"`
}

// TrackedNames returns the names of all tracked habits in input order.
func TrackedNames(habits []models.Habit) []string {
	names := make([]string, len(habits))
	for i, h := range habits {
		names[i] = h.Name
	}
	return names
}

// FilterByCadence returns the habits with the given cadence.
func FilterByCadence(habits []models.Habit, c models.Cadence) []models.Habit {
	var out []models.Habit
	for _, h := range habits {
		if h.Cadence == c {
			out = append(out, h)
		}
	}
	return out
}

// LongestStreakAll returns the maximum longest streak across all habits.
func LongestStreakAll(habits []models.Habit) int {
	longest := 0
	for _, h := range habits {
		if s := streak.LongestStreak(h.Cadence, h.Completions); s > longest {
			longest = s
		}
	}
	return longest
}

// BestHabit returns the habit holding the longest streak. When several habits
// share the maximum, the first in input order wins. The second return value is
// false for an empty input.
func BestHabit(habits []models.Habit) (models.Habit, bool) {
	if len(habits) == 0 {
		return models.Habit{}, false
	}
	best := habits[0]
	bestStreak := streak.LongestStreak(best.Cadence, best.Completions)
	for _, h := range habits[1:] {
		if s := streak.LongestStreak(h.Cadence, h.Completions); s > bestStreak {
			best, bestStreak = h, s
		}
	}
	return best, true
}

// CompletionRate returns the percentage of periods within the trailing window
// that have at least one completion. Weekly habits count only the full weeks
// that fit in the window; a window shorter than one week yields 0.
func CompletionRate(h models.Habit, windowDays int, now time.Time) float64 {
	if windowDays <= 0 {
		return 0
	}

	cutoff := now.AddDate(0, 0, -windowDays)

	cadence := models.CadenceDaily
	periods := windowDays
	if h.Cadence == models.CadenceWeekly {
		cadence = models.CadenceWeekly
		periods = windowDays / 7
		if periods == 0 {
			return 0
		}
	}

	completed := make(map[time.Time]struct{})
	for _, c := range h.Completions {
		if c.Before(cutoff) {
			continue
		}
		completed[streak.PeriodStart(cadence, c)] = struct{}{}
	}

	rate := float64(len(completed)) / float64(periods) * 100
	return math.Min(rate, 100)
}

// Struggling returns the habits whose completion rate over the default window
// is strictly below threshold.
func Struggling(habits []models.Habit, threshold float64, windowDays int, now time.Time) []models.Habit {
	var out []models.Habit
	for _, h := range habits {
		if CompletionRate(h, windowDays, now) < threshold {
			out = append(out, h)
		}
	}
	return out
}

// Active returns the habits that are not currently broken.
func Active(habits []models.Habit, now time.Time) []models.Habit {
	var out []models.Habit
	for _, h := range habits {
		if !streak.IsBroken(h.Cadence, h.Completions, h.CreatedAt, now) {
			out = append(out, h)
		}
	}
	return out
}

// Broken returns the habits that are currently broken.
func Broken(habits []models.Habit, now time.Time) []models.Habit {
	var out []models.Habit
	for _, h := range habits {
		if streak.IsBroken(h.Cadence, h.Completions, h.CreatedAt, now) {
			out = append(out, h)
		}
	}
	return out
}

// TotalCompletions counts completions across all habits.
func TotalCompletions(habits []models.Habit) int {
	total := 0
	for _, h := range habits {
		total += len(h.Completions)
	}
	return total
}

// Summarize computes aggregate statistics across all habits. The average
// current streak is rounded to two decimals.
func Summarize(habits []models.Habit, now time.Time) Summary {
	s := Summary{
		TotalHabits:      len(habits),
		DailyHabits:      len(FilterByCadence(habits, models.CadenceDaily)),
		WeeklyHabits:     len(FilterByCadence(habits, models.CadenceWeekly)),
		ActiveHabits:     len(Active(habits, now)),
		BrokenHabits:     len(Broken(habits, now)),
		TotalCompletions: TotalCompletions(habits),
		LongestStreak:    LongestStreakAll(habits),
	}

	if len(habits) > 0 {
		sum := 0
		for _, h := range habits {
			sum += streak.CurrentStreak(h.Cadence, h.Completions, now)
		}
		avg := float64(sum) / float64(len(habits))
		s.AverageStreak = math.Round(avg*100) / 100
	}

	return s
}

// SortByCurrentStreak returns a copy of habits ordered by current streak.
// The sort is stable: ties preserve input order.
func SortByCurrentStreak(habits []models.Habit, now time.Time, descending bool) []models.Habit {
	out := make([]models.Habit, len(habits))
	copy(out, habits)
	sort.SliceStable(out, func(i, j int) bool {
		si := streak.CurrentStreak(out[i].Cadence, out[i].Completions, now)
		sj := streak.CurrentStreak(out[j].Cadence, out[j].Completions, now)
		if descending {
			return si > sj
		}
		return si < sj
	})
	return out
}

// TopDaily returns the best-performing daily habits by current streak,
// at most limit of them.
func TopDaily(habits []models.Habit, now time.Time, limit int) []models.Habit {
	daily := FilterByCadence(habits, models.CadenceDaily)
	ranked := SortByCurrentStreak(daily, now, true)
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
