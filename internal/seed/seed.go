// Package seed populates a fresh database with sample habits and several
// weeks of realistic tracking data, mirroring the kind of history a real user
// would have accumulated.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lmoren/ritual/internal/logger"
	"github.com/lmoren/ritual/internal/models"
	"github.com/lmoren/ritual/internal/storage"
)

var sampleHabits = []struct {
	Name    string
	Cadence models.Cadence
}{
	{"Morning Exercise", models.CadenceDaily},
	{"Read for 30 minutes", models.CadenceDaily},
	{"Drink 8 glasses of water", models.CadenceDaily},
	{"Grocery Shopping", models.CadenceWeekly},
	{"Review Weekly Goals", models.CadenceWeekly},
}

// Run creates the predefined sample habits with the given number of weeks of
// completion history ending at now. The rand source is injected so tests can
// seed it.
func Run(store storage.Provider, now time.Time, weeks int, rng *rand.Rand) ([]models.Habit, error) {
	if weeks < 1 {
		return nil, fmt.Errorf("weeks must be at least 1, got %d", weeks)
	}

	start := now.AddDate(0, 0, -weeks*7)
	var created []models.Habit

	for _, sample := range sampleHabits {
		habit, err := models.NewHabit(sample.Name, string(sample.Cadence), start)
		if err != nil {
			return created, err
		}
		if err := store.AddHabit(&habit); err != nil {
			return created, fmt.Errorf("failed to seed habit %q: %w", sample.Name, err)
		}

		var days []time.Time
		if habit.Cadence == models.CadenceDaily {
			days = dailyPattern(start, weeks, rng)
		} else {
			days = weeklyPattern(start, weeks, rng)
		}

		for _, day := range days {
			// Spread completion times across plausible waking hours
			at := day.Add(time.Duration(7+rng.Intn(14)) * time.Hour)
			if err := store.AddCompletion(habit.ID, at); err != nil {
				return created, fmt.Errorf("failed to seed completion for %q: %w", sample.Name, err)
			}
			habit.AddCompletion(at)
		}

		logger.Info("Seeded habit", "name", habit.Name, "cadence", habit.Cadence, "completions", len(habit.Completions))
		created = append(created, habit)
	}

	return created, nil
}

// dailyPattern picks completion days with a per-habit rate between 60% and
// 95%, so seeded habits show a mix of solid and broken streaks.
func dailyPattern(start time.Time, weeks int, rng *rand.Rand) []time.Time {
	rate := 0.6 + rng.Float64()*0.35
	var days []time.Time
	for d := 0; d < weeks*7; d++ {
		if rng.Float64() < rate {
			days = append(days, start.AddDate(0, 0, d))
		}
	}
	return days
}

// weeklyPattern completes a habit on a random day in 70-100% of the weeks.
func weeklyPattern(start time.Time, weeks int, rng *rand.Rand) []time.Time {
	rate := 0.7 + rng.Float64()*0.3
	var days []time.Time
	for w := 0; w < weeks; w++ {
		if rng.Float64() < rate {
			days = append(days, start.AddDate(0, 0, w*7+rng.Intn(7)))
		}
	}
	return days
}
