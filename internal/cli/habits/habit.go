package habits

import (
	"fmt"
	"strings"

	"github.com/lmoren/ritual/internal/analytics"
	"github.com/lmoren/ritual/internal/cli"
	"github.com/lmoren/ritual/internal/constants"
	"github.com/lmoren/ritual/internal/logger"
	"github.com/lmoren/ritual/internal/models"
	"github.com/lmoren/ritual/internal/streak"
	"github.com/lmoren/ritual/internal/utils"
)

type HabitCmd struct {
	Add      HabitAddCmd      `cmd:"" help:"Add a new habit."`
	List     HabitListCmd     `cmd:"" help:"List habits with streaks and status."`
	Complete HabitCompleteCmd `cmd:"" help:"Record a completion for a habit."`
	Update   HabitUpdateCmd   `cmd:"" help:"Update a habit's name or cadence."`
	Delete   HabitDeleteCmd   `cmd:"" help:"Delete a habit and its ledger."`
}

type HabitAddCmd struct {
	Name    string `arg:"" help:"Habit name."`
	Cadence string `help:"Habit cadence: daily or weekly." default:"daily"`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := ctx.Store.GetHabitByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	_, now, err := ctx.SettingsAndNow()
	if err != nil {
		return err
	}

	habit, err := models.NewHabit(c.Name, c.Cadence, now)
	if err != nil {
		return err
	}

	if err := ctx.Store.AddHabit(&habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", habit.Name, habit.Cadence)
	return nil
}

type HabitListCmd struct {
	Cadence    string `help:"Only show habits with this cadence (daily or weekly)."`
	SortStreak bool   `help:"Sort by current streak, highest first."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	_, now, err := ctx.SettingsAndNow()
	if err != nil {
		return err
	}

	var habits []models.Habit
	if c.Cadence != "" {
		cadence, err := models.ParseCadence(c.Cadence)
		if err != nil {
			return err
		}
		habits, err = ctx.Store.GetHabitsByCadence(cadence)
		if err != nil {
			return err
		}
	} else {
		habits, err = ctx.Store.GetAllHabits()
		if err != nil {
			return err
		}
	}

	if len(habits) == 0 {
		fmt.Println("No habits found. Add one with 'ritual habit add'.")
		return nil
	}

	if c.SortStreak {
		habits = analytics.SortByCurrentStreak(habits, now, true)
	}

	fmt.Printf("%-5s %-28s %-8s %-8s %s\n", "ID", "Name", "Cadence", "Streak", "Status")
	fmt.Println(strings.Repeat("-", 60))
	for _, h := range habits {
		status := "active"
		if streak.IsBroken(h.Cadence, h.Completions, h.CreatedAt, now) {
			status = "broken"
		}
		fmt.Printf("%-5d %-28s %-8s %-8d %s\n",
			h.ID, truncate(h.Name, 28), h.Cadence,
			streak.CurrentStreak(h.Cadence, h.Completions, now), status)
	}
	fmt.Printf("\nTotal habits: %d\n", len(habits))
	return nil
}

type HabitCompleteCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Completion date in YYYY-MM-DD format (default: now)." default:""`
}

func (c *HabitCompleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	settings, now, err := ctx.SettingsAndNow()
	if err != nil {
		return err
	}

	at := now
	if c.Date != "" {
		loc, err := utils.LoadLocation(settings.Timezone)
		if err != nil {
			return err
		}
		at, err = utils.ParseDateInLocation(c.Date, loc)
		if err != nil {
			return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", c.Date)
		}
	}

	if streak.CompletedInPeriod(habit.Cadence, habit.Completions, at) {
		period := "today"
		if habit.Cadence == models.CadenceWeekly {
			period = "this week"
		}
		fmt.Printf("Habit %q is already completed %s; recording anyway.\n", habit.Name, period)
	}

	if err := ctx.Store.AddCompletion(habit.ID, at); err != nil {
		return err
	}
	habit.AddCompletion(at)

	fmt.Printf("Completed habit %q for %s\n", habit.Name, at.Format(constants.DateFormat))
	fmt.Printf("Current streak: %d %s period(s)\n",
		streak.CurrentStreak(habit.Cadence, habit.Completions, now), habit.Cadence)
	return nil
}

type HabitUpdateCmd struct {
	Name    string `arg:"" help:"Habit name."`
	Rename  string `help:"New habit name."`
	Cadence string `help:"New cadence: daily or weekly."`
}

func (c *HabitUpdateCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	updated := false
	if c.Rename != "" {
		if strings.TrimSpace(c.Rename) == "" {
			return fmt.Errorf("new name must not be empty")
		}
		habit.Name = strings.TrimSpace(c.Rename)
		updated = true
	}
	if c.Cadence != "" {
		cadence, err := models.ParseCadence(c.Cadence)
		if err != nil {
			return err
		}
		if cadence != habit.Cadence {
			// Existing completions are reinterpreted under the new
			// cadence's period semantics; warn rather than recompute.
			fmt.Printf("Warning: changing cadence from %s to %s reinterprets the habit's history and resets streak meaning.\n",
				habit.Cadence, cadence)
			logger.Warn("Cadence changed on existing habit", "habit", habit.Name, "from", habit.Cadence, "to", cadence)
			habit.Cadence = cadence
			updated = true
		}
	}

	if !updated {
		fmt.Println("Nothing to update. Use --rename or --cadence.")
		return nil
	}

	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}
	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit %q and its %d completion(s).\n", habit.Name, len(habit.Completions))
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max < 4 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
