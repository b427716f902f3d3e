package analyze

import (
	"fmt"

	"github.com/lmoren/ritual/internal/analytics"
	"github.com/lmoren/ritual/internal/cli"
	"github.com/lmoren/ritual/internal/constants"
	"github.com/lmoren/ritual/internal/models"
	"github.com/lmoren/ritual/internal/streak"
)

type AnalyzeCmd struct {
	Summary    SummaryCmd    `cmd:"" help:"Show aggregate statistics across all habits." default:"1"`
	Longest    LongestCmd    `cmd:"" help:"Show the longest streak, overall or for one habit."`
	Rate       RateCmd       `cmd:"" help:"Show a habit's completion rate."`
	Struggling StrugglingCmd `cmd:"" help:"Show habits below the completion-rate threshold."`
	Top        TopCmd        `cmd:"" help:"Show the best-performing daily habits."`
}

type SummaryCmd struct{}

func (c *SummaryCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	_, now, err := ctx.SettingsAndNow()
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	s := analytics.Summarize(habits, now)
	fmt.Println("Overall Statistics")
	fmt.Printf("  Total habits:      %d\n", s.TotalHabits)
	fmt.Printf("    Daily habits:    %d\n", s.DailyHabits)
	fmt.Printf("    Weekly habits:   %d\n", s.WeeklyHabits)
	fmt.Printf("  Active habits:     %d\n", s.ActiveHabits)
	fmt.Printf("  Broken habits:     %d\n", s.BrokenHabits)
	fmt.Printf("  Total completions: %d\n", s.TotalCompletions)
	fmt.Printf("  Longest streak:    %d period(s)\n", s.LongestStreak)
	fmt.Printf("  Average streak:    %.2f period(s)\n", s.AverageStreak)
	return nil
}

type LongestCmd struct {
	Name string `arg:"" optional:"" help:"Habit name (omit for the best across all habits)."`
}

func (c *LongestCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if c.Name != "" {
		habit, err := ctx.Store.GetHabitByName(c.Name)
		if err != nil {
			return fmt.Errorf("habit %q not found", c.Name)
		}
		longest := streak.LongestStreak(habit.Cadence, habit.Completions)
		fmt.Printf("Longest streak for %q: %d %s period(s)\n", habit.Name, longest, habit.Cadence)
		return nil
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	longest := analytics.LongestStreakAll(habits)
	fmt.Printf("Longest streak: %d period(s)\n", longest)
	if best, ok := analytics.BestHabit(habits); ok && longest > 0 {
		fmt.Printf("Achieved by: %s (%s)\n", best.Name, best.Cadence)
	}
	return nil
}

type RateCmd struct {
	Name   string `arg:"" help:"Habit name."`
	Window int    `help:"Window in days." default:"0"`
}

func (c *RateCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, now, err := ctx.SettingsAndNow()
	if err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	window := c.Window
	if window <= 0 {
		window = settings.RateWindowDays
	}

	rate := analytics.CompletionRate(habit, window, now)
	fmt.Printf("%s: %.1f%% completion rate over the last %d days\n", habit.Name, rate, window)
	return nil
}

type StrugglingCmd struct {
	Threshold float64 `help:"Completion-rate threshold percentage." default:"0"`
}

func (c *StrugglingCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, now, err := ctx.SettingsAndNow()
	if err != nil {
		return err
	}

	threshold := c.Threshold
	if threshold <= 0 {
		threshold = settings.StruggleThreshold
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	struggling := analytics.Struggling(habits, threshold, settings.RateWindowDays, now)
	if len(struggling) == 0 {
		fmt.Printf("No habits below %.0f%% completion rate. Keep it up!\n", threshold)
		return nil
	}

	fmt.Printf("Struggling habits (below %.0f%% over the last %d days):\n", threshold, settings.RateWindowDays)
	for _, h := range struggling {
		rate := analytics.CompletionRate(h, settings.RateWindowDays, now)
		fmt.Printf("  %s: %.1f%%\n", h.Name, rate)
	}
	return nil
}

type TopCmd struct {
	Limit int `help:"Number of habits to show." default:"5"`
}

func (c *TopCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	_, now, err := ctx.SettingsAndNow()
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	limit := c.Limit
	if limit <= 0 {
		limit = constants.DefaultTopLimit
	}

	top := analytics.TopDaily(habits, now, limit)
	if len(top) == 0 {
		fmt.Println("No daily habits to rank yet.")
		return nil
	}

	fmt.Printf("Top %d daily performer(s):\n", len(top))
	for i, h := range top {
		fmt.Printf("  %d. %s - %d day streak\n", i+1,
			h.Name, streak.CurrentStreak(models.CadenceDaily, h.Completions, now))
	}
	return nil
}
