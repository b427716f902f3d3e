package summary

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lmoren/ritual/internal/analytics"
	"github.com/lmoren/ritual/internal/models"
	"github.com/lmoren/ritual/internal/streak"
)

var (
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	strugglingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

type Model struct {
	habits     []models.Habit
	stats      analytics.Summary
	struggling []models.Habit
	threshold  float64
	windowDays int
	now        time.Time
}

func New(habits []models.Habit, threshold float64, windowDays int, now time.Time) Model {
	m := Model{threshold: threshold, windowDays: windowDays}
	m.SetHabits(habits, now)
	return m
}

// SetHabits recomputes all aggregate statistics against now.
func (m *Model) SetHabits(habits []models.Habit, now time.Time) {
	m.habits = habits
	m.now = now
	m.stats = analytics.Summarize(habits, now)
	m.struggling = analytics.Struggling(habits, m.threshold, m.windowDays, now)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Overall Statistics"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s %d (%d daily, %d weekly)\n",
		labelStyle.Render("Tracked habits:"), m.stats.TotalHabits, m.stats.DailyHabits, m.stats.WeeklyHabits))
	b.WriteString(fmt.Sprintf("  %s %d active, %d broken\n",
		labelStyle.Render("Status:        "), m.stats.ActiveHabits, m.stats.BrokenHabits))
	b.WriteString(fmt.Sprintf("  %s %d\n",
		labelStyle.Render("Completions:   "), m.stats.TotalCompletions))
	b.WriteString(fmt.Sprintf("  %s %d period(s)\n",
		labelStyle.Render("Longest streak:"), m.stats.LongestStreak))
	b.WriteString(fmt.Sprintf("  %s %.2f period(s)\n",
		labelStyle.Render("Average streak:"), m.stats.AverageStreak))

	if best, ok := analytics.BestHabit(m.habits); ok && m.stats.LongestStreak > 0 {
		b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Best habit:    "), best.Name))
	}

	b.WriteString("\n")
	b.WriteString(headingStyle.Render(fmt.Sprintf("Completion Rates (last %d days)", m.windowDays)))
	b.WriteString("\n\n")
	if len(m.habits) == 0 {
		b.WriteString("  No habits yet.\n")
	}
	for _, h := range m.habits {
		rate := analytics.CompletionRate(h, m.windowDays, m.now)
		cur := streak.CurrentStreak(h.Cadence, h.Completions, m.now)
		line := fmt.Sprintf("  %-30s %5.1f%%  (streak %d)\n", truncate(h.Name, 30), rate, cur)
		if rate < m.threshold {
			line = strugglingStyle.Render(line[:len(line)-1]) + "\n"
		}
		b.WriteString(line)
	}

	if len(m.struggling) > 0 {
		b.WriteString("\n")
		b.WriteString(strugglingStyle.Render(
			fmt.Sprintf("%d habit(s) below the %.0f%% threshold", len(m.struggling), m.threshold)))
		b.WriteString("\n")
	}

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
