package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/lmoren/ritual/internal/constants"
	"github.com/lmoren/ritual/internal/models"
	"github.com/lmoren/ritual/internal/storage"
	"github.com/lmoren/ritual/internal/tui/components/habitlist"
	"github.com/lmoren/ritual/internal/tui/components/summary"
)

// HabitFormModel holds the add-habit form inputs.
type HabitFormModel struct {
	Name    string
	Cadence string
}

type Model struct {
	store         storage.Provider
	settings      models.Settings
	now           time.Time
	state         constants.SessionState
	keys          KeyMap
	help          help.Model
	habitList     habitlist.Model
	summaryModel  summary.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	habitToDelete habitlist.DeleteHabitMsg
	formError     string
	quitting      bool
	width         int
	height        int
}

func NewModel(store storage.Provider, settings models.Settings, now time.Time) Model {
	habits, err := store.GetAllHabits()
	if err != nil {
		habits = []models.Habit{}
	}

	return Model{
		store:        store,
		settings:     settings,
		now:          now,
		state:        constants.StateHabits,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		habitList:    habitlist.New(habits, now, 0, 0),
		summaryModel: summary.New(habits, settings.StruggleThreshold, settings.RateWindowDays, now),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == constants.StateHabits {
		keys = append(keys, m.keys.Add, m.keys.Complete, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	if m.state == constants.StateHabits {
		actions = []key.Binding{m.keys.Add, m.keys.Complete, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh reloads habits from storage and pushes them into both views.
func (m *Model) refresh() {
	habits, err := m.store.GetAllHabits()
	if err != nil {
		return
	}
	m.habitList.SetHabits(habits, m.now)
	m.summaryModel.SetHabits(habits, m.now)
}
