package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/lmoren/ritual/internal/constants"
	"github.com/lmoren/ritual/internal/models"
	"github.com/lmoren/ritual/internal/tui/components/habitlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle Add Habit State
	if m.state == constants.StateAddHabit {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateHabits
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			name := strings.TrimSpace(m.habitForm.Name)
			if _, err := m.store.GetHabitByName(name); err == nil {
				m.formError = fmt.Sprintf("habit %q already exists", name)
				m.state = constants.StateHabits
				return m, tea.Batch(cmds...)
			}

			habit, err := models.NewHabit(name, m.habitForm.Cadence, m.now)
			if err != nil {
				m.formError = err.Error()
				m.state = constants.StateHabits
				return m, tea.Batch(cmds...)
			}

			if err := m.store.AddHabit(&habit); err != nil {
				m.formError = err.Error()
				m.state = constants.StateHabits
				return m, tea.Batch(cmds...)
			}

			m.formError = ""
			m.refresh()
			m.state = constants.StateHabits
		case huh.StateAborted:
			m.state = constants.StateHabits
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Delete State
	if m.state == constants.StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if err := m.store.DeleteHabit(m.habitToDelete.ID); err != nil {
					m.formError = err.Error()
				} else {
					m.formError = ""
					m.refresh()
				}
				m.state = constants.StateHabits
				return m, nil
			case "n", "N", "q", "esc":
				m.state = constants.StateHabits
				return m, nil
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Leave room for tabs, error line, and help
		m.habitList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
			if m.state == constants.StateHabits {
				m.state = constants.StateSummary
			} else {
				m.state = constants.StateHabits
			}
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{Cadence: string(models.CadenceDaily)}
		m.form = newHabitForm(m.habitForm)
		m.state = constants.StateAddHabit
		return m, m.form.Init()

	case habitlist.CompleteHabitMsg:
		if err := m.store.AddCompletion(msg.ID, m.now); err != nil {
			m.formError = err.Error()
		} else {
			m.formError = ""
			m.refresh()
		}
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.habitToDelete = msg
		m.state = constants.StateConfirmDelete
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateHabits:
		m.habitList, cmd = m.habitList.Update(msg)
	case constants.StateSummary:
		m.summaryModel, cmd = m.summaryModel.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// newHabitForm builds the add-habit form.
func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Cadence").
				Options(
					huh.NewOption("Daily", string(models.CadenceDaily)),
					huh.NewOption("Weekly", string(models.CadenceWeekly)),
				).
				Value(&fm.Cadence),
		),
	).WithTheme(huh.ThemeDracula())
}
