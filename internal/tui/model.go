package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/framely/framely/internal/engine"
	"github.com/framely/framely/internal/models"
	"github.com/framely/framely/internal/schedule"
	"github.com/framely/framely/internal/storage"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateHabits
	StateCovers
	StateAddHabit
)

const tabCount = 3

// HabitFormModel backs the add-habit form.
type HabitFormModel struct {
	Title     string
	Frequency models.FrequencyType
	Days      string
}

type Model struct {
	store         storage.Provider
	eng           *engine.Engine
	state         engine.State
	session       SessionState
	previous      SessionState
	keys          KeyMap
	help          help.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	cursor        int
	width, height int
	errMsg        string
	quitting      bool
}

// NewModel assembles the TUI over an already-loaded engine snapshot.
func NewModel(store storage.Provider, eng *engine.Engine, state engine.State) Model {
	return Model{
		store:   store,
		eng:     eng,
		state:   state,
		session: StateToday,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// dueToday returns the habits scheduled (and not paused) today, in stored
// order, so the Today tab and the toggle cursor agree on indexing.
func (m Model) dueToday() []models.Habit {
	today := m.eng.Today()
	var due []models.Habit
	for _, h := range m.state.Habits {
		if schedule.IsScheduled(h, today) {
			due = append(due, h)
		}
	}
	return due
}

func (m Model) cursorMax() int {
	switch m.session {
	case StateToday:
		return len(m.dueToday()) - 1
	case StateHabits:
		return len(m.state.Habits) - 1
	}
	return 0
}

// persist saves all three records after a transition.
func (m *Model) persist() {
	if err := m.store.SaveHabits(m.state.Habits); err != nil {
		m.errMsg = fmt.Sprintf("save failed: %v", err)
		return
	}
	if err := m.store.SaveCompletions(m.state.Completions); err != nil {
		m.errMsg = fmt.Sprintf("save failed: %v", err)
		return
	}
	if err := m.store.SaveCoverState(m.state.Covers); err != nil {
		m.errMsg = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.errMsg = ""
}

func newHabitForm(f *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&f.Title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewSelect[models.FrequencyType]().
				Title("Frequency").
				Options(
					huh.NewOption("Every day", models.FrequencyEveryday),
					huh.NewOption("Specific weekdays", models.FrequencySpecific),
					huh.NewOption("Every other day", models.FrequencyEveryOtherDay),
				).
				Value(&f.Frequency),
			huh.NewInput().
				Title("Weekdays (for specific, e.g. mon,wed,fri)").
				Value(&f.Days),
		),
	)
}
