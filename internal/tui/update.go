package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/framely/framely/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.session == StateAddHabit {
			return m.updateForm(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Tab):
			m.session = (m.session + 1) % tabCount
			m.cursor = 0
		case key.Matches(msg, m.keys.ShiftTab):
			m.session = (m.session + tabCount - 1) % tabCount
			m.cursor = 0
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.cursorMax() {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if m.session == StateToday {
				m.toggleSelected()
			}
		case key.Matches(msg, m.keys.Add):
			m.previous = m.session
			m.session = StateAddHabit
			m.habitForm = &HabitFormModel{Frequency: models.FrequencyEveryday}
			m.form = newHabitForm(m.habitForm)
			return m, m.form.Init()
		}
	}

	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.session = m.previous
		m.form = nil
		m.habitForm = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.submitHabitForm()
		m.session = m.previous
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m *Model) submitHabitForm() {
	f := m.habitForm
	m.habitForm = nil
	if f == nil {
		return
	}

	freq := models.Frequency{Type: f.Frequency}
	if f.Frequency == models.FrequencySpecific {
		days, err := parseDays(f.Days)
		if err != nil {
			m.errMsg = err.Error()
			return
		}
		freq.Days = days
	}

	color := ""
	if settings, err := m.store.GetSettings(); err == nil {
		color = settings.DefaultColor
	}

	state, _, err := m.eng.AddHabit(m.state, f.Title, "", color, nil, freq)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.state = state
	m.persist()
}

func (m *Model) toggleSelected() {
	due := m.dueToday()
	if m.cursor < 0 || m.cursor >= len(due) {
		return
	}

	state, _, err := m.eng.ToggleCompletion(m.state, due[m.cursor].ID, m.eng.Today())
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.state = state
	m.persist()
}

var dayNames = map[string]int{
	"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6,
}

func parseDays(s string) ([]int, error) {
	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		if d, ok := dayNames[part]; ok {
			days = append(days, d)
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		days = append(days, num)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("at least one weekday is required")
	}
	return days, nil
}
