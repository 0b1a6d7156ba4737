package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/framely/framely/internal/models"
	"github.com/framely/framely/internal/schedule"
)

var tabLabels = [tabCount]string{"Today", "Habits", "Covers"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.session == StateAddHabit && m.form != nil {
		return docStyle.Render(m.form.View())
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.session {
	case StateToday:
		b.WriteString(m.renderToday())
	case StateHabits:
		b.WriteString(m.renderHabits())
	case StateCovers:
		b.WriteString(m.renderCovers())
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.errMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, tabCount)
	active := m.session
	if active == StateAddHabit {
		active = m.previous
	}
	for i, label := range tabLabels {
		if SessionState(i) == active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderToday() string {
	due := m.dueToday()
	if len(due) == 0 {
		return pausedStyle.Render("Nothing due today.")
	}

	today := m.eng.Today()
	var b strings.Builder
	for i, h := range due {
		mark := "[ ]"
		line := h.Title
		if m.state.Completions.Completed(h.ID, today) {
			mark = "[x]"
			line = doneStyle.Render(line)
		}
		if streak := m.eng.Streak(m.state, h.ID); streak > 1 {
			line += " " + streakBadgeStyle.Render(fmt.Sprintf("%d🔥", streak))
		}
		prefix := "  "
		if m.session == StateToday && i == m.cursor {
			prefix = selectedStyle.Render("> ")
			mark = selectedStyle.Render(mark)
		}
		fmt.Fprintf(&b, "%s%s %s\n", prefix, mark, line)
	}
	return b.String()
}

func (m Model) renderHabits() string {
	if len(m.state.Habits) == 0 {
		return pausedStyle.Render("No habits yet. Press 'a' to add one.")
	}

	today := m.eng.Today()
	var b strings.Builder
	for i, h := range m.state.Habits {
		line := fmt.Sprintf("%s  %s", h.Title, describeFrequency(h.Frequency))
		if schedule.IsPaused(h, today) {
			line = pausedStyle.Render(line + "  (paused)")
		}
		prefix := "  "
		if i == m.cursor {
			prefix = selectedStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%s\n", prefix, line)
	}
	return b.String()
}

func (m Model) renderCovers() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", coverStyle.Render(fmt.Sprintf("Covers remaining: %d", m.state.Covers.CoversRemaining)))

	if len(m.state.Covers.CoveredDates) == 0 {
		b.WriteString(pausedStyle.Render("No missed days have been covered this month."))
		return b.String()
	}

	dates := make([]string, len(m.state.Covers.CoveredDates))
	copy(dates, m.state.Covers.CoveredDates)
	sort.Strings(dates)

	b.WriteString("Covered dates:\n")
	for _, d := range dates {
		fmt.Fprintf(&b, "  %s\n", coverStyle.Render(d))
	}
	return b.String()
}

func describeFrequency(f models.Frequency) string {
	switch f.Type {
	case models.FrequencySpecific:
		names := make([]string, 0, len(f.Days))
		for _, d := range f.Days {
			if d >= 0 && d < 7 {
				names = append(names, shortWeekday(d))
			}
		}
		return pausedStyle.Render(strings.Join(names, ","))
	case models.FrequencyEveryOtherDay:
		return pausedStyle.Render("every other day")
	default:
		return pausedStyle.Render("every day")
	}
}

func shortWeekday(d int) string {
	return [...]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}[d]
}
