package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/framely/framely/internal/constants"
	"github.com/framely/framely/internal/engine"
	"github.com/framely/framely/internal/ledger"
	"github.com/framely/framely/internal/models"
	"github.com/framely/framely/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Engine *engine.Engine
}

// loadState opens the store and assembles the engine snapshot, running the
// on-load refresh (monthly grant + missed-day evaluation).
func loadState(ctx *Context) (engine.State, error) {
	if err := ctx.Store.Load(); err != nil {
		return engine.State{}, err
	}

	habits, err := ctx.Store.LoadHabits()
	if err != nil {
		return engine.State{}, fmt.Errorf("failed to load habits: %w", err)
	}
	completions, err := ctx.Store.LoadCompletions()
	if err != nil {
		return engine.State{}, fmt.Errorf("failed to load completions: %w", err)
	}
	coverState, err := ctx.Store.LoadCoverState()
	if err != nil {
		return engine.State{}, fmt.Errorf("failed to load cover state: %w", err)
	}

	state := engine.State{
		Habits:      habits,
		Completions: ledger.Ledger(completions),
		Covers:      coverState,
	}
	state = ctx.Engine.Refresh(state)

	// Persist watermark/grant movement from the refresh so re-opening the
	// store is idempotent.
	if err := ctx.Store.SaveCoverState(state.Covers); err != nil {
		return engine.State{}, fmt.Errorf("failed to save cover state: %w", err)
	}

	return state, nil
}

// saveState persists all three records after a mutating transition.
func saveState(ctx *Context, state engine.State) error {
	if err := ctx.Store.SaveHabits(state.Habits); err != nil {
		return fmt.Errorf("failed to save habits: %w", err)
	}
	if err := ctx.Store.SaveCompletions(state.Completions); err != nil {
		return fmt.Errorf("failed to save completions: %w", err)
	}
	if err := ctx.Store.SaveCoverState(state.Covers); err != nil {
		return fmt.Errorf("failed to save cover state: %w", err)
	}
	return nil
}

// findHabit resolves a habit by id or (exact) title.
func findHabit(state engine.State, ref string) (models.Habit, error) {
	for _, h := range state.Habits {
		if h.ID == ref || h.Title == ref {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %q not found", ref)
}

func parseWeekdays(s string) ([]int, error) {
	dayMap := map[string]int{
		"sun": 0, "sunday": 0,
		"mon": 1, "monday": 1,
		"tue": 2, "tuesday": 2,
		"wed": 3, "wednesday": 3,
		"thu": 4, "thursday": 4,
		"fri": 5, "friday": 5,
		"sat": 6, "saturday": 6,
	}

	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if d, ok := dayMap[part]; ok {
			days = append(days, d)
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		days = append(days, num)
	}

	return days, nil
}

func parseFrequency(freq, daysArg string) (models.Frequency, error) {
	switch freq {
	case "everyday", "daily", "":
		return models.Frequency{Type: models.FrequencyEveryday}, nil
	case "every-other-day", "alternating":
		return models.Frequency{Type: models.FrequencyEveryOtherDay}, nil
	case "weekdays", "specific":
		if daysArg == "" {
			return models.Frequency{}, fmt.Errorf("--days is required with --freq=%s", freq)
		}
		days, err := parseWeekdays(daysArg)
		if err != nil {
			return models.Frequency{}, err
		}
		return models.Frequency{Type: models.FrequencySpecific, Days: days}, nil
	default:
		return models.Frequency{}, fmt.Errorf("unknown frequency %q (expected everyday, weekdays, or every-other-day)", freq)
	}
}

func formatFrequency(f models.Frequency) string {
	switch f.Type {
	case models.FrequencyEveryday:
		return "everyday"
	case models.FrequencySpecific:
		var names []string
		for _, d := range f.Days {
			if d >= 0 && d < len(constants.WeekdayNames) {
				names = append(names, constants.WeekdayNames[d])
			}
		}
		return "on " + strings.Join(names, ",")
	case models.FrequencyEveryOtherDay:
		return "every other day"
	default:
		return string(f.Type)
	}
}
