package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/framely/framely/internal/covers"
	"github.com/framely/framely/internal/dates"
	"github.com/framely/framely/internal/ledger"
	"github.com/framely/framely/internal/models"
	"github.com/framely/framely/internal/schedule"
	"github.com/framely/framely/internal/streak"
	"github.com/framely/framely/internal/validation"
)

// State is the in-memory snapshot the engine transitions. The engine is
// logically single-threaded: every operation maps (state, inputs) to a new
// state with no internal suspension points, and the caller serializes
// mutations and persists the result. It is not safe for unsynchronized
// concurrent mutation of the same snapshot.
type State struct {
	Habits      []models.Habit
	Completions ledger.Ledger
	Covers      models.CoverState
}

// Engine applies user actions to a State. Today is injectable so evaluation
// is deterministic under test; a zero value falls back to the wall clock.
type Engine struct {
	today func() string
}

func New() *Engine {
	return &Engine{today: dates.Today}
}

// NewAt returns an engine pinned to a fixed "today", for tests and for
// re-evaluating historical snapshots.
func NewAt(today string) *Engine {
	return &Engine{today: func() string { return today }}
}

func (e *Engine) Today() string {
	return e.today()
}

// Refresh is the on-load transition: grant the monthly cover if due, then
// advance the missed-day evaluation to today. Running it twice with no new
// data yields the same state.
func (e *Engine) Refresh(s State) State {
	today := e.today()
	s.Covers = covers.GrantMonthly(s.Covers, today)
	s.Covers = covers.EvaluateMissedDays(s.Habits, s.Completions, s.Covers, today)
	return s
}

// AddHabit validates and appends a new habit, then re-evaluates: a habit
// scheduled on already-elapsed days this month changes which days count as
// missed.
func (e *Engine) AddHabit(s State, title, description, color string, reminders []string, freq models.Frequency) (State, models.Habit, error) {
	if err := validation.ValidateFrequency(freq); err != nil {
		return s, models.Habit{}, err
	}
	h := models.Habit{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
		Color:       color,
		Reminders:   reminders,
		Frequency:   freq,
	}
	s.Habits = append(append([]models.Habit(nil), s.Habits...), h)
	s.Covers = covers.EvaluateMissedDays(s.Habits, s.Completions, s.Covers, e.today())
	return s, h, nil
}

// UpdateHabit replaces an existing habit by id.
func (e *Engine) UpdateHabit(s State, h models.Habit) (State, error) {
	if err := validation.ValidateFrequency(h.Frequency); err != nil {
		return s, err
	}
	out := append([]models.Habit(nil), s.Habits...)
	for i := range out {
		if out[i].ID == h.ID {
			out[i] = h
			s.Habits = out
			s.Covers = covers.EvaluateMissedDays(s.Habits, s.Completions, s.Covers, e.today())
			return s, nil
		}
	}
	return s, fmt.Errorf("habit not found: %s", h.ID)
}

// RemoveHabit deletes a habit and cascades its completion events.
func (e *Engine) RemoveHabit(s State, habitID string) (State, error) {
	found := false
	kept := make([]models.Habit, 0, len(s.Habits))
	for _, h := range s.Habits {
		if h.ID == habitID {
			found = true
			continue
		}
		kept = append(kept, h)
	}
	if !found {
		return s, fmt.Errorf("habit not found: %s", habitID)
	}
	s.Habits = kept
	s.Completions = s.Completions.RemoveHabit(habitID)
	s.Covers = covers.EvaluateMissedDays(s.Habits, s.Completions, s.Covers, e.today())
	return s, nil
}

// ToggleCompletion flips the completion state for (habit, day) with the
// required ordering: apply the ledger toggle, release a cover when an
// addition fills the most recent covered date, then re-run the missed-day
// evaluation unconditionally. Returns whether the toggle was an addition.
func (e *Engine) ToggleCompletion(s State, habitID, day string) (State, bool, error) {
	if _, ok := e.habit(s, habitID); !ok {
		return s, false, fmt.Errorf("habit not found: %s", habitID)
	}
	if !dates.IsValid(day) {
		return s, false, fmt.Errorf("invalid date: %s", day)
	}

	l, added := s.Completions.Toggle(habitID, day)
	s.Completions = l
	if added {
		s.Covers = covers.ReleaseOnRetroactiveCompletion(day, s.Covers)
	}
	s.Covers = covers.EvaluateMissedDays(s.Habits, s.Completions, s.Covers, e.today())
	return s, added, nil
}

// Pause sets the habit's pause window. Changing the window changes which
// elapsed days count as missed, so the evaluation re-runs.
func (e *Engine) Pause(s State, habitID, start, end string) (State, error) {
	if !dates.IsValid(start) || !dates.IsValid(end) {
		return s, fmt.Errorf("invalid pause window: %s..%s", start, end)
	}
	if end < start {
		return s, fmt.Errorf("pause end %s precedes start %s", end, start)
	}
	return e.setPause(s, habitID, start, end)
}

// Resume clears the habit's pause window.
func (e *Engine) Resume(s State, habitID string) (State, error) {
	return e.setPause(s, habitID, "", "")
}

func (e *Engine) setPause(s State, habitID, start, end string) (State, error) {
	out := append([]models.Habit(nil), s.Habits...)
	for i := range out {
		if out[i].ID == habitID {
			out[i].PauseStart = start
			out[i].PauseEnd = end
			s.Habits = out
			s.Covers = covers.EvaluateMissedDays(s.Habits, s.Completions, s.Covers, e.today())
			return s, nil
		}
	}
	return s, fmt.Errorf("habit not found: %s", habitID)
}

// IsDue reports whether the habit is scheduled today and not yet completed.
func (e *Engine) IsDue(s State, habitID string) bool {
	h, ok := e.habit(s, habitID)
	if !ok {
		return false
	}
	today := e.today()
	return schedule.IsScheduled(h, today) && !s.Completions.Completed(habitID, today)
}

// Streak returns the habit's current streak against this snapshot.
func (e *Engine) Streak(s State, habitID string) int {
	h, ok := e.habit(s, habitID)
	if !ok {
		return 0
	}
	return streak.Current(h, s.Completions, s.Covers, e.today())
}

func (e *Engine) habit(s State, habitID string) (models.Habit, bool) {
	for _, h := range s.Habits {
		if h.ID == habitID {
			return h, true
		}
	}
	return models.Habit{}, false
}
