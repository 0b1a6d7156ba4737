package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/framely/framely/internal/models"
)

// Ledger is the set of completion events keyed by (habit, day). Operations
// return a new slice and never mutate events in place.
type Ledger []models.CompletionEvent

// Find returns the event for (habitID, day) if one exists.
func (l Ledger) Find(habitID, day string) (models.CompletionEvent, bool) {
	for _, e := range l {
		if e.HabitID == habitID && e.Day == day {
			return e, true
		}
	}
	return models.CompletionEvent{}, false
}

// Completed reports whether the habit has a completion event for the day.
func (l Ledger) Completed(habitID, day string) bool {
	_, ok := l.Find(habitID, day)
	return ok
}

// Toggle flips the completion state for (habitID, day). If an event exists
// it is removed (undo); otherwise a fresh event is inserted. The returned
// bool is true for an addition and false for a removal.
func (l Ledger) Toggle(habitID, day string) (Ledger, bool) {
	if _, ok := l.Find(habitID, day); ok {
		out := make(Ledger, 0, len(l)-1)
		for _, e := range l {
			if e.HabitID == habitID && e.Day == day {
				continue
			}
			out = append(out, e)
		}
		return out, false
	}

	out := make(Ledger, 0, len(l)+1)
	out = append(out, l...)
	out = append(out, models.CompletionEvent{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		Day:       day,
		CreatedAt: time.Now(),
	})
	return out, true
}

// DatesFor returns the set of days the habit was completed on.
func (l Ledger) DatesFor(habitID string) []string {
	var out []string
	for _, e := range l {
		if e.HabitID == habitID {
			out = append(out, e.Day)
		}
	}
	return out
}

// DateSetFor returns the habit's completed days as a lookup set.
func (l Ledger) DateSetFor(habitID string) map[string]bool {
	out := make(map[string]bool)
	for _, e := range l {
		if e.HabitID == habitID {
			out[e.Day] = true
		}
	}
	return out
}

// RemoveHabit drops every event belonging to the habit. Called as the
// cascade when a habit is deleted; the ledger itself never decides when.
func (l Ledger) RemoveHabit(habitID string) Ledger {
	out := make(Ledger, 0, len(l))
	for _, e := range l {
		if e.HabitID != habitID {
			out = append(out, e)
		}
	}
	return out
}
