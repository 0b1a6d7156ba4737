package models

import "time"

// FrequencyType discriminates the recurrence rule variants.
type FrequencyType string

const (
	// FrequencyEveryday schedules the habit on every calendar day.
	FrequencyEveryday FrequencyType = "everyday"
	// FrequencySpecific schedules the habit on a fixed set of weekdays.
	FrequencySpecific FrequencyType = "specific"
	// FrequencyEveryOtherDay schedules the habit on even days since the Unix
	// epoch. Parity is a pure function of the date, not of the habit's
	// creation date, so alternating habits are stable across restarts but
	// not phase-aligned to each other.
	FrequencyEveryOtherDay FrequencyType = "everyOtherDay"
)

// Frequency is the recurrence rule for a habit. Days is only meaningful for
// FrequencySpecific and holds weekdays with Sunday=0.
type Frequency struct {
	Type FrequencyType `json:"type"`
	Days []int         `json:"days,omitempty"`
}

// Habit represents a recurring practice to track.
type Habit struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Color       string    `json:"color,omitempty"`
	// Reminders are opaque time-of-day strings; the engine passes them
	// through untouched.
	Reminders []string  `json:"reminders,omitempty"`
	Frequency Frequency `json:"frequency"`
	// PauseStart/PauseEnd delimit an inclusive date range during which the
	// habit is never due. Both are set or both are empty.
	PauseStart string `json:"pause_start,omitempty"`
	PauseEnd   string `json:"pause_end,omitempty"`
}

// Paused reports whether the habit currently carries a pause window.
func (h Habit) Paused() bool {
	return h.PauseStart != "" && h.PauseEnd != ""
}

// CompletionEvent records that a habit was completed on a day. Events are
// immutable once created; toggling off removes the event entirely.
type CompletionEvent struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	CreatedAt time.Time `json:"created_at"`
}

// CoverState is the process-wide cover pool. Covers are shared across all
// habits: a date lands in CoveredDates when any habit missed it and a cover
// was available at evaluation time.
type CoverState struct {
	CoversRemaining int      `json:"covers_remaining"`
	CoveredDates    []string `json:"covered_dates"`
	// LastCoverGrantMonth is the YYYY-MM month of the most recent monthly
	// grant, empty before the first grant.
	LastCoverGrantMonth string `json:"last_cover_grant_month,omitempty"`
	// LastEvaluationDate is the watermark through which the missed-day scan
	// has already run. It advances monotonically and is never rewound.
	LastEvaluationDate string `json:"last_evaluation_date,omitempty"`
}

// Covered reports whether the given date is protected by a cover.
func (c CoverState) Covered(day string) bool {
	for _, d := range c.CoveredDates {
		if d == day {
			return true
		}
	}
	return false
}

// MostRecentCovered returns the latest covered date, or "" when none exist.
func (c CoverState) MostRecentCovered() string {
	latest := ""
	for _, d := range c.CoveredDates {
		if d > latest {
			latest = d
		}
	}
	return latest
}

// Clone returns a deep copy so transition functions can return fresh state
// without aliasing the caller's slice.
func (c CoverState) Clone() CoverState {
	out := c
	out.CoveredDates = append([]string(nil), c.CoveredDates...)
	return out
}

// Settings holds per-store user preferences.
type Settings struct {
	DefaultColor string `json:"default_color"`
	StatsDays    int    `json:"stats_days"`
}
