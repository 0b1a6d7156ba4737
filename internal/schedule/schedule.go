package schedule

import (
	"github.com/framely/framely/internal/dates"
	"github.com/framely/framely/internal/models"
)

// IsPaused reports whether the habit's pause window contains the date. The
// window is inclusive on both ends.
func IsPaused(habit models.Habit, day string) bool {
	if !habit.Paused() {
		return false
	}
	return day >= habit.PauseStart && day <= habit.PauseEnd
}

// IsScheduled reports whether the habit is due on the given date. Pause
// takes absolute priority: a paused day is never due, never missed, and
// never consumes a cover.
func IsScheduled(habit models.Habit, day string) bool {
	if IsPaused(habit, day) {
		return false
	}

	switch habit.Frequency.Type {
	case models.FrequencyEveryday:
		return true

	case models.FrequencySpecific:
		wd, ok := dates.Weekday(day)
		if !ok {
			return false
		}
		for _, d := range habit.Frequency.Days {
			if d == int(wd) {
				return true
			}
		}
		return false

	case models.FrequencyEveryOtherDay:
		n, ok := dates.DaysSinceEpoch(day)
		if !ok {
			return true
		}
		return n%2 == 0
	}

	// Unknown or absent rule on a legacy record: treat as always scheduled
	// so the streak walk never chokes on partially-written data. New records
	// are rejected earlier by validation.
	return true
}
