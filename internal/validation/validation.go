package validation

import (
	"fmt"

	"github.com/framely/framely/internal/models"
)

// ValidateFrequency rejects malformed recurrence rules at construction time.
// The schedule evaluator still tolerates unknown rules on legacy records,
// but nothing new enters the store without passing here.
func ValidateFrequency(f models.Frequency) error {
	switch f.Type {
	case models.FrequencyEveryday, models.FrequencyEveryOtherDay:
		if len(f.Days) > 0 {
			return fmt.Errorf("frequency %q does not take weekdays", f.Type)
		}
		return nil
	case models.FrequencySpecific:
		if len(f.Days) == 0 {
			return fmt.Errorf("specific-weekday frequency requires at least one weekday")
		}
		seen := make(map[int]bool)
		for _, d := range f.Days {
			if d < 0 || d > 6 {
				return fmt.Errorf("invalid weekday %d (expected 0-6, Sunday=0)", d)
			}
			if seen[d] {
				return fmt.Errorf("duplicate weekday %d", d)
			}
			seen[d] = true
		}
		return nil
	case "":
		return fmt.Errorf("frequency type is required")
	default:
		return fmt.Errorf("unknown frequency type %q", f.Type)
	}
}

// ValidateHabit checks the fields a new or updated habit must carry.
func ValidateHabit(h models.Habit) error {
	if h.Title == "" {
		return fmt.Errorf("habit title is required")
	}
	if err := ValidateFrequency(h.Frequency); err != nil {
		return err
	}
	if (h.PauseStart == "") != (h.PauseEnd == "") {
		return fmt.Errorf("pause window requires both start and end")
	}
	if h.Paused() && h.PauseEnd < h.PauseStart {
		return fmt.Errorf("pause end %s precedes start %s", h.PauseEnd, h.PauseStart)
	}
	return nil
}
