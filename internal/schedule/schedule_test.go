package schedule

import (
	"testing"

	"github.com/framely/framely/internal/models"
)

func TestIsScheduled_Everyday(t *testing.T) {
	h := models.Habit{ID: "h1", Frequency: models.Frequency{Type: models.FrequencyEveryday}}

	for _, day := range []string{"2025-12-29", "2025-12-30", "2025-12-31"} {
		if !IsScheduled(h, day) {
			t.Errorf("everyday habit should be scheduled on %s", day)
		}
	}
}

func TestIsScheduled_SpecificWeekdays(t *testing.T) {
	// Mon/Wed/Fri
	h := models.Habit{ID: "h1", Frequency: models.Frequency{
		Type: models.FrequencySpecific,
		Days: []int{1, 3, 5},
	}}

	cases := []struct {
		day  string
		want bool
	}{
		{"2025-12-29", true},  // Monday
		{"2025-12-30", false}, // Tuesday
		{"2025-12-31", true},  // Wednesday
		{"2026-01-01", false}, // Thursday
		{"2026-01-02", true},  // Friday
		{"2026-01-03", false}, // Saturday
		{"2026-01-04", false}, // Sunday
	}
	for _, c := range cases {
		if got := IsScheduled(h, c.day); got != c.want {
			t.Errorf("IsScheduled(%s) = %v, want %v", c.day, got, c.want)
		}
	}
}

func TestIsScheduled_EveryOtherDay_EpochParity(t *testing.T) {
	h := models.Habit{ID: "h1", Frequency: models.Frequency{Type: models.FrequencyEveryOtherDay}}

	// 2025-12-30 is an even number of days since 1970-01-01.
	if !IsScheduled(h, "2025-12-30") {
		t.Error("expected 2025-12-30 scheduled (even epoch day)")
	}
	if IsScheduled(h, "2025-12-31") {
		t.Error("expected 2025-12-31 not scheduled (odd epoch day)")
	}
	if !IsScheduled(h, "2026-01-01") {
		t.Error("expected 2026-01-01 scheduled (even epoch day)")
	}
	// Parity is anchored to the epoch, not to when the habit was created.
	if !IsScheduled(h, "1970-01-01") {
		t.Error("expected epoch day zero scheduled")
	}
}

func TestIsScheduled_PauseOverridesEveryRule(t *testing.T) {
	frequencies := []models.Frequency{
		{Type: models.FrequencyEveryday},
		{Type: models.FrequencySpecific, Days: []int{0, 1, 2, 3, 4, 5, 6}},
		{Type: models.FrequencyEveryOtherDay},
	}

	for _, f := range frequencies {
		h := models.Habit{
			ID:         "h1",
			Frequency:  f,
			PauseStart: "2025-12-20",
			PauseEnd:   "2025-12-31",
		}
		for _, day := range []string{"2025-12-20", "2025-12-25", "2025-12-31"} {
			if IsScheduled(h, day) {
				t.Errorf("freq %s: paused day %s must not be scheduled", f.Type, day)
			}
		}
		// Window edges are inclusive; outside resumes.
		if !IsScheduled(h, "2026-01-01") && f.Type != models.FrequencyEveryOtherDay {
			t.Errorf("freq %s: should be scheduled after pause ends", f.Type)
		}
	}
}

func TestIsPaused_WindowInclusive(t *testing.T) {
	h := models.Habit{PauseStart: "2025-12-20", PauseEnd: "2025-12-22"}

	cases := []struct {
		day  string
		want bool
	}{
		{"2025-12-19", false},
		{"2025-12-20", true},
		{"2025-12-21", true},
		{"2025-12-22", true},
		{"2025-12-23", false},
	}
	for _, c := range cases {
		if got := IsPaused(h, c.day); got != c.want {
			t.Errorf("IsPaused(%s) = %v, want %v", c.day, got, c.want)
		}
	}
}

func TestIsPaused_NoWindow(t *testing.T) {
	h := models.Habit{}
	if IsPaused(h, "2025-12-20") {
		t.Error("habit without a pause window is never paused")
	}
}

func TestIsScheduled_UnknownRuleDefaultsDue(t *testing.T) {
	h := models.Habit{ID: "h1", Frequency: models.Frequency{Type: "someFutureRule"}}
	if !IsScheduled(h, "2025-12-30") {
		t.Error("unknown rule on a stored record should fall back to scheduled")
	}
}
