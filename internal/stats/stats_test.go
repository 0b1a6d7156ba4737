package stats

import (
	"testing"

	"github.com/framely/framely/internal/ledger"
	"github.com/framely/framely/internal/models"
)

func TestCompletion_EverydayWindow(t *testing.T) {
	h := models.Habit{ID: "h1", Frequency: models.Frequency{Type: models.FrequencyEveryday}}

	var l ledger.Ledger
	l, _ = l.Toggle("h1", "2025-12-28")
	l, _ = l.Toggle("h1", "2025-12-30")

	s := Completion(h, l, "2025-12-30", 7)
	if len(s.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(s.Days))
	}
	if s.Days[0].Day != "2025-12-24" || s.Days[6].Day != "2025-12-30" {
		t.Errorf("window misaligned: %s .. %s", s.Days[0].Day, s.Days[6].Day)
	}
	if s.TotalCompleted != 2 {
		t.Errorf("expected 2 completed, got %d", s.TotalCompleted)
	}
	want := float64(2) / 7 * 100
	if s.CompletionRate != want {
		t.Errorf("expected rate %.2f, got %.2f", want, s.CompletionRate)
	}
}

func TestCompletion_MarksScheduledDays(t *testing.T) {
	// Mon/Wed/Fri habit over a week ending Tuesday 2025-12-30.
	h := models.Habit{ID: "h1", Frequency: models.Frequency{
		Type: models.FrequencySpecific,
		Days: []int{1, 3, 5},
	}}

	s := Completion(h, nil, "2025-12-30", 7)
	scheduled := 0
	for _, d := range s.Days {
		if d.Scheduled {
			scheduled++
		}
	}
	// Wed 12-24, Fri 12-26, Mon 12-29.
	if scheduled != 3 {
		t.Errorf("expected 3 scheduled days in window, got %d", scheduled)
	}
}

func TestCompletion_ZeroWindow(t *testing.T) {
	h := models.Habit{ID: "h1", Frequency: models.Frequency{Type: models.FrequencyEveryday}}
	s := Completion(h, nil, "2025-12-30", 0)
	if len(s.Days) != 0 || s.CompletionRate != 0 {
		t.Errorf("expected empty summary, got %+v", s)
	}
}
