package engine

import (
	"testing"

	"github.com/framely/framely/internal/ledger"
	"github.com/framely/framely/internal/models"
)

func newDailyHabit(id string) models.Habit {
	return models.Habit{
		ID:        id,
		Title:     id,
		Frequency: models.Frequency{Type: models.FrequencyEveryday},
	}
}

func TestRefresh_GrantsAndEvaluates(t *testing.T) {
	e := NewAt("2025-12-30")
	h := newDailyHabit("h1")

	var l ledger.Ledger
	l, _ = l.Toggle("h1", "2025-12-30")

	s := State{
		Habits:      []models.Habit{h},
		Completions: l,
		Covers: models.CoverState{
			CoversRemaining:     1,
			CoveredDates:        []string{},
			LastCoverGrantMonth: "2025-11",
			LastEvaluationDate:  "2025-12-29",
		},
	}

	s = e.Refresh(s)
	if s.Covers.LastCoverGrantMonth != "2025-12" {
		t.Errorf("expected monthly grant, got month %s", s.Covers.LastCoverGrantMonth)
	}
	// Grant raised the pool to 2; 2025-12-29 was missed and spent one.
	if s.Covers.CoversRemaining != 1 {
		t.Errorf("expected 1 cover after grant+spend, got %d", s.Covers.CoversRemaining)
	}
	if !s.Covers.Covered("2025-12-29") {
		t.Errorf("expected 2025-12-29 covered, got %v", s.Covers.CoveredDates)
	}

	// Refresh is idempotent within the same day.
	again := e.Refresh(s)
	if again.Covers.CoversRemaining != s.Covers.CoversRemaining {
		t.Errorf("second refresh changed the pool: %d", again.Covers.CoversRemaining)
	}
}

func TestAddHabit_ValidatesFrequency(t *testing.T) {
	e := NewAt("2025-12-30")
	s := State{Covers: models.CoverState{LastEvaluationDate: "2025-12-30"}}

	_, _, err := e.AddHabit(s, "Read", "", "", nil, models.Frequency{Type: "sometimes"})
	if err == nil {
		t.Fatal("expected error for unknown frequency type")
	}

	out, h, err := e.AddHabit(s, "Read", "", "", nil, models.Frequency{Type: models.FrequencyEveryday})
	if err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
	if h.ID == "" {
		t.Error("new habit should carry a generated id")
	}
	if len(out.Habits) != 1 {
		t.Fatalf("expected 1 habit, got %d", len(out.Habits))
	}
	if len(s.Habits) != 0 {
		t.Error("input state must not be mutated")
	}
}

func TestToggleCompletion_ReleasesMostRecentCover(t *testing.T) {
	e := NewAt("2025-12-31")
	h := newDailyHabit("h1")

	var l ledger.Ledger
	l, _ = l.Toggle("h1", "2025-12-29")
	l, _ = l.Toggle("h1", "2025-12-31")

	s := State{
		Habits:      []models.Habit{h},
		Completions: l,
		Covers: models.CoverState{
			CoversRemaining:     1,
			CoveredDates:        []string{"2025-12-30"},
			LastCoverGrantMonth: "2025-12",
			LastEvaluationDate:  "2025-12-31",
		},
	}

	out, added, err := e.ToggleCompletion(s, "h1", "2025-12-30")
	if err != nil {
		t.Fatalf("ToggleCompletion failed: %v", err)
	}
	if !added {
		t.Fatal("expected an addition")
	}
	// The retroactive completion fills the most recent covered date, so the
	// cover is refunded and the re-evaluation finds nothing to respend.
	if out.Covers.CoversRemaining != 2 {
		t.Errorf("expected refunded pool of 2, got %d", out.Covers.CoversRemaining)
	}
	if out.Covers.Covered("2025-12-30") {
		t.Errorf("refunded date should be uncovered, got %v", out.Covers.CoveredDates)
	}
}

func TestToggleCompletion_OffRemovesEvent(t *testing.T) {
	e := NewAt("2025-12-31")
	h := newDailyHabit("h1")

	var l ledger.Ledger
	l, _ = l.Toggle("h1", "2025-12-31")

	s := State{
		Habits:      []models.Habit{h},
		Completions: l,
		Covers:      models.CoverState{CoversRemaining: 0, CoveredDates: []string{}, LastCoverGrantMonth: "2025-12", LastEvaluationDate: "2025-12-31"},
	}

	out, added, err := e.ToggleCompletion(s, "h1", "2025-12-31")
	if err != nil {
		t.Fatalf("ToggleCompletion failed: %v", err)
	}
	if added {
		t.Fatal("expected a removal")
	}
	if out.Completions.Completed("h1", "2025-12-31") {
		t.Error("completion should be gone after toggle off")
	}
}

func TestToggleCompletion_Errors(t *testing.T) {
	e := NewAt("2025-12-31")
	s := State{Habits: []models.Habit{newDailyHabit("h1")}}

	if _, _, err := e.ToggleCompletion(s, "missing", "2025-12-31"); err == nil {
		t.Error("expected error for unknown habit")
	}
	if _, _, err := e.ToggleCompletion(s, "h1", "yesterday"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestRemoveHabit_CascadesCompletions(t *testing.T) {
	e := NewAt("2025-12-31")
	var l ledger.Ledger
	l, _ = l.Toggle("h1", "2025-12-30")
	l, _ = l.Toggle("h2", "2025-12-30")

	s := State{
		Habits:      []models.Habit{newDailyHabit("h1"), newDailyHabit("h2")},
		Completions: l,
		Covers:      models.CoverState{LastCoverGrantMonth: "2025-12", LastEvaluationDate: "2025-12-31"},
	}

	out, err := e.RemoveHabit(s, "h1")
	if err != nil {
		t.Fatalf("RemoveHabit failed: %v", err)
	}
	if len(out.Habits) != 1 || out.Habits[0].ID != "h2" {
		t.Errorf("expected only h2 to remain, got %v", out.Habits)
	}
	if out.Completions.Completed("h1", "2025-12-30") {
		t.Error("h1's completions should be cascaded away")
	}
	if !out.Completions.Completed("h2", "2025-12-30") {
		t.Error("h2's completions should survive")
	}

	if _, err := e.RemoveHabit(s, "nope"); err == nil {
		t.Error("expected error for unknown habit")
	}
}

func TestPause_Validation(t *testing.T) {
	e := NewAt("2025-12-31")
	s := State{
		Habits: []models.Habit{newDailyHabit("h1")},
		Covers: models.CoverState{LastCoverGrantMonth: "2025-12", LastEvaluationDate: "2025-12-31"},
	}

	if _, err := e.Pause(s, "h1", "2026-01-10", "2026-01-05"); err == nil {
		t.Error("expected error when end precedes start")
	}
	if _, err := e.Pause(s, "h1", "bad", "2026-01-05"); err == nil {
		t.Error("expected error for malformed date")
	}

	out, err := e.Pause(s, "h1", "2026-01-01", "2026-01-05")
	if err != nil {
		t.Fatalf("Pause failed: %v", err)
	}
	if !out.Habits[0].Paused() {
		t.Error("habit should carry the pause window")
	}

	out, err = e.Resume(out, "h1")
	if err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if out.Habits[0].Paused() {
		t.Error("resume should clear the pause window")
	}
}

func TestIsDue(t *testing.T) {
	e := NewAt("2025-12-31")
	h := newDailyHabit("h1")

	s := State{Habits: []models.Habit{h}}
	if !e.IsDue(s, "h1") {
		t.Error("uncompleted everyday habit is due")
	}

	s.Completions, _ = s.Completions.Toggle("h1", "2025-12-31")
	if e.IsDue(s, "h1") {
		t.Error("completed habit is no longer due")
	}

	if e.IsDue(s, "missing") {
		t.Error("unknown habit is never due")
	}
}

func TestStreak_ViaEngine(t *testing.T) {
	e := NewAt("2024-01-04")
	h := newDailyHabit("h1")

	var l ledger.Ledger
	l, _ = l.Toggle("h1", "2024-01-01")
	l, _ = l.Toggle("h1", "2024-01-02")
	l, _ = l.Toggle("h1", "2024-01-03")

	s := State{Habits: []models.Habit{h}, Completions: l}
	if got := e.Streak(s, "h1"); got != 3 {
		t.Errorf("expected streak 3, got %d", got)
	}
	if got := e.Streak(s, "missing"); got != 0 {
		t.Errorf("expected streak 0 for unknown habit, got %d", got)
	}
}
