package ledger

import "testing"

func TestToggle_AddThenRemove(t *testing.T) {
	var l Ledger

	l, added := l.Toggle("h1", "2025-12-30")
	if !added {
		t.Fatal("first toggle should add")
	}
	if !l.Completed("h1", "2025-12-30") {
		t.Error("expected completion after toggle on")
	}
	if len(l) != 1 {
		t.Fatalf("expected 1 event, got %d", len(l))
	}
	if l[0].ID == "" {
		t.Error("completion event should carry an id")
	}

	l, added = l.Toggle("h1", "2025-12-30")
	if added {
		t.Fatal("second toggle should remove")
	}
	if l.Completed("h1", "2025-12-30") {
		t.Error("expected no completion after toggle off")
	}
	if len(l) != 0 {
		t.Fatalf("expected 0 events, got %d", len(l))
	}
}

func TestToggle_DoesNotMutateOriginal(t *testing.T) {
	var l Ledger
	l, _ = l.Toggle("h1", "2025-12-29")

	l2, _ := l.Toggle("h1", "2025-12-30")
	if len(l) != 1 {
		t.Errorf("original ledger changed: len %d", len(l))
	}
	if len(l2) != 2 {
		t.Errorf("expected new ledger with 2 events, got %d", len(l2))
	}
}

func TestCompleted_IsPerHabit(t *testing.T) {
	var l Ledger
	l, _ = l.Toggle("h1", "2025-12-30")

	if l.Completed("h2", "2025-12-30") {
		t.Error("h2 has no completion on that day")
	}
	if l.Completed("h1", "2025-12-29") {
		t.Error("h1 has no completion on that day")
	}
}

func TestDatesFor(t *testing.T) {
	var l Ledger
	l, _ = l.Toggle("h1", "2025-12-28")
	l, _ = l.Toggle("h1", "2025-12-30")
	l, _ = l.Toggle("h2", "2025-12-29")

	dates := l.DatesFor("h1")
	if len(dates) != 2 {
		t.Fatalf("expected 2 dates for h1, got %d", len(dates))
	}

	set := l.DateSetFor("h1")
	if !set["2025-12-28"] || !set["2025-12-30"] {
		t.Error("date set missing h1 completions")
	}
	if set["2025-12-29"] {
		t.Error("date set contains another habit's completion")
	}
}

func TestRemoveHabit_Cascades(t *testing.T) {
	var l Ledger
	l, _ = l.Toggle("h1", "2025-12-29")
	l, _ = l.Toggle("h1", "2025-12-30")
	l, _ = l.Toggle("h2", "2025-12-30")

	l = l.RemoveHabit("h1")
	if len(l) != 1 {
		t.Fatalf("expected 1 surviving event, got %d", len(l))
	}
	if l[0].HabitID != "h2" {
		t.Errorf("expected h2's event to survive, got %s", l[0].HabitID)
	}
}
