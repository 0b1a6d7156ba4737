package dates

import (
	"testing"
	"time"
)

func TestAddDays_CrossesMonthBoundary(t *testing.T) {
	if got := AddDays("2025-12-31", 1); got != "2026-01-01" {
		t.Errorf("expected 2026-01-01, got %s", got)
	}
	if got := AddDays("2026-01-01", -1); got != "2025-12-31" {
		t.Errorf("expected 2025-12-31, got %s", got)
	}
}

func TestAddDays_LeapDay(t *testing.T) {
	if got := AddDays("2024-02-28", 1); got != "2024-02-29" {
		t.Errorf("expected 2024-02-29, got %s", got)
	}
	if got := AddDays("2025-02-28", 1); got != "2025-03-01" {
		t.Errorf("expected 2025-03-01, got %s", got)
	}
}

func TestAddDays_InvalidInputUnchanged(t *testing.T) {
	if got := AddDays("not-a-date", 5); got != "not-a-date" {
		t.Errorf("expected input unchanged, got %s", got)
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"2025-12-29", "2025-12-31", 2},
		{"2025-12-31", "2025-12-29", -2},
		{"2025-12-31", "2025-12-31", 0},
		{"2025-12-31", "2026-01-02", 2},
	}
	for _, c := range cases {
		if got := DaysBetween(c.a, c.b); got != c.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestDaysSinceEpoch(t *testing.T) {
	cases := []struct {
		date string
		want int
	}{
		{"1970-01-01", 0},
		{"1970-01-02", 1},
		{"1970-01-03", 2},
		{"2025-12-30", 20452},
	}
	for _, c := range cases {
		got, ok := DaysSinceEpoch(c.date)
		if !ok {
			t.Fatalf("DaysSinceEpoch(%s) reported not ok", c.date)
		}
		if got != c.want {
			t.Errorf("DaysSinceEpoch(%s) = %d, want %d", c.date, got, c.want)
		}
	}

	if _, ok := DaysSinceEpoch("garbage"); ok {
		t.Error("expected not ok for invalid date")
	}
}

func TestWeekday(t *testing.T) {
	wd, ok := Weekday("2025-12-31") // Wednesday
	if !ok {
		t.Fatal("Weekday reported not ok")
	}
	if wd != time.Wednesday {
		t.Errorf("expected Wednesday, got %v", wd)
	}

	if _, ok := Weekday("2025-13-99"); ok {
		t.Error("expected not ok for invalid date")
	}
}

func TestStartOfMonth(t *testing.T) {
	if got := StartOfMonth("2025-12-31"); got != "2025-12-01" {
		t.Errorf("expected 2025-12-01, got %s", got)
	}
	if got := StartOfMonth("2025-12-01"); got != "2025-12-01" {
		t.Errorf("expected 2025-12-01, got %s", got)
	}
}

func TestMonthOf(t *testing.T) {
	if got := MonthOf("2025-12-31"); got != "2025-12" {
		t.Errorf("expected 2025-12, got %s", got)
	}
}

func TestIsFuture(t *testing.T) {
	today := "2025-12-30"
	if IsFuture("2025-12-30", today) {
		t.Error("today is not future")
	}
	if !IsFuture("2025-12-31", today) {
		t.Error("tomorrow is future")
	}
	if IsFuture("2025-12-29", today) {
		t.Error("yesterday is not future")
	}
}

func TestPastDates(t *testing.T) {
	got := PastDates("2026-01-02", 4)
	want := []string{"2025-12-30", "2025-12-31", "2026-01-01", "2026-01-02"}
	if len(got) != len(want) {
		t.Fatalf("expected %d dates, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
