package streak

import (
	"sort"

	"github.com/framely/framely/internal/constants"
	"github.com/framely/framely/internal/dates"
	"github.com/framely/framely/internal/ledger"
	"github.com/framely/framely/internal/models"
	"github.com/framely/framely/internal/schedule"
)

// Current returns the habit's streak of consecutive adherence ending at or
// before today.
//
// Everyday and weekday habits count calendar days: the walk moves backward
// from today, skipping off-days and paused days, counting completed
// scheduled days, tolerating covered misses, and breaking on the first
// uncovered past miss. Today itself is pending, not failed.
//
// Every-other-day habits count occupied slots instead, because "due" depends
// on global date parity rather than a fixed per-day predicate: adjacent
// qualifying completions no more than two days apart (or bridged by a
// covered date) extend the streak.
func Current(habit models.Habit, l ledger.Ledger, covers models.CoverState, today string) int {
	if habit.Frequency.Type == models.FrequencyEveryOtherDay {
		return alternatingStreak(habit, l, covers, today)
	}
	return dailyStreak(habit, l, covers, today)
}

func dailyStreak(habit models.Habit, l ledger.Ledger, covers models.CoverState, today string) int {
	completed := l.DateSetFor(habit.ID)

	count := 0
	day := today
	for i := 0; i < constants.StreakLookbackDays; i++ {
		if schedule.IsScheduled(habit, day) {
			switch {
			case completed[day]:
				count++
			case covers.Covered(day):
				// Protected miss: neither breaks nor increments.
			case day == today:
				// Today is still in progress.
			default:
				return count
			}
		}
		day = dates.AddDays(day, -1)
	}
	return count
}

func alternatingStreak(habit models.Habit, l ledger.Ledger, covers models.CoverState, today string) int {
	// Only completions landing on scheduled (parity-matching) dates count.
	var qualifying []string
	for _, d := range l.DatesFor(habit.ID) {
		if schedule.IsScheduled(habit, d) {
			qualifying = append(qualifying, d)
		}
	}
	if len(qualifying) == 0 {
		return 0
	}
	sort.Sort(sort.Reverse(sort.StringSlice(qualifying)))

	latest := qualifying[0]
	if gap := dates.DaysBetween(latest, today); gap > 2 {
		// The alternation window was missed unless a cover bridges it.
		if !coveredBetween(covers, latest, today) {
			return 0
		}
	}

	streak := 1
	for i := 0; i < len(qualifying)-1; i++ {
		newer, older := qualifying[i], qualifying[i+1]
		if dates.DaysBetween(older, newer) <= 2 || coveredBetween(covers, older, newer) {
			streak++
		} else {
			break
		}
	}
	return streak
}

func coveredBetween(covers models.CoverState, after, before string) bool {
	for _, d := range covers.CoveredDates {
		if d > after && d < before {
			return true
		}
	}
	return false
}
