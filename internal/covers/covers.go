package covers

import (
	"github.com/framely/framely/internal/constants"
	"github.com/framely/framely/internal/dates"
	"github.com/framely/framely/internal/ledger"
	"github.com/framely/framely/internal/models"
	"github.com/framely/framely/internal/schedule"
)

// NewState returns the cover pool a fresh install starts with.
func NewState() models.CoverState {
	return models.CoverState{
		CoversRemaining: constants.InitialCovers,
		CoveredDates:    []string{},
	}
}

// GrantMonthly adds one cover the first time it runs in a calendar month,
// capped at the pool limit. Repeated calls within the same month are no-ops.
func GrantMonthly(state models.CoverState, today string) models.CoverState {
	month := dates.MonthOf(today)
	if state.LastCoverGrantMonth == month {
		return state
	}
	out := state.Clone()
	if out.CoversRemaining < constants.CoverCap {
		out.CoversRemaining++
	}
	out.LastCoverGrantMonth = month
	return out
}

// EvaluateMissedDays scans every date from max(watermark, start of month)
// through today in chronological order and spends covers on missed days.
//
// A day is missed when at least one habit was scheduled, not paused, and has
// no completion event for that day. At most one cover is spent per date, and
// dates already covered are skipped, so re-running the scan with unchanged
// inputs leaves the state untouched. The watermark advances to today and is
// never rewound.
func EvaluateMissedDays(habits []models.Habit, l ledger.Ledger, state models.CoverState, today string) models.CoverState {
	if len(habits) == 0 {
		return state
	}

	start := dates.StartOfMonth(today)
	if state.LastEvaluationDate > start {
		start = state.LastEvaluationDate
	}

	out := state.Clone()
	for day := start; day <= today; day = dates.AddDays(day, 1) {
		if anyHabitMissed(habits, l, day) && out.CoversRemaining > 0 && !out.Covered(day) {
			out.CoveredDates = append(out.CoveredDates, day)
			out.CoversRemaining--
		}
	}
	out.LastEvaluationDate = today
	return out
}

func anyHabitMissed(habits []models.Habit, l ledger.Ledger, day string) bool {
	for _, h := range habits {
		if schedule.IsScheduled(h, day) && !l.Completed(h.ID, day) {
			return true
		}
	}
	return false
}

// ReleaseOnRetroactiveCompletion refunds a cover when a completion fills the
// single most recent covered date. Filling an older covered gap does not
// refund, which keeps back-filling a pile of old dates from minting covers.
func ReleaseOnRetroactiveCompletion(completedDay string, state models.CoverState) models.CoverState {
	latest := state.MostRecentCovered()
	if latest == "" || completedDay != latest {
		return state
	}

	out := state.Clone()
	kept := out.CoveredDates[:0]
	for _, d := range out.CoveredDates {
		if d != completedDay {
			kept = append(kept, d)
		}
	}
	out.CoveredDates = kept
	if out.CoversRemaining < constants.CoverCap {
		out.CoversRemaining++
	}
	return out
}
