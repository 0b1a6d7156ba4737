package stats

import (
	"github.com/framely/framely/internal/dates"
	"github.com/framely/framely/internal/ledger"
	"github.com/framely/framely/internal/models"
	"github.com/framely/framely/internal/schedule"
)

// DayStat is one day in a habit's lookback window.
type DayStat struct {
	Day       string
	Scheduled bool
	Completed bool
}

// Summary aggregates a habit's recent adherence.
type Summary struct {
	Days           []DayStat
	TotalCompleted int
	// CompletionRate is completed days over the window size, in percent.
	CompletionRate float64
}

// Completion returns per-day completion over the past n days ending today.
func Completion(habit models.Habit, l ledger.Ledger, today string, n int) Summary {
	completed := l.DateSetFor(habit.ID)

	s := Summary{Days: make([]DayStat, 0, n)}
	for _, day := range dates.PastDates(today, n) {
		st := DayStat{
			Day:       day,
			Scheduled: schedule.IsScheduled(habit, day),
			Completed: completed[day],
		}
		if st.Completed {
			s.TotalCompleted++
		}
		s.Days = append(s.Days, st)
	}
	if n > 0 {
		s.CompletionRate = float64(s.TotalCompleted) / float64(n) * 100
	}
	return s
}
