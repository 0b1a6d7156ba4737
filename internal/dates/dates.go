package dates

import (
	"time"

	"github.com/framely/framely/internal/constants"
)

// LocalDateString formats an instant as YYYY-MM-DD in the local calendar.
// Two instants on the same local calendar day always produce the same
// string, even when they straddle a UTC midnight.
func LocalDateString(t time.Time) string {
	return t.Local().Format(constants.DateFormat)
}

// Today returns the current local calendar date as YYYY-MM-DD.
func Today() string {
	return LocalDateString(time.Now())
}

// AddDays performs calendar-day arithmetic on a date string. The date is
// anchored at local noon before shifting so DST transitions cannot move the
// result across a day boundary. Invalid input is returned unchanged.
func AddDays(dateStr string, days int) string {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return dateStr
	}
	noon := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.Local)
	return noon.AddDate(0, 0, days).Format(constants.DateFormat)
}

// DaysBetween returns the whole calendar days from a to b (positive when b
// is after a). Both strings are interpreted as UTC midnight so the division
// is exact.
func DaysBetween(a, b string) int {
	ta, errA := time.Parse(constants.DateFormat, a)
	tb, errB := time.Parse(constants.DateFormat, b)
	if errA != nil || errB != nil {
		return 0
	}
	return int(tb.Sub(ta).Hours() / 24)
}

// DaysSinceEpoch returns the number of whole days between 1970-01-01 and the
// given date, treating the date string as UTC midnight. The result is a pure
// function of the string, independent of the host timezone.
func DaysSinceEpoch(dateStr string) (int, bool) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return 0, false
	}
	return int(t.Unix() / 86400), true
}

// Weekday returns the day of week (Sunday=0) for a date string. The date is
// anchored at noon to sidestep midnight boundary issues. Invalid input
// reports ok=false.
func Weekday(dateStr string) (time.Weekday, bool) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Sunday, false
	}
	noon := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.Local)
	return noon.Weekday(), true
}

// StartOfMonth returns the first day of the month containing the given date.
func StartOfMonth(dateStr string) string {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return dateStr
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).Format(constants.DateFormat)
}

// MonthOf returns the YYYY-MM month of the given date.
func MonthOf(dateStr string) string {
	if len(dateStr) < 7 {
		return dateStr
	}
	return dateStr[:7]
}

// IsValid reports whether the string is a well-formed YYYY-MM-DD date.
func IsValid(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

// IsFuture reports whether the date falls after today.
func IsFuture(dateStr string, today string) bool {
	return dateStr > today
}

// PastDates returns the last n calendar dates ending at today, in
// chronological order. Useful for charts and stats lookbacks.
func PastDates(today string, n int) []string {
	out := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, AddDays(today, -i))
	}
	return out
}
