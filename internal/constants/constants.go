package constants

const (
	// DateFormat is the canonical local calendar-date layout. Every date the
	// engine stores or compares is in this fixed-width form, so plain string
	// comparison orders dates correctly.
	DateFormat = "2006-01-02"

	// MonthFormat is the layout used for the monthly cover grant marker.
	MonthFormat = "2006-01"

	// CoverCap is the maximum number of covers a user can bank.
	CoverCap = 3

	// InitialCovers is the pool a fresh install starts with.
	InitialCovers = 2

	// StreakLookbackDays bounds the backward day-walk in the streak
	// calculator. It determines the worst-case cost of a streak query.
	StreakLookbackDays = 730

	// DefaultStatsDays is the default window for completion-rate stats.
	DefaultStatsDays = 7
)

// Weekday labels indexed by the 0=Sunday convention used by frequency rules.
var WeekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
