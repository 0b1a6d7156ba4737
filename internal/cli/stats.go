package cli

import (
	"fmt"

	"github.com/framely/framely/internal/models"
	"github.com/framely/framely/internal/stats"
)

type StatsCmd struct {
	Title string `arg:"" optional:"" help:"Habit title or id (default: all habits)."`
	Days  int    `help:"Lookback window in days." default:"0"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	state, err := loadState(ctx)
	if err != nil {
		return err
	}

	days := c.Days
	if days <= 0 {
		if settings, err := ctx.Store.GetSettings(); err == nil && settings.StatsDays > 0 {
			days = settings.StatsDays
		} else {
			days = 7
		}
	}

	habits := state.Habits
	if c.Title != "" {
		habit, err := findHabit(state, c.Title)
		if err != nil {
			return err
		}
		habits = []models.Habit{habit}
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := ctx.Engine.Today()
	for _, h := range habits {
		s := stats.Completion(h, state.Completions, today, days)
		fmt.Printf("%s: last %d days, %d completed (%.0f%%)\n", h.Title, days, s.TotalCompleted, s.CompletionRate)
		for _, d := range s.Days {
			mark := "."
			switch {
			case d.Completed:
				mark = "x"
			case d.Scheduled:
				mark = "o"
			}
			fmt.Printf("  %s %s\n", d.Day, mark)
		}
	}
	return nil
}
