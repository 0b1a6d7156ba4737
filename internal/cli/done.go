package cli

import (
	"fmt"

	"github.com/framely/framely/internal/dates"
	"github.com/framely/framely/internal/logger"
)

type DoneCmd struct {
	Title string `arg:"" help:"Habit title or id."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *DoneCmd) Run(ctx *Context) error {
	state, err := loadState(ctx)
	if err != nil {
		return err
	}

	habit, err := findHabit(state, c.Title)
	if err != nil {
		return err
	}

	day := c.Date
	today := ctx.Engine.Today()
	if day == "" {
		day = today
	} else if !dates.IsValid(day) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}
	if dates.IsFuture(day, today) {
		return fmt.Errorf("cannot complete a future date: %s", day)
	}

	state, added, err := ctx.Engine.ToggleCompletion(state, habit.ID, day)
	if err != nil {
		return err
	}
	if err := saveState(ctx, state); err != nil {
		return err
	}

	if added {
		logger.Info("completion added", "habit", habit.ID, "day", day)
		fmt.Printf("Marked %q done for %s (streak: %d)\n", habit.Title, day, ctx.Engine.Streak(state, habit.ID))
	} else {
		logger.Info("completion removed", "habit", habit.ID, "day", day)
		fmt.Printf("Unmarked %q for %s (streak: %d)\n", habit.Title, day, ctx.Engine.Streak(state, habit.ID))
	}
	return nil
}
