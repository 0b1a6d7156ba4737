package cli

import "fmt"

type StreakCmd struct {
	Title string `arg:"" optional:"" help:"Habit title or id (default: all habits)."`
}

func (c *StreakCmd) Run(ctx *Context) error {
	state, err := loadState(ctx)
	if err != nil {
		return err
	}

	if c.Title != "" {
		habit, err := findHabit(state, c.Title)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d\n", habit.Title, ctx.Engine.Streak(state, habit.ID))
		return nil
	}

	if len(state.Habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}
	for _, h := range state.Habits {
		fmt.Printf("%-30s %d\n", h.Title, ctx.Engine.Streak(state, h.ID))
	}
	return nil
}
