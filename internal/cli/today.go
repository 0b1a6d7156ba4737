package cli

import (
	"fmt"

	"github.com/framely/framely/internal/schedule"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	state, err := loadState(ctx)
	if err != nil {
		return err
	}

	today := ctx.Engine.Today()
	fmt.Printf("Today: %s\n\n", today)

	due := 0
	for _, h := range state.Habits {
		if schedule.IsPaused(h, today) {
			fmt.Printf("  --  %s (paused)\n", h.Title)
			continue
		}
		if !schedule.IsScheduled(h, today) {
			continue
		}
		due++
		mark := "[ ]"
		if state.Completions.Completed(h.ID, today) {
			mark = "[x]"
		}
		fmt.Printf("  %s %s (streak %d)\n", mark, h.Title, ctx.Engine.Streak(state, h.ID))
	}

	if due == 0 {
		fmt.Println("  Nothing scheduled today.")
	}
	fmt.Printf("\nCovers remaining: %d\n", state.Covers.CoversRemaining)
	return nil
}
