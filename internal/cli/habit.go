package cli

import (
	"fmt"
	"strings"

	"github.com/framely/framely/internal/logger"
	"github.com/framely/framely/internal/schedule"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Pause  HabitPauseCmd  `cmd:"" help:"Pause a habit for a date range."`
	Resume HabitResumeCmd `cmd:"" help:"Clear a habit's pause window."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its completion history."`
}

type HabitAddCmd struct {
	Title       string `arg:"" help:"Habit title."`
	Description string `help:"Optional description." default:""`
	Freq        string `help:"Frequency: everyday, weekdays, or every-other-day." default:"everyday"`
	Days        string `help:"Comma-separated weekdays for --freq=weekdays (e.g. mon,wed,fri)." default:""`
	Color       string `help:"Display color." default:""`
	Remind      string `help:"Comma-separated reminder times (opaque, e.g. 08:00)." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	state, err := loadState(ctx)
	if err != nil {
		return err
	}

	for _, h := range state.Habits {
		if h.Title == c.Title {
			return fmt.Errorf("habit with title %q already exists", c.Title)
		}
	}

	freq, err := parseFrequency(c.Freq, c.Days)
	if err != nil {
		return err
	}

	color := c.Color
	if color == "" {
		if settings, err := ctx.Store.GetSettings(); err == nil {
			color = settings.DefaultColor
		}
	}

	var reminders []string
	if c.Remind != "" {
		for _, r := range strings.Split(c.Remind, ",") {
			reminders = append(reminders, strings.TrimSpace(r))
		}
	}

	state, habit, err := ctx.Engine.AddHabit(state, c.Title, c.Description, color, reminders, freq)
	if err != nil {
		return err
	}
	if err := saveState(ctx, state); err != nil {
		return err
	}

	logger.Info("habit added", "id", habit.ID, "title", habit.Title)
	fmt.Printf("Added habit: %s (%s)\n", habit.Title, formatFrequency(habit.Frequency))
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	state, err := loadState(ctx)
	if err != nil {
		return err
	}

	if len(state.Habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := ctx.Engine.Today()
	for _, h := range state.Habits {
		status := ""
		if schedule.IsPaused(h, today) {
			status = fmt.Sprintf(" [PAUSED until %s]", h.PauseEnd)
		} else if h.Paused() && h.PauseStart > today {
			status = fmt.Sprintf(" [pause scheduled %s..%s]", h.PauseStart, h.PauseEnd)
		}
		fmt.Printf("%-30s %-20s streak %d%s\n", h.Title, formatFrequency(h.Frequency), ctx.Engine.Streak(state, h.ID), status)
	}

	return nil
}

type HabitPauseCmd struct {
	Title string `arg:"" help:"Habit title or id."`
	From  string `help:"Pause start (YYYY-MM-DD, default: today)." default:""`
	Until string `arg:"" help:"Pause end (YYYY-MM-DD, inclusive)."`
}

func (c *HabitPauseCmd) Run(ctx *Context) error {
	state, err := loadState(ctx)
	if err != nil {
		return err
	}

	habit, err := findHabit(state, c.Title)
	if err != nil {
		return err
	}

	from := c.From
	if from == "" {
		from = ctx.Engine.Today()
	}

	state, err = ctx.Engine.Pause(state, habit.ID, from, c.Until)
	if err != nil {
		return err
	}
	if err := saveState(ctx, state); err != nil {
		return err
	}

	logger.Info("habit paused", "id", habit.ID, "from", from, "until", c.Until)
	fmt.Printf("Paused %q from %s through %s\n", habit.Title, from, c.Until)
	return nil
}

type HabitResumeCmd struct {
	Title string `arg:"" help:"Habit title or id."`
}

func (c *HabitResumeCmd) Run(ctx *Context) error {
	state, err := loadState(ctx)
	if err != nil {
		return err
	}

	habit, err := findHabit(state, c.Title)
	if err != nil {
		return err
	}
	if !habit.Paused() {
		return fmt.Errorf("habit %q is not paused", habit.Title)
	}

	state, err = ctx.Engine.Resume(state, habit.ID)
	if err != nil {
		return err
	}
	if err := saveState(ctx, state); err != nil {
		return err
	}

	logger.Info("habit resumed", "id", habit.ID)
	fmt.Printf("Resumed %q\n", habit.Title)
	return nil
}

type HabitDeleteCmd struct {
	Title string `arg:"" help:"Habit title or id."`
	Force bool   `help:"Skip confirmation."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	state, err := loadState(ctx)
	if err != nil {
		return err
	}

	habit, err := findHabit(state, c.Title)
	if err != nil {
		return err
	}

	if !c.Force {
		n := len(state.Completions.DatesFor(habit.ID))
		fmt.Printf("Delete %q and its %d completion(s)? [y/N]: ", habit.Title, n)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	state, err = ctx.Engine.RemoveHabit(state, habit.ID)
	if err != nil {
		return err
	}
	if err := saveState(ctx, state); err != nil {
		return err
	}

	logger.Info("habit deleted", "id", habit.ID, "title", habit.Title)
	fmt.Printf("Deleted habit: %s\n", habit.Title)
	return nil
}
