package cli

import (
	"encoding/json"
	"fmt"
)

type DebugCmd struct {
	DBPath     *DebugDBPathCmd     `cmd:"" help:"Show storage path."`
	DumpHabit  *DebugDumpHabitCmd  `cmd:"" help:"Dump habit data as JSON."`
	DumpCovers *DebugDumpCoversCmd `cmd:"" help:"Dump cover state as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpHabitCmd struct {
	Title string `arg:"" help:"Habit title or id."`
}

func (cmd *DebugDumpHabitCmd) Run(ctx *Context) error {
	state, err := loadState(ctx)
	if err != nil {
		return err
	}

	habit, err := findHabit(state, cmd.Title)
	if err != nil {
		return err
	}

	dump := struct {
		Habit       interface{} `json:"habit"`
		Completions []string    `json:"completions"`
		Streak      int         `json:"streak"`
	}{
		Habit:       habit,
		Completions: state.Completions.DatesFor(habit.ID),
		Streak:      ctx.Engine.Streak(state, habit.ID),
	}

	jsonBytes, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal habit: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpCoversCmd struct{}

func (cmd *DebugDumpCoversCmd) Run(ctx *Context) error {
	state, err := loadState(ctx)
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(state.Covers, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cover state: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
