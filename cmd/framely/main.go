package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/framely/framely/internal/cli"
	"github.com/framely/framely/internal/config"
	"github.com/framely/framely/internal/engine"
	"github.com/framely/framely/internal/logger"
	"github.com/framely/framely/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Storage string `help:"Storage file path. A .json extension selects the JSON backend." type:"path"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize framely storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Habit  cli.HabitCmd  `cmd:"" help:"Manage habits."`
	Done   cli.DoneCmd   `cmd:"" help:"Toggle a habit's completion for a day."`
	Today  cli.TodayCmd  `cmd:"" help:"Show habits due today."`
	Streak cli.StreakCmd `cmd:"" help:"Show a habit's current streak."`
	Covers cli.CoversCmd `cmd:"" help:"Show the cover pool and covered dates."`
	Stats  cli.StatsCmd  `cmd:"" help:"Show completion stats for a habit."`
	Backup cli.BackupCmd `cmd:"" help:"Manage database backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run storage and data integrity checks."`
	Debugc cli.DebugCmd  `cmd:"" name:"debug" help:"Inspect raw stored records."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("framely"),
		kong.Description("Habit tracker with streaks, pauses, and monthly cover tokens"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if CLI.Debug {
		cfg.General.Debug = true
	}

	if err := logger.Init(logger.Config{Debug: cfg.General.Debug, ConfigDir: config.Dir()}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	path := CLI.Storage
	if path == "" {
		path = cfg.General.StoragePath
	}
	if path == "" {
		path = config.DefaultStoragePath()
	}

	// Storage backend follows the file extension.
	var store storage.Provider
	if strings.HasSuffix(path, ".json") {
		store = storage.NewJSONStore(path)
	} else {
		store = storage.NewSQLiteStore(path)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store:  store,
		Engine: engine.New(),
	}

	if err := ctx.Run(appCtx); err != nil {
		logger.Error("command failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
