package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/framely/framely/internal/backup"
	"github.com/framely/framely/internal/constants"
	"github.com/framely/framely/internal/migration"
	"github.com/framely/framely/internal/storage"
	"github.com/framely/framely/internal/validation"
	"github.com/framely/framely/migrations"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: store reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		fmt.Println()
		fmt.Println("Cannot continue without storage.")
		return fmt.Errorf("diagnostics failed")
	}
	fmt.Printf("✓ Storage reachable: OK\n")

	// Check 2: record integrity
	if err := checkRecords(ctx); err != nil {
		fmt.Printf("❌ Record integrity: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Record integrity: OK\n")
	}

	// Check 3: schema up to date (SQLite only)
	if sqlStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		runner := migration.NewRunner(sqlStore.GetDB(), migrations.SQLiteFS())
		current, err := runner.CurrentVersion()
		if err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else if latest, err := runner.LatestVersion(); err == nil && current < latest {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Database at version %d, expected %d; run 'framely init'\n", current, latest)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK (%d)\n", current)
		}
	}

	// Check 4: backups present (SQLite only, warning only)
	if sqlStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		m := backup.NewManager(sqlStore.GetConfigPath())
		backups, err := m.List()
		if err != nil || len(backups) == 0 {
			fmt.Printf("⚠ Backups present: WARNING\n")
			fmt.Printf("   No backups found; run 'framely backup create'\n")
		} else {
			fmt.Printf("✓ Backups present: OK (%d)\n", len(backups))
		}
	}

	// Check 5: single writer. The engine assumes one process owns the
	// in-memory snapshot; a second running instance can silently lose
	// writes.
	if n, err := countOtherInstances(); err == nil && n > 0 {
		fmt.Printf("⚠ Single instance: WARNING\n")
		fmt.Printf("   %d other framely process(es) running; concurrent writes are not supported\n", n)
	} else {
		fmt.Printf("✓ Single instance: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkRecords(ctx *Context) error {
	habits, err := ctx.Store.LoadHabits()
	if err != nil {
		return err
	}
	ids := make(map[string]bool, len(habits))
	for _, h := range habits {
		if err := validation.ValidateHabit(h); err != nil {
			return fmt.Errorf("habit %q: %w", h.Title, err)
		}
		ids[h.ID] = true
	}

	completions, err := ctx.Store.LoadCompletions()
	if err != nil {
		return err
	}
	for _, e := range completions {
		if !ids[e.HabitID] {
			return fmt.Errorf("completion %s references missing habit %s", e.ID, e.HabitID)
		}
	}

	covers, err := ctx.Store.LoadCoverState()
	if err != nil {
		return err
	}
	if covers.CoversRemaining < 0 || covers.CoversRemaining > constants.CoverCap {
		return fmt.Errorf("covers remaining out of range: %d", covers.CoversRemaining)
	}

	return nil
}

func countOtherInstances() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}

	self := os.Getpid()
	name := filepath.Base(os.Args[0])
	count := 0
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		if strings.EqualFold(p.Executable(), name) {
			count++
		}
	}
	return count, nil
}
