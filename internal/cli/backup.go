package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/framely/framely/internal/backup"
)

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Create a backup of the database."`
	List    BackupListCmd    `cmd:"" help:"List available backups."`
	Restore BackupRestoreCmd `cmd:"" help:"Restore the database from a backup."`
}

func backupManager(ctx *Context) (*backup.Manager, error) {
	path := ctx.Store.GetConfigPath()
	if strings.HasSuffix(path, ".json") {
		return nil, fmt.Errorf("backups are only supported for the SQLite backend")
	}
	return backup.NewManager(path), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	m, err := backupManager(ctx)
	if err != nil {
		return err
	}

	path, err := m.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	m, err := backupManager(ctx)
	if err != nil {
		return err
	}

	backups, err := m.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	for _, b := range backups {
		fmt.Printf("%s  %s  %d bytes\n", b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" optional:"" help:"Backup file to restore (default: most recent)."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	m, err := backupManager(ctx)
	if err != nil {
		return err
	}

	path := c.Path
	if path == "" {
		backups, err := m.List()
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			return fmt.Errorf("no backups available")
		}
		path = backups[0].Path
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(m.BackupDir(), path)
	}

	if err := m.Restore(path); err != nil {
		return err
	}
	fmt.Printf("Restored database from: %s\n", filepath.Base(path))
	return nil
}
