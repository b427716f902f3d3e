package system

import (
	"fmt"
	"os"
	"strings"

	"github.com/lmoren/ritual/internal/backup"
	"github.com/lmoren/ritual/internal/cli"
	"github.com/lmoren/ritual/internal/logger"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting the existing database before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if strings.HasPrefix(dbPath, "postgres://") || strings.HasPrefix(dbPath, "postgresql://") || strings.Contains(dbPath, "host=") {
			return fmt.Errorf("--force only supports file-backed storage; drop the PostgreSQL schema manually instead")
		}

		if _, err := os.Stat(dbPath); err == nil {
			// Snapshot before destroying anything
			mgr := backup.NewManager(dbPath)
			if path, err := mgr.CreateBackup(); err != nil {
				logger.Warn("Pre-reset backup failed", "error", err)
			} else {
				fmt.Printf("Saved backup to: %s\n", path)
			}

			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized ritual storage at: %s\n", ctx.Store.GetConfigPath())
	fmt.Println("Add your first habit with 'ritual habit add NAME' or load sample data with 'ritual seed'.")
	return nil
}
