package cli

import (
	"time"

	"github.com/lmoren/ritual/internal/backup"
	"github.com/lmoren/ritual/internal/logger"
	"github.com/lmoren/ritual/internal/models"
	"github.com/lmoren/ritual/internal/storage"
	"github.com/lmoren/ritual/internal/utils"
)

// Context carries the shared dependencies into every command's Run method.
type Context struct {
	Store storage.Provider
	Debug bool
}

// SettingsAndNow loads settings and computes the current instant in the
// configured timezone. Commands call this once and pass the result down so
// every streak and analytics computation sees the same "now".
func (c *Context) SettingsAndNow() (models.Settings, time.Time, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		// Settings missing (e.g. pre-init database): fall back to defaults
		settings = models.DefaultSettings()
	}

	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		return settings, time.Time{}, err
	}
	return settings, now, nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
