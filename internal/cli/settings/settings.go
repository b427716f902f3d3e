package settings

import (
	"fmt"

	"github.com/lmoren/ritual/internal/cli"
	"github.com/lmoren/ritual/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone          *string  `help:"IANA timezone for period boundaries (e.g. Europe/Berlin)."`
	StruggleThreshold *float64 `help:"Completion-rate percentage below which a habit counts as struggling."`
	RateWindowDays    *int     `help:"Default trailing window in days for completion rates."`
	AutoBackup        *bool    `help:"Enable or disable automatic backups on TUI startup."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		tz := settings.Timezone
		if tz == "" {
			tz = "local"
		}
		fmt.Println("Current Settings:")
		fmt.Printf("  Timezone:            %s\n", tz)
		fmt.Printf("  Struggle Threshold:  %.1f%%\n", settings.StruggleThreshold)
		fmt.Printf("  Rate Window:         %d days\n", settings.RateWindowDays)
		fmt.Printf("  Auto Backup:         %v\n", settings.AutoBackupEnabled)
		return nil
	}

	updated := false
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("unknown timezone %q", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.StruggleThreshold != nil {
		if *c.StruggleThreshold < 0 || *c.StruggleThreshold > 100 {
			return fmt.Errorf("struggle threshold must be between 0 and 100, got %.1f", *c.StruggleThreshold)
		}
		settings.StruggleThreshold = *c.StruggleThreshold
		updated = true
	}
	if c.RateWindowDays != nil {
		if *c.RateWindowDays < 1 {
			return fmt.Errorf("rate window must be at least 1 day, got %d", *c.RateWindowDays)
		}
		settings.RateWindowDays = *c.RateWindowDays
		updated = true
	}
	if c.AutoBackup != nil {
		settings.AutoBackupEnabled = *c.AutoBackup
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
