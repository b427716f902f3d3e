package models

import "github.com/lmoren/ritual/internal/constants"

// Settings represents application-wide settings
type Settings struct {
	Timezone          string  `json:"timezone"`            // IANA timezone name, or "Local" for the system timezone
	StruggleThreshold float64 `json:"struggle_threshold"`  // completion-rate percentage below which a habit is struggling
	RateWindowDays    int     `json:"rate_window_days"`    // default window for completion-rate analytics
	AutoBackupEnabled bool    `json:"auto_backup_enabled"` // whether the TUI creates a backup on startup
}

// DefaultSettings returns the settings written on first init.
func DefaultSettings() Settings {
	return Settings{
		Timezone:          "Local",
		StruggleThreshold: constants.DefaultStruggleThreshold,
		RateWindowDays:    constants.DefaultRateWindowDays,
		AutoBackupEnabled: true,
	}
}
