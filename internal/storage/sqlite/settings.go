package sqlite

import (
	"database/sql"

	"github.com/lmoren/ritual/internal/errors"
	"github.com/lmoren/ritual/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	row := s.db.QueryRow(`
		SELECT timezone, struggle_threshold, rate_window_days, auto_backup_enabled
		FROM settings WHERE id = 1`)

	var settings models.Settings
	err := row.Scan(&settings.Timezone, &settings.StruggleThreshold,
		&settings.RateWindowDays, &settings.AutoBackupEnabled)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Settings{}, errors.NotFoundf("settings")
		}
		return models.Settings{}, err
	}
	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (id, timezone, struggle_threshold, rate_window_days, auto_backup_enabled)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			timezone = excluded.timezone,
			struggle_threshold = excluded.struggle_threshold,
			rate_window_days = excluded.rate_window_days,
			auto_backup_enabled = excluded.auto_backup_enabled`,
		settings.Timezone, settings.StruggleThreshold,
		settings.RateWindowDays, settings.AutoBackupEnabled)
	return err
}
