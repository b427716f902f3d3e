package postgres

import (
	"database/sql"

	apperrors "github.com/lmoren/ritual/internal/errors"
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
			return models.Settings{}, apperrors.NotFoundf("settings")
		}
		return models.Settings{}, err
	}
	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (id, timezone, struggle_threshold, rate_window_days, auto_backup_enabled)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			timezone = EXCLUDED.timezone,
			struggle_threshold = EXCLUDED.struggle_threshold,
			rate_window_days = EXCLUDED.rate_window_days,
			auto_backup_enabled = EXCLUDED.auto_backup_enabled`,
		settings.Timezone, settings.StruggleThreshold,
		settings.RateWindowDays, settings.AutoBackupEnabled)
	return err
}
