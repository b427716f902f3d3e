package storage

import (
	"net/url"
	"strings"
	"time"

	"github.com/lmoren/ritual/internal/models"
)

// Provider is the storage contract shared by the SQLite and Postgres
// backends. Habits are always returned with their completion ledger loaded
// and sorted ascending.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error
	GetConfigPath() string
	Migrate(logFn func(string)) (int, error)

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Habits
	AddHabit(*models.Habit) error
	GetHabit(id int64) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)
	GetHabitsByCadence(c models.Cadence) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	DeleteHabit(id int64) error

	// Completions
	AddCompletion(habitID int64, completedAt time.Time) error
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password. Embedded credentials are rejected; users should rely on
// the OS keyring, environment, or .pgpass instead.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			if _, set := u.User.Password(); set {
				return true
			}
		}
		return false
	}

	for _, pair := range strings.Fields(connStr) {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) == 2 && strings.EqualFold(strings.TrimSpace(kv[0]), "password") {
			return true
		}
	}
	return false
}
