package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "ritual"
	Version            = "v0.2.0"
	DefaultConfigPath  = "~/.config/ritual/ritual.db"
	DefaultKeyringUser = "database-connection"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Analytics defaults
	DefaultRateWindowDays    = 30
	DefaultStruggleThreshold = 50.0
	DefaultTopLimit          = 5

	// Seed constants
	DefaultSeedWeeks = 4

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "ritual-"
	BackupFileSuffix = ".db"
)

// Session States
const (
	StateHabits SessionState = iota
	StateSummary
	StateAddHabit
	StateConfirmDelete
)
