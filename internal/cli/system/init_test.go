package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lmoren/ritual/internal/cli"
	"github.com/lmoren/ritual/internal/models"
	"github.com/lmoren/ritual/internal/storage/sqlite"
)

func TestInitCmd(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ritual.db")
	store := sqlite.NewStore(dbPath)
	defer store.Close()

	ctx := &cli.Context{Store: store}
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("database file not created: %v", err)
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("settings not seeded: %v", err)
	}
	if settings != models.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", settings)
	}
}

func TestInitCmdForceResets(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ritual.db")
	store := sqlite.NewStore(dbPath)
	defer store.Close()

	ctx := &cli.Context{Store: store}
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	habit, err := models.NewHabit("Run", "daily", timeNow())
	if err != nil {
		t.Fatalf("NewHabit failed: %v", err)
	}
	if err := store.AddHabit(&habit); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("forced init failed: %v", err)
	}

	habits, err := store.GetAllHabits()
	if err != nil {
		t.Fatalf("GetAllHabits failed: %v", err)
	}
	if len(habits) != 0 {
		t.Errorf("forced init kept %d habits", len(habits))
	}

	// The pre-reset backup landed next to the database
	entries, err := os.ReadDir(filepath.Join(filepath.Dir(dbPath), "backups"))
	if err != nil || len(entries) == 0 {
		t.Errorf("no pre-reset backup written: %v", err)
	}
}

func TestMigrateCmdFreshAndRepeat(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ritual.db")
	store := sqlite.NewStore(dbPath)
	defer store.Close()

	ctx := &cli.Context{Store: store}
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	// Init already ran the migrations, so migrate is a no-op
	if err := (&MigrateCmd{}).Run(ctx); err != nil {
		t.Errorf("migrate failed: %v", err)
	}
}
