package settings

import (
	"path/filepath"
	"testing"

	"github.com/lmoren/ritual/internal/cli"
	"github.com/lmoren/ritual/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) *cli.Context {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	return &cli.Context{Store: store}
}

func TestSettingsCmd_List(t *testing.T) {
	ctx := setupTestDB(t)

	cmd := &SettingsCmd{List: true}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("settings list failed: %v", err)
	}
}

func TestSettingsCmd_Update(t *testing.T) {
	ctx := setupTestDB(t)

	tz := "Europe/Berlin"
	threshold := 60.0
	window := 14
	autoBackup := false

	cmd := &SettingsCmd{
		Timezone:          &tz,
		StruggleThreshold: &threshold,
		RateWindowDays:    &window,
		AutoBackup:        &autoBackup,
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	got, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if got.Timezone != tz {
		t.Errorf("Timezone = %q, want %q", got.Timezone, tz)
	}
	if got.StruggleThreshold != threshold {
		t.Errorf("StruggleThreshold = %v, want %v", got.StruggleThreshold, threshold)
	}
	if got.RateWindowDays != window {
		t.Errorf("RateWindowDays = %d, want %d", got.RateWindowDays, window)
	}
	if got.AutoBackupEnabled {
		t.Error("AutoBackupEnabled still true")
	}
}

func TestSettingsCmd_RejectsBadValues(t *testing.T) {
	ctx := setupTestDB(t)

	badTz := "Mars/Olympus"
	if err := (&SettingsCmd{Timezone: &badTz}).Run(ctx); err == nil {
		t.Error("invalid timezone accepted")
	}

	badThreshold := 150.0
	if err := (&SettingsCmd{StruggleThreshold: &badThreshold}).Run(ctx); err == nil {
		t.Error("threshold above 100 accepted")
	}

	badWindow := 0
	if err := (&SettingsCmd{RateWindowDays: &badWindow}).Run(ctx); err == nil {
		t.Error("zero-day window accepted")
	}
}

func TestSettingsCmd_NoFlags(t *testing.T) {
	ctx := setupTestDB(t)

	if err := (&SettingsCmd{}).Run(ctx); err != nil {
		t.Errorf("flagless settings run failed: %v", err)
	}
}
