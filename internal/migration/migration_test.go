package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApplyMigrationsFreshDatabase(t *testing.T) {
	db := openTestDB(t)
	mfs := fstest.MapFS{
		"001_init.sql":   {Data: []byte("CREATE TABLE a (id INTEGER PRIMARY KEY);")},
		"002_extend.sql": {Data: []byte("CREATE TABLE b (id INTEGER PRIMARY KEY);")},
	}

	runner := NewRunner(db, mfs)

	var messages []string
	applied, err := runner.ApplyMigrations(func(msg string) { messages = append(messages, msg) })
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}
	if len(messages) != 2 {
		t.Errorf("logged %d messages, want 2", len(messages))
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	// Both tables exist
	for _, table := range []string{"a", "b"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %q missing: %v", table, err)
		}
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	mfs := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE a (id INTEGER PRIMARY KEY);")},
	}
	runner := NewRunner(db, mfs)

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("first ApplyMigrations failed: %v", err)
	}
	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second ApplyMigrations failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("second run applied %d migrations, want 0", applied)
	}
}

func TestApplyMigrationsRollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	mfs := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE a (id INTEGER PRIMARY KEY);")},
		"002_bad.sql":  {Data: []byte("THIS IS NOT SQL;")},
	}
	runner := NewRunner(db, mfs)

	applied, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("broken migration applied without error")
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}

	// Version stays at the last good migration
	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 1 {
		t.Errorf("version = %d, want 1", version)
	}
}

func TestReadMigrationFilesValidation(t *testing.T) {
	db := openTestDB(t)

	tests := []struct {
		name string
		fs   fstest.MapFS
	}{
		{
			name: "missing underscore",
			fs:   fstest.MapFS{"001init.sql": {Data: []byte("SELECT 1;")}},
		},
		{
			name: "non-numeric version",
			fs:   fstest.MapFS{"abc_init.sql": {Data: []byte("SELECT 1;")}},
		},
		{
			name: "zero version",
			fs:   fstest.MapFS{"000_init.sql": {Data: []byte("SELECT 1;")}},
		},
		{
			name: "duplicate version",
			fs: fstest.MapFS{
				"001_a.sql": {Data: []byte("SELECT 1;")},
				"001_b.sql": {Data: []byte("SELECT 1;")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRunner(db, tt.fs).ReadMigrationFiles(); err == nil {
				t.Error("invalid migration set accepted")
			}
		})
	}
}

func TestReadMigrationFilesIgnoresNonSQL(t *testing.T) {
	db := openTestDB(t)
	mfs := fstest.MapFS{
		"001_init.sql": {Data: []byte("SELECT 1;")},
		"README.md":    {Data: []byte("docs")},
	}

	migrations, err := NewRunner(db, mfs).ReadMigrationFiles()
	if err != nil {
		t.Fatalf("ReadMigrationFiles failed: %v", err)
	}
	if len(migrations) != 1 || migrations[0].Name != "init" {
		t.Errorf("migrations = %+v, want just 001_init", migrations)
	}
}

func TestValidateVersion(t *testing.T) {
	db := openTestDB(t)
	mfs := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE a (id INTEGER PRIMARY KEY);")},
	}
	runner := NewRunner(db, mfs)

	// Fresh database is behind
	if err := runner.ValidateVersion(); err == nil {
		t.Error("fresh database validated as current")
	}

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("up-to-date database failed validation: %v", err)
	}

	// A database ahead of the embedded migrations is rejected
	ahead := NewRunner(db, fstest.MapFS{})
	if err := ahead.ValidateVersion(); err != nil {
		t.Errorf("empty migration set should validate: %v", err)
	}

	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}
	if err := runner.ValidateVersion(); err == nil {
		t.Error("database ahead of migrations validated")
	}
}
