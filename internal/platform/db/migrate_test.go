package db

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMigrations_SortsByVersion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "0002_documents.sql", "CREATE TABLE b ();")
	writeFile(t, dir, "0001_init.sql", "CREATE TABLE a ();")
	writeFile(t, dir, "0010_labs.sql", "CREATE TABLE c ();")

	m := NewMigrator(nil, dir)
	migrations, err := m.LoadMigrations()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(migrations) != 3 {
		t.Fatalf("got %d migrations, want 3", len(migrations))
	}
	for i, want := range []int{1, 2, 10} {
		if migrations[i].Version != want {
			t.Errorf("migrations[%d].Version = %d, want %d", i, migrations[i].Version, want)
		}
	}
	if migrations[0].SQL != "CREATE TABLE a ();" {
		t.Errorf("migrations[0].SQL = %q", migrations[0].SQL)
	}
}

func TestLoadMigrations_SkipsNonNumericAndNonSQL(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "0001_init.sql", "CREATE TABLE a ();")
	writeFile(t, dir, "README.md", "notes")
	writeFile(t, dir, "seed_data.sql", "INSERT ...")

	m := NewMigrator(nil, dir)
	migrations, err := m.LoadMigrations()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(migrations) != 1 {
		t.Fatalf("got %d migrations, want 1", len(migrations))
	}
}

func TestPersistence_WrapsAndUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := Persistence("insert", "medical_records", cause)

	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("error is %T, want *PersistenceError", err)
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if pe.Table != "medical_records" || pe.Op != "insert" {
		t.Errorf("unexpected fields: %+v", pe)
	}

	if Persistence("insert", "medical_records", nil) != nil {
		t.Error("Persistence(nil) should be nil")
	}
}
