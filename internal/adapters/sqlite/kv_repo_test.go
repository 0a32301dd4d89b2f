package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jukebox-go/jukebox/internal/ports"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestKVRepository_GetMissingKey(t *testing.T) {
	repo := NewKVRepository(openTestDB(t).SQL)

	_, err := repo.Get(context.Background(), "songs")
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestKVRepository_SetGetOverwriteDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewKVRepository(openTestDB(t).SQL)

	if err := repo.Set(ctx, "theme", "light"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := repo.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("Set(overwrite): %v", err)
	}
	got, err := repo.Get(ctx, "theme")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "dark" {
		t.Fatalf("theme: want %q, got %q", "dark", got)
	}

	if err := repo.Delete(ctx, "theme"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx, "theme"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after Delete, got %v", err)
	}

	// Supprimer une clé absente reste sans erreur.
	if err := repo.Delete(ctx, "theme"); err != nil {
		t.Fatalf("Delete(missing): %v", err)
	}
}

func TestKVRepository_EmptyValueIsNotMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewKVRepository(openTestDB(t).SQL)

	if err := repo.Set(ctx, "songs", "[]"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := repo.Get(ctx, "songs")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "[]" {
		t.Fatalf("want %q, got %q", "[]", got)
	}
}

func TestDB_ReopenKeepsSchemaAndData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "jukebox.db")

	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := NewKVRepository(db.SQL).Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	_ = db.Close()

	db, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	v, err := db.SchemaVersion(ctx)
	if err != nil {
		t.Fatalf("SchemaVersion: %v", err)
	}
	if v != schemaVersion {
		t.Fatalf("schema version: want %d, got %d", schemaVersion, v)
	}
	got, err := NewKVRepository(db.SQL).Get(ctx, "theme")
	if err != nil || got != "dark" {
		t.Fatalf("theme after reopen: want %q, got %q (err=%v)", "dark", got, err)
	}
}

func TestDB_RejectsUnknownSchemaVersion(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "future.db")

	raw, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	if _, err := raw.Exec(`PRAGMA user_version = 7`); err != nil {
		t.Fatalf("set user_version: %v", err)
	}
	_ = raw.Close()

	if db, err := Open(ctx, path); err == nil {
		_ = db.Close()
		t.Fatalf("expected an error for schema version 7")
	}
}
