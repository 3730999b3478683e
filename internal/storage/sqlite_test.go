package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestStoreOpenClose(t *testing.T) {
	_, dbPath := openTestStore(t)

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenCreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "prefs.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("Database file missing: %v", err)
	}
}

func TestStoreSetGet(t *testing.T) {
	store, _ := openTestStore(t)

	if _, err := store.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() missing key error = %v, expected ErrNotFound", err)
	}

	if err := store.Set(KeyRenderer, "blocks"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set(KeyRenderer, "depth"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	v, err := store.Get(KeyRenderer)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if v != "depth" {
		t.Errorf("Get() = %q, expected depth", v)
	}

	if err := store.Delete(KeyRenderer); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := store.Get(KeyRenderer); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, expected ErrNotFound", err)
	}
	if err := store.Delete(KeyRenderer); err != nil {
		t.Errorf("Delete() of missing key should succeed, got %v", err)
	}
}

func TestStorePreferencesPersist(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "prefs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	muted := false
	if err := store.SavePreferences(Preferences{Difficulty: "hard", Renderer: "blocks", Muted: &muted}); err != nil {
		t.Fatalf("SavePreferences() failed: %v", err)
	}
	store.Close()

	// Reopen and verify the values survived
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store.Close()

	p, err := store.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences() failed: %v", err)
	}
	if p.Difficulty != "hard" || p.Renderer != "blocks" {
		t.Errorf("LoadPreferences() = %+v", p)
	}
	if p.Muted == nil || *p.Muted {
		t.Errorf("Muted = %v, expected false", p.Muted)
	}
}

func TestStorePartialPreferences(t *testing.T) {
	store, _ := openTestStore(t)

	p, err := store.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences() on empty store failed: %v", err)
	}
	if p.Difficulty != "" || p.Renderer != "" || p.Muted != nil {
		t.Errorf("Empty store should give zero preferences, got %+v", p)
	}

	if err := store.SavePreferences(Preferences{Difficulty: "easy"}); err != nil {
		t.Fatalf("SavePreferences() failed: %v", err)
	}
	if err := store.SavePreferences(Preferences{Renderer: "classic"}); err != nil {
		t.Fatalf("SavePreferences() failed: %v", err)
	}

	p, err = store.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences() failed: %v", err)
	}
	// Saving one field must not clear the other
	if p.Difficulty != "easy" || p.Renderer != "classic" {
		t.Errorf("LoadPreferences() = %+v", p)
	}
}

func TestStoreBadMutedValue(t *testing.T) {
	store, _ := openTestStore(t)

	if err := store.Set(KeyMuted, "sometimes"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.LoadPreferences(); err == nil {
		t.Error("Expected error for unparseable muted value")
	}
}
