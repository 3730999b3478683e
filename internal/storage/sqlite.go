// Package storage provides SQLite-based persistence for player preferences.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only settings are kept between runs; scores are never written.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Preference keys.
const (
	KeyDifficulty = "difficulty"
	KeyRenderer   = "renderer"
	KeyMuted      = "muted"
)

const upsertSetting = `INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

// ErrNotFound is returned when a setting has never been saved.
var ErrNotFound = errors.New("storage: setting not found")

// Store manages the SQLite database connection for preference persistence.
type Store struct {
	db *sql.DB
}

// Preferences are the choices remembered between runs.
// Empty strings mean "not saved yet".
type Preferences struct {
	Difficulty string
	Renderer   string
	Muted      *bool
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Set stores a setting, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(upsertSetting, key, value, timestamp())
	if err != nil {
		return fmt.Errorf("storage: cannot save setting %s: %w", key, err)
	}
	return nil
}

// Get returns a setting, or ErrNotFound.
func (s *Store) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot read setting %s: %w", key, err)
	}
	return value, nil
}

// Delete removes a setting. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM settings WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete setting %s: %w", key, err)
	}
	return nil
}

// LoadPreferences reads every remembered preference.
func (s *Store) LoadPreferences() (Preferences, error) {
	var p Preferences

	for key, dst := range map[string]*string{
		KeyDifficulty: &p.Difficulty,
		KeyRenderer:   &p.Renderer,
	} {
		v, err := s.Get(key)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return p, err
		}
		*dst = v
	}

	v, err := s.Get(KeyMuted)
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return p, err
	default:
		muted, parseErr := strconv.ParseBool(v)
		if parseErr != nil {
			return p, fmt.Errorf("storage: bad %s value %q: %w", KeyMuted, v, parseErr)
		}
		p.Muted = &muted
	}

	return p, nil
}

// SavePreferences writes the non-empty fields of p in one transaction.
func (s *Store) SavePreferences(p Preferences) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	now := timestamp()

	values := map[string]string{}
	if p.Difficulty != "" {
		values[KeyDifficulty] = p.Difficulty
	}
	if p.Renderer != "" {
		values[KeyRenderer] = p.Renderer
	}
	if p.Muted != nil {
		values[KeyMuted] = strconv.FormatBool(*p.Muted)
	}

	for k, v := range values {
		if _, err := tx.Exec(upsertSetting, k, v, now); err != nil {
			return fmt.Errorf("storage: cannot save setting %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit preferences: %w", err)
	}
	return nil
}

func timestamp() string {
	return time.Now().UTC().Format("2006-01-02 15:04:05")
}
