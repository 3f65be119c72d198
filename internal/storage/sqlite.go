// Package storage provides SQLite-based persistence for the snake game:
// the high score, the chosen difficulty speed, audio settings and aggregate
// play counters. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

// Setting keys.
const (
	KeyHighScore       = "high_score"
	KeyDifficultySpeed = "difficulty_speed"
	KeyAudioEnabled    = "audio_enabled"
	KeyAudioVolume     = "audio_volume"
	KeyGamesPlayed     = "games_played"
	KeyTotalScore      = "total_score"
	KeyLastPlayed      = "last_played"
)

// Store manages the SQLite database connection.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Stats contains aggregated statistics across all recorded games.
type Stats struct {
	GamesPlayed int
	TotalScore  int64
	HighScore   int
	AvgScore    float64
	LastPlayed  time.Time
}

// AudioSettings are the persisted sound preferences.
type AudioSettings struct {
	Enabled bool
	Volume  float64
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	// Run migrations
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

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Setting returns the raw value for key. ok is false if the key was never saved.
func (s *Store) Setting(key string) (value string, ok bool, err error) {
	return getSetting(s.db, key)
}

// SaveSetting upserts a raw value for key.
func (s *Store) SaveSetting(key, value string) error {
	return putSetting(s.db, key, value)
}

func getSetting(q querier, key string) (string, bool, error) {
	var value string
	err := q.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read setting %s: %w", key, err)
	}
	return value, true, nil
}

func putSetting(q querier, key, value string) error {
	_, err := q.Exec(
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save setting %s: %w", key, err)
	}
	return nil
}

func getInt(q querier, key string) (int64, bool, error) {
	raw, ok, err := getSetting(q, key)
	if err != nil || !ok {
		return 0, false, err
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("storage: setting %s is not an integer: %w", key, err)
	}
	return n, true, nil
}

// HighScore returns the persisted high score.
// Returns 0 if none was saved.
func (s *Store) HighScore() (int, error) {
	n, _, err := getInt(s.db, KeyHighScore)
	return int(n), err
}

// SaveHighScore overwrites the persisted high score.
func (s *Store) SaveHighScore(score int) error {
	return s.SaveSetting(KeyHighScore, strconv.Itoa(score))
}

// DifficultySpeed returns the persisted base interval in milliseconds.
// ok is false if no difficulty was chosen yet.
func (s *Store) DifficultySpeed() (ms int, ok bool, err error) {
	n, ok, err := getInt(s.db, KeyDifficultySpeed)
	return int(n), ok, err
}

// SaveDifficultySpeed persists the base interval in milliseconds.
func (s *Store) SaveDifficultySpeed(ms int) error {
	return s.SaveSetting(KeyDifficultySpeed, strconv.Itoa(ms))
}

// AudioSettings returns the persisted sound preferences, falling back to def
// for keys that were never saved.
func (s *Store) AudioSettings(def AudioSettings) (AudioSettings, error) {
	out := def

	raw, ok, err := s.Setting(KeyAudioEnabled)
	if err != nil {
		return def, err
	}
	if ok {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return def, fmt.Errorf("storage: setting %s is not a bool: %w", KeyAudioEnabled, err)
		}
		out.Enabled = enabled
	}

	raw, ok, err = s.Setting(KeyAudioVolume)
	if err != nil {
		return def, err
	}
	if ok {
		volume, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return def, fmt.Errorf("storage: setting %s is not a number: %w", KeyAudioVolume, err)
		}
		out.Volume = volume
	}

	return out, nil
}

// SaveAudioSettings persists both sound preferences in one transaction.
func (s *Store) SaveAudioSettings(a AudioSettings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := putSetting(tx, KeyAudioEnabled, strconv.FormatBool(a.Enabled)); err != nil {
		return err
	}
	if err := putSetting(tx, KeyAudioVolume, strconv.FormatFloat(a.Volume, 'f', -1, 64)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit audio settings: %w", err)
	}
	return nil
}

// RecordGame folds one finished game into the aggregate counters.
// Individual games are not kept.
func (s *Store) RecordGame(score int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	played, _, err := getInt(tx, KeyGamesPlayed)
	if err != nil {
		return err
	}
	total, _, err := getInt(tx, KeyTotalScore)
	if err != nil {
		return err
	}

	if err := putSetting(tx, KeyGamesPlayed, strconv.FormatInt(played+1, 10)); err != nil {
		return err
	}
	if err := putSetting(tx, KeyTotalScore, strconv.FormatInt(total+int64(score), 10)); err != nil {
		return err
	}
	if err := putSetting(tx, KeyLastPlayed, s.now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit game record: %w", err)
	}
	return nil
}

// GetStats retrieves the aggregate statistics.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	played, _, err := getInt(s.db, KeyGamesPlayed)
	if err != nil {
		return nil, err
	}
	total, _, err := getInt(s.db, KeyTotalScore)
	if err != nil {
		return nil, err
	}
	high, _, err := getInt(s.db, KeyHighScore)
	if err != nil {
		return nil, err
	}

	stats.GamesPlayed = int(played)
	stats.TotalScore = total
	stats.HighScore = int(high)
	if played > 0 {
		stats.AvgScore = float64(total) / float64(played)
	}

	raw, ok, err := s.Setting(KeyLastPlayed)
	if err != nil {
		return nil, err
	}
	if ok {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			stats.LastPlayed = parsed
		}
	}

	return stats, nil
}

// ClearStats deletes the play counters. The high score and preferences survive.
func (s *Store) ClearStats() error {
	_, err := s.db.Exec(
		"DELETE FROM settings WHERE key IN (?, ?, ?)",
		KeyGamesPlayed, KeyTotalScore, KeyLastPlayed,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot clear stats: %w", err)
	}
	return nil
}
