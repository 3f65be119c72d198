package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// Nothing saved yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	if err := store.SaveHighScore(120); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if err := store.SaveHighScore(300); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveHighScore(70); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore(); high != 70 {
		t.Errorf("Expected 70 after reopen, got %d", high)
	}
}

func TestStoreDifficultySpeed(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.DifficultySpeed()
	if err != nil {
		t.Fatalf("DifficultySpeed() failed: %v", err)
	}
	if ok {
		t.Error("DifficultySpeed() should report unset on a new store")
	}

	if err := store.SaveDifficultySpeed(150); err != nil {
		t.Fatalf("SaveDifficultySpeed() failed: %v", err)
	}

	ms, ok, err := store.DifficultySpeed()
	if err != nil || !ok || ms != 150 {
		t.Errorf("DifficultySpeed() = %d, %v, %v; expected 150, true, nil", ms, ok, err)
	}
}

func TestStoreAudioSettings(t *testing.T) {
	store := openTestStore(t)
	def := AudioSettings{Enabled: true, Volume: 0.5}

	got, err := store.AudioSettings(def)
	if err != nil {
		t.Fatalf("AudioSettings() failed: %v", err)
	}
	if got != def {
		t.Errorf("AudioSettings() = %+v, expected defaults %+v", got, def)
	}

	want := AudioSettings{Enabled: false, Volume: 0.25}
	if err := store.SaveAudioSettings(want); err != nil {
		t.Fatalf("SaveAudioSettings() failed: %v", err)
	}

	got, err = store.AudioSettings(def)
	if err != nil {
		t.Fatalf("AudioSettings() failed: %v", err)
	}
	if got != want {
		t.Errorf("AudioSettings() = %+v, expected %+v", got, want)
	}
}

func TestStoreBadSettingValue(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveSetting(KeyHighScore, "lots"); err != nil {
		t.Fatalf("SaveSetting() failed: %v", err)
	}
	if _, err := store.HighScore(); err == nil {
		t.Error("HighScore() should fail on a non-integer value")
	}

	if err := store.SaveSetting(KeyAudioEnabled, "maybe"); err != nil {
		t.Fatalf("SaveSetting() failed: %v", err)
	}
	def := AudioSettings{Enabled: true, Volume: 0.5}
	got, err := store.AudioSettings(def)
	if err == nil {
		t.Error("AudioSettings() should fail on a non-bool value")
	}
	if got != def {
		t.Errorf("AudioSettings() = %+v on error, expected defaults", got)
	}
}

func TestStoreRecordGameAndStats(t *testing.T) {
	store := openTestStore(t)
	played := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return played }

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesPlayed != 0 || stats.AvgScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	for _, score := range []int{100, 50, 30} {
		if err := store.RecordGame(score); err != nil {
			t.Fatalf("RecordGame(%d) failed: %v", score, err)
		}
	}
	store.SaveHighScore(100)

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesPlayed != 3 {
		t.Errorf("Expected 3 games, got %d", stats.GamesPlayed)
	}
	if stats.TotalScore != 180 {
		t.Errorf("Expected total 180, got %d", stats.TotalScore)
	}
	if stats.AvgScore != 60 {
		t.Errorf("Expected average 60, got %v", stats.AvgScore)
	}
	if stats.HighScore != 100 {
		t.Errorf("Expected high score 100, got %d", stats.HighScore)
	}
	if !stats.LastPlayed.Equal(played) {
		t.Errorf("Expected last played %s, got %s", played, stats.LastPlayed)
	}
}

func TestStoreClearStats(t *testing.T) {
	store := openTestStore(t)

	store.RecordGame(40)
	store.SaveHighScore(40)
	store.SaveDifficultySpeed(60)

	if err := store.ClearStats(); err != nil {
		t.Fatalf("ClearStats() failed: %v", err)
	}

	stats, _ := store.GetStats()
	if stats.GamesPlayed != 0 || stats.TotalScore != 0 {
		t.Errorf("Expected counters cleared, got %+v", stats)
	}
	if stats.HighScore != 40 {
		t.Errorf("High score should survive ClearStats, got %d", stats.HighScore)
	}
	if ms, ok, _ := store.DifficultySpeed(); !ok || ms != 60 {
		t.Errorf("Difficulty should survive ClearStats, got %d, %v", ms, ok)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
