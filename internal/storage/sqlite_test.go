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
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	// Reopening runs migrations again without error and keeps data
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.invaders/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".invaders", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saves := []ScoreEntry{
		{RunID: "a", Player: "ann", Score: 100, Level: 1},
		{RunID: "b", Player: "bob", Score: 50, Level: 1},
		{RunID: "c", Player: "ann", Score: 200, Level: 2},
		{RunID: "d", Player: "cid", Score: 100, Level: 1},
	}
	for _, e := range saves {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore(%s) failed: %v", e.RunID, err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(scores))
	}

	wantOrder := []string{"c", "a", "d", "b"}
	for i, run := range wantOrder {
		if scores[i].RunID != run {
			t.Errorf("scores[%d].RunID = %s, expected %s", i, scores[i].RunID, run)
		}
	}
	if scores[0].Player != "ann" || scores[0].Level != 2 {
		t.Errorf("top entry = %+v, expected ann at level 2", scores[0])
	}
	if scores[0].CreatedAt.IsZero() || time.Since(scores[0].CreatedAt) > time.Hour {
		t.Errorf("CreatedAt = %v, expected a recent timestamp", scores[0].CreatedAt)
	}

	limited, err := store.TopScores(2)
	if err != nil {
		t.Fatalf("TopScores(2) failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 scores with limit, got %d", len(limited))
	}
}

func TestStoreSaveScoreIsIdempotent(t *testing.T) {
	store := openTestStore(t)

	first, err := store.SaveScore(ScoreEntry{RunID: "run-1", Score: 120, Level: 2})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	second, err := store.SaveScore(ScoreEntry{RunID: "run-1", Score: 999, Level: 5})
	if err != nil {
		t.Fatalf("second SaveScore() failed: %v", err)
	}

	if first != second {
		t.Errorf("IDs differ: %d vs %d", first, second)
	}
	high, _ := store.HighScore()
	if high != 120 {
		t.Errorf("HighScore() = %d, expected the original 120", high)
	}

	if _, err := store.SaveScore(ScoreEntry{Score: 10}); err == nil {
		t.Error("SaveScore() without run ID should fail")
	}
}

func TestStoreHighScoreAndPlayerBest(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 for empty store, got %d", high)
	}

	store.SaveScore(ScoreEntry{RunID: "1", Player: "ann", Score: 40})
	store.SaveScore(ScoreEntry{RunID: "2", Player: "bob", Score: 70})
	store.SaveScore(ScoreEntry{RunID: "3", Player: "ann", Score: 60})

	if high, _ := store.HighScore(); high != 70 {
		t.Errorf("HighScore() = %d, expected 70", high)
	}
	if best, _ := store.PlayerBest("ann"); best != 60 {
		t.Errorf("PlayerBest(ann) = %d, expected 60", best)
	}
	if best, _ := store.PlayerBest("nobody"); best != 0 {
		t.Errorf("PlayerBest(nobody) = %d, expected 0", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Games != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore(ScoreEntry{RunID: "1", Score: 100, Level: 1})
	store.SaveScore(ScoreEntry{RunID: "2", Score: 300, Level: 3})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 2 || stats.HighScore != 300 || stats.TotalScore != 400 || stats.AvgScore != 200 || stats.BestLevel != 3 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore(ScoreEntry{RunID: "1", Score: 100})

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time value", want, want},
		{"sqlite string", "2026-03-04 05:06:07", want},
		{"rfc3339", "2026-03-04T05:06:07Z", want},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTimestamp(tt.in); !got.Equal(tt.want) {
				t.Errorf("parseTimestamp(%v) = %v, expected %v", tt.in, got, tt.want)
			}
		})
	}
}
