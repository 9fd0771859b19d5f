package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	sessions := []struct {
		points float64
		ticks  int
	}{
		{1.5, 225},
		{4.02, 603},
		{0.33, 50},
	}
	for _, s := range sessions {
		if _, err := store.SaveScore(s.points, s.ticks); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("got %d scores, want 3", len(scores))
	}
	// Ordered by points descending.
	if scores[0].Points != 4.02 || scores[1].Points != 1.5 || scores[2].Points != 0.33 {
		t.Errorf("wrong order: %v, %v, %v", scores[0].Points, scores[1].Points, scores[2].Points)
	}
	if scores[0].Ticks != 603 {
		t.Errorf("ticks = %d, want 603", scores[0].Ticks)
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveScore(float64(i), i*150); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	scores, err := store.TopScores(2)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 2 {
		t.Errorf("got %d scores, want 2", len(scores))
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	// Empty database reports zero, not an error.
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != 0 {
		t.Errorf("empty high score = %v, want 0", high)
	}

	store.SaveScore(2.5, 375)
	store.SaveScore(7.25, 1088)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != 7.25 {
		t.Errorf("high score = %v, want 7.25", high)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(1.0, 150)
	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("%d scores after clear", len(scores))
	}
}

func TestGetStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.GamesCount != 0 {
		t.Errorf("empty stats count = %d", stats.GamesCount)
	}

	store.SaveScore(2.0, 300)
	store.SaveScore(4.0, 600)

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("count = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 4.0 {
		t.Errorf("high = %v, want 4.0", stats.HighScore)
	}
	if stats.AvgScore != 3.0 {
		t.Errorf("avg = %v, want 3.0", stats.AvgScore)
	}
}

func TestOpenCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "scores.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open with nested path: %v", err)
	}
	store.Close()
}
