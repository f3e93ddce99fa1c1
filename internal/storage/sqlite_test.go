package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreTopScoresOrder(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("clicker", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("dice", 12); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	tests := []struct {
		name  string
		order Order
		want  []int
	}{
		{"higher is better", HigherIsBetter, []int{200, 100, 50}},
		{"lower is better", LowerIsBetter, []int{50, 100, 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := store.TopScores("clicker", 10, tt.order)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != len(tt.want) {
				t.Fatalf("Expected %d scores, got %d", len(tt.want), len(scores))
			}
			for i, want := range tt.want {
				if scores[i].Score != want {
					t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, want)
				}
			}
		})
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3, HigherIsBetter)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.BestScore("reaction", LowerIsBetter)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if ok {
		t.Error("Expected no best score for empty game")
	}

	store.SaveScore("reaction", 320)
	store.SaveScore("reaction", 210)
	store.SaveScore("reaction", 450)

	best, ok, err := store.BestScore("reaction", LowerIsBetter)
	if err != nil || !ok {
		t.Fatalf("BestScore() = %d, %v, %v", best, ok, err)
	}
	if best != 210 {
		t.Errorf("Expected fastest time 210, got %d", best)
	}

	best, _, _ = store.BestScore("reaction", HigherIsBetter)
	if best != 450 {
		t.Errorf("Expected max 450, got %d", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("snake", 100)
	store.SaveScore("snake", 200)
	store.SaveScore("t2048", 300)

	if err := store.ClearScores("snake"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	snakeScores, _ := store.TopScores("snake", 10, HigherIsBetter)
	if len(snakeScores) != 0 {
		t.Errorf("Expected 0 snake scores after clear, got %d", len(snakeScores))
	}
	other, _ := store.TopScores("t2048", 10, HigherIsBetter)
	if len(other) != 1 {
		t.Errorf("t2048 scores should not be affected by clearing snake")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("math", 4)
	store.SaveScore("math", 8)

	stats, err := store.GetGameStats("math", HigherIsBetter)
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.Best != 8 || stats.AvgScore != 6 {
		t.Errorf("unexpected stats: %+v", stats)
	}

	empty, err := store.GetGameStats("pong", HigherIsBetter)
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for unplayed game: %+v", empty)
	}
}

func TestStorePreferences(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Preference("arcade-theme"); err != nil || ok {
		t.Fatalf("Preference() on empty store = %v, %v", ok, err)
	}

	if err := store.SetPreference("arcade-theme", "ocean"); err != nil {
		t.Fatalf("SetPreference() failed: %v", err)
	}
	if err := store.SetPreference("arcade-theme", "forest"); err != nil {
		t.Fatalf("SetPreference() overwrite failed: %v", err)
	}

	got, ok, err := store.Preference("arcade-theme")
	if err != nil || !ok {
		t.Fatalf("Preference() = %q, %v, %v", got, ok, err)
	}
	if got != "forest" {
		t.Errorf("Expected forest, got %q", got)
	}
}
