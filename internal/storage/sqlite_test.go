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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore(GameResult{GameID: "rockswap", Score: 420}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("rockswap")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 420 {
		t.Errorf("HighScore after reopen = %d, expected 420", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	results := []GameResult{
		{GameID: "rockswap", Score: 100, Moves: 30, BestChain: 2},
		{GameID: "rockswap", Score: 50, Moves: 30, BestChain: 1},
		{GameID: "rockswap", Score: 200, Moves: 25, BestChain: 4},
		{GameID: "rockswap_zen", Score: 500, Moves: 80, BestChain: 3},
	}
	for _, r := range results {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("rockswap", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	expected := []int{200, 100, 50}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
	}
	if scores[0].Moves != 25 || scores[0].BestChain != 4 {
		t.Errorf("top entry moves/chain = %d/%d, expected 25/4", scores[0].Moves, scores[0].BestChain)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}

	zen, err := store.TopScores("rockswap_zen", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(zen) != 1 || zen[0].Score != 500 {
		t.Errorf("zen scores = %+v, expected a single 500", zen)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		if _, err := store.SaveScore(GameResult{GameID: "rockswap", Score: i * 10}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	tests := []struct {
		limit    int
		expected int
	}{
		{5, 5},
		{0, 10}, // default
		{50, 20},
	}
	for _, tc := range tests {
		scores, err := store.TopScores("rockswap", tc.limit)
		if err != nil {
			t.Fatalf("TopScores() failed: %v", err)
		}
		if len(scores) != tc.expected {
			t.Errorf("TopScores(limit=%d) returned %d rows, expected %d", tc.limit, len(scores), tc.expected)
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("rockswap")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty table, got %d", high)
	}

	for _, score := range []int{100, 500, 250} {
		if _, err := store.SaveScore(GameResult{GameID: "rockswap", Score: score}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	high, err = store.HighScore("rockswap")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 500 {
		t.Errorf("Expected high score 500, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(GameResult{GameID: "rockswap", Score: 100})
	store.SaveScore(GameResult{GameID: "rockswap", Score: 200})
	store.SaveScore(GameResult{GameID: "rockswap_zen", Score: 300})

	n, err := store.ClearScores("rockswap")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("ClearScores removed %d rows, expected 2", n)
	}

	high, _ := store.HighScore("rockswap")
	if high != 0 {
		t.Errorf("Expected 0 after clear, got %d", high)
	}

	// Other modes are untouched
	high, _ = store.HighScore("rockswap_zen")
	if high != 300 {
		t.Errorf("Expected zen high score 300, got %d", high)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("rockswap")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore(GameResult{GameID: "rockswap", Score: 100, BestChain: 2})
	store.SaveScore(GameResult{GameID: "rockswap", Score: 300, BestChain: 5})
	store.SaveScore(GameResult{GameID: "rockswap_zen", Score: 40, BestChain: 1})

	stats, err = store.GetGameStats("rockswap")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, expected 200", stats.AvgScore)
	}
	if stats.BestChain != 5 {
		t.Errorf("BestChain = %d, expected 5", stats.BestChain)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected stats for 2 modes, got %d", len(all))
	}
	if all["rockswap_zen"].HighScore != 40 {
		t.Errorf("zen high = %d, expected 40", all["rockswap_zen"].HighScore)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.rockswap/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".rockswap", "test.db")); err != nil {
		t.Errorf("expected database under home: %v", err)
	}
}
