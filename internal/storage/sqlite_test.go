package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
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

// saveScores stores one level 1 run per score.
func saveScores(t *testing.T, store *Store, scores ...int) {
	t.Helper()
	for _, score := range scores {
		if _, err := store.SaveRun(Run{Level: 1, Score: score, Elapsed: 30, TimeLimit: 60}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openStore(t)
	saveScores(t, store, 100, 50, 200)

	scores, err := store.TopScores(GameID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("TopScores() returned %d scores, expected 3", len(scores))
	}

	expected := []int{200, 100, 50}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
		if scores[i].GameID != GameID {
			t.Errorf("scores[%d].GameID = %q, expected %q", i, scores[i].GameID, GameID)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openStore(t)
	saveScores(t, store, 100, 200, 300, 400, 500)

	scores, err := store.TopScores(GameID, 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("TopScores() returned %d scores, expected 3", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openStore(t)

	high, err := store.HighScore(GameID)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d for an empty table, expected 0", high)
	}

	saveScores(t, store, 100, 300, 200)

	high, err = store.HighScore(GameID)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("HighScore() = %d, expected 300", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openStore(t)
	saveScores(t, store, 100, 200)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores(GameID, 10); len(scores) != 0 {
		t.Errorf("TopScores() returned %d scores after clear, expected 0", len(scores))
	}
	if runs, _ := store.BestRuns(0, 10); len(runs) != 0 {
		t.Errorf("BestRuns() returned %d runs after clear, expected 0", len(runs))
	}
	if high, _ := store.HighScore(GameID); high != 0 {
		t.Errorf("HighScore() = %d after clear, expected 0", high)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openStore(t)

	empty, err := store.GetGameStats(GameID)
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("GetGameStats() = %+v for an empty table", empty)
	}

	saveScores(t, store, 100, 300)

	stats, err := store.GetGameStats(GameID)
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 || stats.AvgScore != 200 {
		t.Errorf("GetGameStats() = %+v, expected 2 games, high 300, total 400, avg 200", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed is zero after saving scores")
	}
}

func TestStoreRuns(t *testing.T) {
	store := openStore(t)

	runs := []Run{
		{Level: 1, Score: 1200, Elapsed: 40, TimeLimit: 60, GatesPassed: 3},
		{Level: 1, Score: 1200, Elapsed: 35.5, TimeLimit: 60, GatesPassed: 3},
		{Level: 1, Score: 400, Elapsed: 58, TimeLimit: 60, GatesPassed: 1, GatesMissed: 2, Crashes: 1},
		{Level: 2, Score: 9000, Bonus: 20000, Elapsed: 30, TimeLimit: 55},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	tests := []struct {
		name     string
		level    int
		limit    int
		expected []float64 // elapsed of each returned run
	}{
		{"level one", 1, 10, []float64{35.5, 40, 58}},
		{"level one limited", 1, 1, []float64{35.5}},
		{"level two", 2, 10, []float64{30}},
		{"all levels", 0, 2, []float64{30, 35.5}},
		{"unplayed level", 3, 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.BestRuns(tt.level, tt.limit)
			if err != nil {
				t.Fatalf("BestRuns() failed: %v", err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("BestRuns() returned %d runs, expected %d", len(got), len(tt.expected))
			}
			for i, want := range tt.expected {
				if got[i].Elapsed != want {
					t.Errorf("run %d Elapsed = %v, expected %v", i, got[i].Elapsed, want)
				}
			}
		})
	}

	best, _ := store.BestRuns(1, 10)
	if last := best[len(best)-1]; last.GatesMissed != 2 || last.Crashes != 1 {
		t.Errorf("worst run = %+v, expected its counters preserved", last)
	}

	high, err := store.HighScore(GameID)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 9000 {
		t.Errorf("HighScore() = %d, expected 9000 from the saved runs", high)
	}
}
