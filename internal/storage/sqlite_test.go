package storage

import (
	"os"
	"path/filepath"
	"sync"
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

func TestStoreHighScoreDefaultsToZero(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for a new database, got %d", high)
	}
}

func TestStoreHighScoreNeverDecreases(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		candidate int
		want      int
	}{
		{5, 5},
		{3, 5},
		{5, 5},
		{12, 12},
		{0, 12},
		{11, 12},
	}

	for _, step := range steps {
		if err := store.SetHighScoreIfGreater(step.candidate); err != nil {
			t.Fatalf("SetHighScoreIfGreater(%d) failed: %v", step.candidate, err)
		}
		high, err := store.HighScore()
		if err != nil {
			t.Fatalf("HighScore() failed: %v", err)
		}
		if high != step.want {
			t.Errorf("after candidate %d: high score %d, expected %d", step.candidate, high, step.want)
		}
	}
}

func TestStoreHighScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetHighScoreIfGreater(42); err != nil {
		t.Fatalf("SetHighScoreIfGreater() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore(); high != 42 {
		t.Errorf("Expected 42 after reopen, got %d", high)
	}
}

func TestStoreConcurrentHighScore(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if err := store.SetHighScoreIfGreater(score); err != nil {
				t.Errorf("SetHighScoreIfGreater(%d) failed: %v", score, err)
			}
		}(i)
	}
	wg.Wait()

	if high, _ := store.HighScore(); high != 20 {
		t.Errorf("Expected 20 after concurrent writes, got %d", high)
	}
}

func TestStoreSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Score: 10, Difficulty: "normal", Duration: 12 * time.Second},
		{Score: 5, Difficulty: "easy"},
		{Score: 20, Difficulty: "hard", Autopilot: true, Duration: 1500 * time.Millisecond},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	if top[0].Score != 20 || top[1].Score != 10 || top[2].Score != 5 {
		t.Errorf("Runs not in expected order: %+v", top)
	}
	if !top[0].Autopilot || top[0].Difficulty != "hard" || top[0].Duration != 1500*time.Millisecond {
		t.Errorf("Run fields not preserved: %+v", top[0])
	}
	if top[1].Autopilot {
		t.Errorf("Manual run marked as autopilot: %+v", top[1])
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Score: (i + 1) * 100})
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreClearRunsKeepsHighScore(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Score: 7})
	store.SaveRun(Run{Score: 9})
	store.SetHighScoreIfGreater(9)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if high, _ := store.HighScore(); high != 9 {
		t.Errorf("ClearRuns should keep the high score, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty history failed: %v", err)
	}
	if stats.RunsCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(Run{Score: 4, Duration: time.Second})
	store.SaveRun(Run{Score: 8, Duration: 2 * time.Second})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.BestRun != 8 || stats.TotalScore != 12 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 6 {
		t.Errorf("Expected average 6, got %v", stats.AvgScore)
	}
	if stats.PlayTime != 3*time.Second {
		t.Errorf("Expected 3s play time, got %v", stats.PlayTime)
	}
}
