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

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	first, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := first.SaveRun(Run{GameID: "arkanoid", Score: 120, Outcome: OutcomeQuit}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	first.Close()

	second, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()

	if v, err := second.SchemaVersion(); err != nil || v != len(migrations) {
		t.Errorf("SchemaVersion() = %d, %v; want %d", v, err, len(migrations))
	}
	if high, err := second.HighScore("arkanoid"); err != nil || high != 120 {
		t.Errorf("HighScore() after reopen = %d, %v; want 120", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "arkanoid", Player: "ana", Score: 900, Level: 2, Outcome: OutcomeGameOver, Duration: 95 * time.Second},
		{GameID: "arkanoid", Player: "bo", Score: 450, Level: 1, Outcome: OutcomeQuit},
		{GameID: "arkanoid", Player: "cy", Score: 3100, Level: 5, Outcome: OutcomeComplete},
		{GameID: "arkanoid_endless", Player: "ana", Score: 5000, Level: 9},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("arkanoid", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	expected := []int{3100, 900, 450}
	for i, r := range top {
		if r.Score != expected[i] {
			t.Errorf("Run %d: expected %d, got %d", i, expected[i], r.Score)
		}
	}
	if top[0].Player != "cy" || top[0].Level != 5 || top[0].Outcome != OutcomeComplete {
		t.Errorf("Top run = %+v", top[0])
	}
	if top[1].Duration != 95*time.Second {
		t.Errorf("Duration = %v, expected 95s", top[1].Duration)
	}

	endless, err := store.TopRuns("arkanoid_endless", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(endless) != 1 || endless[0].Outcome != OutcomeGameOver {
		t.Errorf("Endless runs = %+v, expected one with default outcome", endless)
	}
}

func TestStoreTopRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		store.SaveRun(Run{GameID: "arkanoid", Score: i * 10, Level: 1, Outcome: OutcomeGameOver})
	}
	// Same score, further level ranks higher
	store.SaveRun(Run{GameID: "arkanoid", Score: 140, Level: 3, Outcome: OutcomeGameOver})

	top, err := store.TopRuns("arkanoid", 5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 {
		t.Fatalf("Expected 5 runs, got %d", len(top))
	}
	if top[0].Score != 140 || top[0].Level != 3 {
		t.Errorf("First run = %+v, expected score 140 at level 3", top[0])
	}
	if top[1].Score != 140 || top[1].Level != 1 {
		t.Errorf("Second run = %+v, expected score 140 at level 1", top[1])
	}

	all, err := store.TopRuns("arkanoid", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 10 {
		t.Errorf("Default limit returned %d runs, expected 10", len(all))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "arkanoid", Score: 1})
	store.SaveRun(Run{GameID: "arkanoid_endless", Score: 2})
	store.SaveRun(Run{GameID: "arkanoid", Score: 3})

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 3 || recent[1].Score != 2 {
		t.Errorf("RecentRuns() = %+v", recent)
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("arkanoid")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty game, got %d", high)
	}

	store.SaveRun(Run{GameID: "arkanoid", Score: 100})
	store.SaveRun(Run{GameID: "arkanoid", Score: 300})
	store.SaveRun(Run{GameID: "arkanoid", Score: 200})

	high, err = store.HighScore("arkanoid")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "arkanoid", Score: 100})
	store.SaveRun(Run{GameID: "arkanoid_endless", Score: 500})

	if err := store.ClearRuns("arkanoid"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("arkanoid", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	runs, _ = store.TopRuns("arkanoid_endless", 10)
	if len(runs) != 1 {
		t.Errorf("Expected other game untouched, got %d runs", len(runs))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("arkanoid")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Empty stats = %+v", empty)
	}

	store.SaveRun(Run{GameID: "arkanoid", Score: 100, Level: 1, Outcome: OutcomeGameOver})
	store.SaveRun(Run{GameID: "arkanoid", Score: 300, Level: 5, Outcome: OutcomeComplete})
	store.SaveRun(Run{GameID: "arkanoid_endless", Score: 50, Level: 2})

	stats, err := store.GetGameStats("arkanoid")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("Stats = %+v", stats)
	}
	if stats.BestLevel != 5 || stats.Completions != 1 {
		t.Errorf("BestLevel = %d, Completions = %d", stats.BestLevel, stats.Completions)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["arkanoid_endless"].HighScore != 50 || all["arkanoid_endless"].Completions != 0 {
		t.Errorf("Endless stats = %+v", all["arkanoid_endless"])
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
