package storage

import (
	"errors"
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveGame(SaveRecord{Slot: "a", RunID: "r", State: []byte("x"), RNG: []byte("y")}); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	if _, err := store.LoadGame("a"); err != nil {
		t.Errorf("save lost across reopen: %v", err)
	}
}

func TestSaveAndLoadGame(t *testing.T) {
	store := openTestStore(t)

	rec := SaveRecord{
		Slot:  "default",
		RunID: "run-1",
		Seed:  42,
		Block: 3,
		Score: 120.5,
		State: []byte("block: 3\n"),
		RNG:   []byte{1, 2, 3, 4},
	}
	if err := store.SaveGame(rec); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	got, err := store.LoadGame("default")
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if got.RunID != "run-1" || got.Seed != 42 || got.Block != 3 || got.Score != 120.5 {
		t.Errorf("LoadGame() = %+v", got)
	}
	if string(got.State) != "block: 3\n" || len(got.RNG) != 4 || got.RNG[3] != 4 {
		t.Error("blobs not preserved")
	}

	// Overwrite the slot
	rec.Block = 4
	rec.State = []byte("block: 4\n")
	if err := store.SaveGame(rec); err != nil {
		t.Fatalf("SaveGame() overwrite failed: %v", err)
	}
	got, err = store.LoadGame("default")
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if got.Block != 4 || string(got.State) != "block: 4\n" {
		t.Errorf("overwrite not applied: %+v", got)
	}

	saves, err := store.ListSaves()
	if err != nil {
		t.Fatalf("ListSaves() failed: %v", err)
	}
	if len(saves) != 1 {
		t.Errorf("Expected 1 save, got %d", len(saves))
	}
}

func TestLoadMissingSlot(t *testing.T) {
	store := openTestStore(t)

	_, err := store.LoadGame("nothing")
	if !errors.Is(err, ErrNoSave) {
		t.Errorf("LoadGame() error = %v, want ErrNoSave", err)
	}
}

func TestDeleteGame(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveGame(SaveRecord{Slot: "a", RunID: "r", State: []byte("x"), RNG: []byte("y")}); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	if err := store.DeleteGame("a"); err != nil {
		t.Fatalf("DeleteGame() failed: %v", err)
	}
	if _, err := store.LoadGame("a"); !errors.Is(err, ErrNoSave) {
		t.Errorf("slot not emptied: %v", err)
	}
	if err := store.DeleteGame("a"); err != nil {
		t.Errorf("deleting an empty slot should succeed: %v", err)
	}
}

func TestRunHistory(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{RunID: "r1", Slot: "default", Block: 2, Score: 50, Outcome: "lost"},
		{RunID: "r2", Slot: "default", Block: 8, Score: 400, Outcome: "won"},
		{RunID: "r3", Slot: "other", Block: 4, Score: 150, Outcome: "lost"},
	}
	for _, r := range runs {
		if _, err := store.RecordRun(r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
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
	if top[0].RunID != "r2" || top[1].RunID != "r3" || top[2].RunID != "r1" {
		t.Errorf("order = %s, %s, %s", top[0].RunID, top[1].RunID, top[2].RunID)
	}

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 400 {
		t.Errorf("BestScore() = %v, want 400", best)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Won != 1 || stats.Lost != 2 || stats.BestBlock != 8 {
		t.Errorf("Stats() = %+v", stats)
	}

	if _, err := store.RecordRun(runs[0]); err == nil {
		t.Error("recording the same run twice should fail")
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	best, err = store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestScore() after clear = %v, want 0", best)
	}
}

func TestTopRunsDefaultLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		r := RunRecord{RunID: string(rune('a' + i)), Slot: "s", Score: float64(i), Outcome: "lost"}
		if _, err := store.RecordRun(r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}
	top, err := store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(top))
	}
}
