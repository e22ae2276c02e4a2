// Package storage provides SQLite-based persistence for save slots and run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNoSave is returned when a save slot is empty.
var ErrNoSave = errors.New("storage: no save in slot")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SaveRecord is one save slot: the encoded state plus the RNG state needed
// to continue the run deterministically.
type SaveRecord struct {
	Slot      string
	RunID     string
	Seed      int64
	Block     int
	Score     float64
	State     []byte // YAML-encoded game state
	RNG       []byte // marshalled PCG source
	UpdatedAt time.Time
}

// RunRecord is a finished run in the history.
type RunRecord struct {
	ID        int64
	RunID     string
	Slot      string
	Seed      int64
	Block     int
	Score     float64
	Outcome   string // "won", "lost" or "abandoned"
	CreatedAt time.Time
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			slot TEXT PRIMARY KEY,
			run_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			block INTEGER NOT NULL,
			score REAL NOT NULL,
			state BLOB NOT NULL,
			rng BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			slot TEXT NOT NULL,
			seed INTEGER NOT NULL,
			block INTEGER NOT NULL,
			score REAL NOT NULL,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
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

// SaveGame writes rec into its slot, replacing any previous save.
func (s *Store) SaveGame(rec SaveRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO saves (slot, run_id, seed, block, score, state, rng, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
		   run_id = excluded.run_id,
		   seed = excluded.seed,
		   block = excluded.block,
		   score = excluded.score,
		   state = excluded.state,
		   rng = excluded.rng,
		   updated_at = CURRENT_TIMESTAMP`,
		rec.Slot, rec.RunID, rec.Seed, rec.Block, rec.Score, rec.State, rec.RNG,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save slot %s: %w", rec.Slot, err)
	}
	return nil
}

// LoadGame reads the save in slot. Returns ErrNoSave if the slot is empty.
func (s *Store) LoadGame(slot string) (*SaveRecord, error) {
	var rec SaveRecord
	var updatedAt any

	err := s.db.QueryRow(
		`SELECT slot, run_id, seed, block, score, state, rng, updated_at
		 FROM saves WHERE slot = ?`,
		slot,
	).Scan(&rec.Slot, &rec.RunID, &rec.Seed, &rec.Block, &rec.Score, &rec.State, &rec.RNG, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load slot %s: %w", slot, err)
	}

	rec.UpdatedAt = parseTime(updatedAt)
	return &rec, nil
}

// DeleteGame empties slot. Deleting an empty slot is not an error.
func (s *Store) DeleteGame(slot string) error {
	if _, err := s.db.Exec("DELETE FROM saves WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot delete slot %s: %w", slot, err)
	}
	return nil
}

// ListSaves returns all occupied slots, most recently updated first.
// State and RNG blobs are not loaded.
func (s *Store) ListSaves() ([]SaveRecord, error) {
	rows, err := s.db.Query(
		`SELECT slot, run_id, seed, block, score, updated_at
		 FROM saves
		 ORDER BY updated_at DESC, slot`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var saves []SaveRecord
	for rows.Next() {
		var rec SaveRecord
		var updatedAt any
		if err := rows.Scan(&rec.Slot, &rec.RunID, &rec.Seed, &rec.Block, &rec.Score, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.UpdatedAt = parseTime(updatedAt)
		saves = append(saves, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return saves, nil
}

// RecordRun adds a finished run to the history.
// Returns the ID of the inserted record.
func (s *Store) RecordRun(run RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (run_id, slot, seed, block, score, outcome)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.RunID, run.Slot, run.Seed, run.Block, run.Score, run.Outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best N runs ordered by score descending.
func (s *Store) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, slot, seed, block, score, outcome, created_at
		 FROM runs
		 ORDER BY score DESC, id
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.Slot, &r.Seed, &r.Block, &r.Score, &r.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestScore returns the highest recorded run score, or 0 without runs.
func (s *Store) BestScore() (float64, error) {
	var score sql.NullFloat64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return score.Float64, nil
}

// RunStats contains aggregated run history.
type RunStats struct {
	Runs      int
	Won       int
	Lost      int
	BestBlock int
	LastRun   time.Time
}

// Stats aggregates the run history.
func (s *Store) Stats() (*RunStats, error) {
	stats := &RunStats{}
	var lastRun any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'won'), 0),
		        COALESCE(SUM(outcome = 'lost'), 0),
		        COALESCE(MAX(block), 0),
		        MAX(created_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.Won, &stats.Lost, &stats.BestBlock, &lastRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	stats.LastRun = parseTime(lastRun)
	return stats, nil
}

// ClearRuns deletes the run history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
