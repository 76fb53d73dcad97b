package stats

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists records to a SQLite file, one row per finished
// generation.
type SQLiteRecorder struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

// NewSQLiteRecorder creates a recorder for the given database file. Init
// opens the file and creates the schema.
func NewSQLiteRecorder(path string) *SQLiteRecorder {
	return &SQLiteRecorder{path: path}
}

// Init opens the database and ensures the schema exists. Calling Init on an
// already-open recorder is a no-op.
func (s *SQLiteRecorder) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// RecordGeneration upserts one generation of one run.
func (s *SQLiteRecorder) RecordGeneration(ctx context.Context, rec GenerationRecord) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO generations (run_id, generation, ticks, survivors, best_fitness, mean_fitness, best_brain)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, generation) DO UPDATE SET
			ticks = excluded.ticks,
			survivors = excluded.survivors,
			best_fitness = excluded.best_fitness,
			mean_fitness = excluded.mean_fitness,
			best_brain = excluded.best_brain
	`, rec.RunID, rec.Generation, rec.Ticks, rec.Survivors, rec.BestFitness, rec.MeanFitness, rec.BestBrain)
	return err
}

// History returns a run's records in generation order.
func (s *SQLiteRecorder) History(ctx context.Context, runID string) ([]GenerationRecord, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT run_id, generation, ticks, survivors, best_fitness, mean_fitness, best_brain
		FROM generations
		WHERE run_id = ?
		ORDER BY generation
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GenerationRecord
	for rows.Next() {
		var rec GenerationRecord
		if err := rows.Scan(&rec.RunID, &rec.Generation, &rec.Ticks, &rec.Survivors,
			&rec.BestFitness, &rec.MeanFitness, &rec.BestBrain); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Close closes the database. The recorder cannot be reused afterwards.
func (s *SQLiteRecorder) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteRecorder) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("recorder is not initialized")
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS generations (
			run_id TEXT NOT NULL,
			generation INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			survivors INTEGER NOT NULL,
			best_fitness REAL NOT NULL,
			mean_fitness REAL NOT NULL,
			best_brain BLOB,
			PRIMARY KEY (run_id, generation)
		);
	`)
	return err
}
