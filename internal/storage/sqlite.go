// Package storage provides SQLite-based persistence for finished maze runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// LocalPlayer is recorded for runs played outside the SSH server.
const LocalPlayer = "local"

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run is one completed maze.
type Run struct {
	ID        int64
	RunID     string // UUID, generated by SaveRun when empty
	Player    string
	Seed      int64
	Width     int
	Height    int
	Elapsed   time.Duration
	Moves     int
	CreatedAt time.Time
}

// SizeStats aggregates the runs played on one maze size.
type SizeStats struct {
	Width       int
	Height      int
	Runs        int
	BestElapsed time.Duration
	AvgElapsed  time.Duration
	AvgMoves    float64
	LastPlayed  time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL,
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_size ON runs(width, height);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(width, height, elapsed_ms ASC, moves ASC);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
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

// SaveRun records a finished run and returns the ID of the inserted record.
// A missing RunID is generated; a supplied one must be a valid UUID.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	} else if _, err := uuid.Parse(r.RunID); err != nil {
		return 0, fmt.Errorf("storage: invalid run id %q: %w", r.RunID, err)
	}
	if r.Player == "" {
		r.Player = LocalPlayer
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (run_id, player, seed, width, height, elapsed_ms, moves)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Player, r.Seed, r.Width, r.Height, r.Elapsed.Milliseconds(), r.Moves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, run_id, player, seed, width, height, elapsed_ms, moves, created_at`

// BestRuns retrieves the fastest runs for one maze size. Ties on time are
// broken by fewer moves, then by who finished first.
func (s *Store) BestRuns(width, height, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE width = ? AND height = ?
		 ORDER BY elapsed_ms ASC, moves ASC, id ASC
		 LIMIT ?`,
		width, height, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// PlayerRuns retrieves a player's most recent runs across all sizes.
func (s *Store) PlayerRuns(player string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE player = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player runs: %w", err)
	}
	return scanRuns(rows)
}

// RunByID retrieves a run by its UUID. Returns nil if none exists.
func (s *Store) RunByID(runID string) (*Run, error) {
	var r Run
	var elapsedMS int64
	var createdAt any

	err := s.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE run_id = ?`,
		runID,
	).Scan(&r.ID, &r.RunID, &r.Player, &r.Seed, &r.Width, &r.Height, &elapsedMS, &r.Moves, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// BestTime returns the fastest time for one maze size.
// The boolean is false when no run has been recorded.
func (s *Store) BestTime(width, height int) (time.Duration, bool, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(elapsed_ms) FROM runs WHERE width = ? AND height = ?",
		width, height,
	).Scan(&best)

	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !best.Valid {
		return 0, false, nil
	}

	return time.Duration(best.Int64) * time.Millisecond, true, nil
}

// Stats retrieves aggregated statistics for every maze size played,
// largest mazes first.
func (s *Store) Stats() ([]SizeStats, error) {
	rows, err := s.db.Query(
		`SELECT width, height, COUNT(*), MIN(elapsed_ms), AVG(elapsed_ms), AVG(moves), MAX(created_at)
		 FROM runs
		 GROUP BY width, height
		 ORDER BY width * height DESC, width DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	var stats []SizeStats
	for rows.Next() {
		var st SizeStats
		var bestMS int64
		var avgMS float64
		var lastPlayed any
		if err := rows.Scan(&st.Width, &st.Height, &st.Runs, &bestMS, &avgMS, &st.AvgMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}

		st.BestElapsed = time.Duration(bestMS) * time.Millisecond
		st.AvgElapsed = time.Duration(avgMS * float64(time.Millisecond))
		st.LastPlayed = parseTime(lastPlayed)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearRuns deletes all runs for one maze size.
func (s *Store) ClearRuns(width, height int) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE width = ? AND height = ?", width, height)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var elapsedMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.Player, &r.Seed, &r.Width, &r.Height, &elapsedMS, &r.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
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
