// Package storage provides SQLite-based persistence for the visit ledger.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The ledger is a record of finished sessions. It is never read back into
// a session: every play-through starts from the intro screen.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// timeLayout is how timestamps are stored; it sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store manages the SQLite database connection for the visit ledger.
type Store struct {
	db *sql.DB
}

// Visit is one finished session.
type Visit struct {
	ID            int64
	SessionID     string
	Username      string
	LevelID       string
	FurthestStage int
	Frames        int
	StartedAt     time.Time
	EndedAt       time.Time
}

// Duration returns how long the session lasted.
func (v Visit) Duration() time.Duration {
	return v.EndedAt.Sub(v.StartedAt)
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID     string
	Visits      int
	BestStage   int
	TotalFrames int64
	LastVisit   time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS visits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			username TEXT NOT NULL DEFAULT '',
			level_id TEXT NOT NULL,
			furthest_stage INTEGER NOT NULL DEFAULT 1,
			frames INTEGER NOT NULL DEFAULT 0,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_visits_level_id ON visits(level_id);
		CREATE INDEX IF NOT EXISTS idx_visits_top ON visits(level_id, furthest_stage DESC, frames DESC);
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

// SaveVisit records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveVisit(v Visit) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO visits
		 (session_id, username, level_id, furthest_stage, frames, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		v.SessionID,
		v.Username,
		v.LevelID,
		v.FurthestStage,
		v.Frames,
		v.StartedAt.UTC().Format(timeLayout),
		v.EndedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save visit: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopVisits retrieves the N visits that got furthest on a level.
// Ties are broken by frames played, then by the earlier visit.
func (s *Store) TopVisits(levelID string, limit int) ([]Visit, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryVisits(
		`SELECT id, session_id, username, level_id, furthest_stage, frames, started_at, ended_at
		 FROM visits
		 WHERE level_id = ?
		 ORDER BY furthest_stage DESC, frames DESC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
}

// RecentVisits retrieves the most recent visits across all levels.
func (s *Store) RecentVisits(limit int) ([]Visit, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryVisits(
		`SELECT id, session_id, username, level_id, furthest_stage, frames, started_at, ended_at
		 FROM visits
		 ORDER BY ended_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryVisits(query string, args ...any) ([]Visit, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var startedAt, endedAt string
		if err := rows.Scan(
			&v.ID,
			&v.SessionID,
			&v.Username,
			&v.LevelID,
			&v.FurthestStage,
			&v.Frames,
			&startedAt,
			&endedAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		v.StartedAt = parseTime(startedAt)
		v.EndedAt = parseTime(endedAt)
		visits = append(visits, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return visits, nil
}

// BestStage returns the furthest stage reached on a level.
// Returns 0 if the level has no visits.
func (s *Store) BestStage(levelID string) (int, error) {
	var stage sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(furthest_stage) FROM visits WHERE level_id = ?",
		levelID,
	).Scan(&stage)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best stage: %w", err)
	}

	if !stage.Valid {
		return 0, nil
	}

	return int(stage.Int64), nil
}

// VisitCount returns how many visits a level has.
func (s *Store) VisitCount(levelID string) (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM visits WHERE level_id = ?", levelID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count visits: %w", err)
	}
	return n, nil
}

// ClearVisits deletes all visits for the given level.
func (s *Store) ClearVisits(levelID string) error {
	_, err := s.db.Exec("DELETE FROM visits WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear visits: %w", err)
	}
	return nil
}

// AllLevelStats retrieves statistics for every level that has visits.
func (s *Store) AllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), MAX(furthest_stage), SUM(frames), MAX(ended_at)
		 FROM visits
		 GROUP BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var ls LevelStats
		var lastVisit string
		if err := rows.Scan(&ls.LevelID, &ls.Visits, &ls.BestStage, &ls.TotalFrames, &lastVisit); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastVisit = parseTime(lastVisit)
		stats[ls.LevelID] = &ls
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

func parseTime(v string) time.Time {
	t, err := time.Parse(timeLayout, v)
	if err != nil {
		return time.Time{}
	}
	return t
}
