// Package storage persists finished runs and their scores.
// SQLite (pure-Go modernc.org/sqlite) is the default backend; a
// postgres:// DSN selects PostgreSQL through lib/pq.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/grid-survival/internal/core"
)

// Store manages the database connection for run persistence.
type Store struct {
	db      *sql.DB
	dialect dialect
}

// Run is one persisted play-through.
type Run struct {
	ID                int64
	RunID             string
	GameID            string
	Score             int
	HitsTaken         int
	MedicineCollected int
	Seed              int64
	CreatedAt         time.Time
}

// RunFromReport builds a Run record from a game's report.
func RunFromReport(gameID string, score int, rep core.RunReport) Run {
	return Run{
		RunID:             rep.RunID,
		GameID:            gameID,
		Score:             score,
		HitsTaken:         rep.HitsTaken,
		MedicineCollected: rep.MedicineCollected,
		Seed:              rep.Seed,
	}
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID        string
	GamesCount    int
	HighScore     int
	AvgScore      float64
	TotalScore    int64
	TotalHits     int64
	TotalMedicine int64
	LastPlayed    time.Time
}

type dialect int

const (
	dialectSQLite dialect = iota
	dialectPostgres
)

func (d dialect) String() string {
	if d == dialectPostgres {
		return "postgres"
	}
	return "sqlite"
}

// detectDialect picks the backend from the DSN scheme.
func detectDialect(dsn string) dialect {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return dialectPostgres
	}
	return dialectSQLite
}

// rebind rewrites ? placeholders into $1, $2, ... for PostgreSQL.
func (d dialect) rebind(query string) string {
	if d != dialectPostgres {
		return query
	}

	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteByte(query[i])
	}
	return sb.String()
}

// Open connects to the database named by dsn and runs migrations.
// A postgres:// or postgresql:// DSN opens PostgreSQL; anything else is a
// SQLite file path.
func Open(dsn string) (*Store, error) {
	d := detectDialect(dsn)

	var (
		db  *sql.DB
		err error
	)
	switch d {
	case dialectPostgres:
		db, err = openPostgres(dsn)
	default:
		db, err = openSQLite(dsn)
	}
	if err != nil {
		return nil, err
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to %s database: %w", d, err)
	}

	store := &Store{db: db, dialect: d}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := sqliteSchema
	if s.dialect == dialectPostgres {
		schema = postgresSchema
	}
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

// SaveRun records a finished run. An empty RunID is filled with a new UUID.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}

	var id int64
	err := s.db.QueryRow(
		s.dialect.rebind(`INSERT INTO runs
		 (run_id, game_id, score, hits_taken, medicine_collected, seed)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING id`),
		run.RunID, run.GameID, run.Score, run.HitsTaken, run.MedicineCollected, run.Seed,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	return id, nil
}

// SaveScore records a bare score for the given game.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	return s.SaveRun(Run{GameID: gameID, Score: score})
}

// TopRuns retrieves the top N runs for the given game.
// Results are ordered by score descending, oldest first among ties.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		s.dialect.rebind(`SELECT id, run_id, game_id, score, hits_taken, medicine_collected, seed, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`),
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.GameID, &r.Score,
			&r.HitsTaken, &r.MedicineCollected, &r.Seed, &createdAt); err != nil {
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

// RunByID looks up a run by its UUID. Returns nil if it does not exist.
func (s *Store) RunByID(runID string) (*Run, error) {
	var r Run
	var createdAt any
	err := s.db.QueryRow(
		s.dialect.rebind(`SELECT id, run_id, game_id, score, hits_taken, medicine_collected, seed, created_at
		 FROM runs WHERE run_id = ?`),
		runID,
	).Scan(&r.ID, &r.RunID, &r.GameID, &r.Score, &r.HitsTaken, &r.MedicineCollected, &r.Seed, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no runs exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		s.dialect.rebind("SELECT MAX(score) FROM runs WHERE game_id = ?"),
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// GameStats retrieves aggregated statistics for a specific game.
func (s *Store) GameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		s.dialect.rebind(`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), COALESCE(SUM(hits_taken), 0),
		        COALESCE(SUM(medicine_collected), 0), MAX(created_at)
		 FROM runs WHERE game_id = ?`),
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore,
		&stats.TotalScore, &stats.TotalHits, &stats.TotalMedicine, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearRuns deletes all runs for the given game.
func (s *Store) ClearRuns(gameID string) error {
	_, err := s.db.Exec(s.dialect.rebind("DELETE FROM runs WHERE game_id = ?"), gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles the timestamp shapes the drivers return.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case []byte:
		return parseTime(string(t))
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
