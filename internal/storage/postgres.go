package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS runs (
		id BIGSERIAL PRIMARY KEY,
		run_id TEXT NOT NULL UNIQUE,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		hits_taken INTEGER NOT NULL DEFAULT 0,
		medicine_collected INTEGER NOT NULL DEFAULT 0,
		seed BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
	CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);
`

// openPostgres opens a PostgreSQL connection pool for the given DSN.
func openPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open postgres database: %w", err)
	}
	return db, nil
}
