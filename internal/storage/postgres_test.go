package storage

import (
	"os"
	"testing"

	"github.com/google/uuid"
)

// TestPostgresStore runs against a live server when SURVIVE_TEST_POSTGRES_DSN is set.
func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("SURVIVE_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("SURVIVE_TEST_POSTGRES_DSN not set")
	}

	store, err := Open(dsn)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if store.dialect != dialectPostgres {
		t.Fatalf("dialect = %v, expected postgres", store.dialect)
	}

	// Isolate from other data in the same database
	gameID := "survival-test-" + uuid.NewString()
	defer store.ClearRuns(gameID)

	for _, score := range []int{5, 15, 10} {
		if _, err := store.SaveRun(Run{GameID: gameID, Score: score, HitsTaken: 1}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(gameID, 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 15 || runs[1].Score != 10 {
		t.Errorf("TopRuns() = %v", runs)
	}

	high, err := store.HighScore(gameID)
	if err != nil || high != 15 {
		t.Errorf("HighScore() = %d, %v", high, err)
	}

	stats, err := store.GameStats(gameID)
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.TotalHits != 3 || stats.AvgScore != 10 {
		t.Errorf("GameStats() = %+v", stats)
	}
}
