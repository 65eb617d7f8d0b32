package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/grid-survival/internal/games/survival"
	"github.com/vovakirdan/grid-survival/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestResolveGame(t *testing.T) {
	info, err := resolveGame(survival.GameID)
	if err != nil {
		t.Fatalf("resolveGame() failed: %v", err)
	}
	if info.Title != "Grid Survival" {
		t.Errorf("Title = %q, expected Grid Survival", info.Title)
	}

	_, err = resolveGame("tetris")
	if err == nil {
		t.Fatal("expected error for unknown game")
	}
	if !strings.Contains(err.Error(), survival.GameID) {
		t.Errorf("error should list available games, got %q", err)
	}
}

func TestPrintRun(t *testing.T) {
	store := openTestStore(t)
	run := storage.Run{
		RunID:             "run-42",
		GameID:            survival.GameID,
		Score:             57,
		HitsTaken:         3,
		MedicineCollected: 2,
		Seed:              424242,
	}
	if _, err := store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	var out bytes.Buffer
	if err := printRun(&out, store, "run-42"); err != nil {
		t.Fatalf("printRun() failed: %v", err)
	}

	for _, want := range []string{"run-42", "Turns:    57", "Hits:     3", "Medicine: 2", "Seed:     424242", "--seed 424242"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestPrintRunNotFound(t *testing.T) {
	store := openTestStore(t)

	var out bytes.Buffer
	err := printRun(&out, store, "missing")
	if !errors.Is(err, errRunNotFound) {
		t.Errorf("printRun() error = %v, expected errRunNotFound", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)
	info, err := resolveGame(survival.GameID)
	if err != nil {
		t.Fatalf("resolveGame() failed: %v", err)
	}

	for _, score := range []int{10, 20} {
		if _, err := store.SaveScore(survival.GameID, score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 5); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	var out bytes.Buffer
	if err := clearRuns(&out, store, info); err != nil {
		t.Fatalf("clearRuns() failed: %v", err)
	}
	if !strings.Contains(out.String(), "Grid Survival") {
		t.Errorf("output = %q", out.String())
	}

	runs, err := store.TopRuns(survival.GameID, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs after clear, got %d", len(runs))
	}

	others, err := store.TopRuns("other", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(others) != 1 {
		t.Errorf("clear should keep other games' runs, got %d", len(others))
	}
}

func TestPrintTopRuns(t *testing.T) {
	store := openTestStore(t)
	info, err := resolveGame(survival.GameID)
	if err != nil {
		t.Fatalf("resolveGame() failed: %v", err)
	}

	var empty bytes.Buffer
	if err := printTopRuns(&empty, store, info, 10); err != nil {
		t.Fatalf("printTopRuns() failed: %v", err)
	}
	if !strings.Contains(empty.String(), "No scores recorded yet.") {
		t.Errorf("empty output = %q", empty.String())
	}

	if _, err := store.SaveRun(storage.Run{RunID: "best", GameID: survival.GameID, Score: 99}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	var out bytes.Buffer
	if err := printTopRuns(&out, store, info, 10); err != nil {
		t.Fatalf("printTopRuns() failed: %v", err)
	}
	if !strings.Contains(out.String(), "best") || !strings.Contains(out.String(), "Best: 99") {
		t.Errorf("output missing run:\n%s", out.String())
	}
}
