package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/mazerunner/internal/config"
	"github.com/vovakirdan/mazerunner/internal/storage"
)

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var empty bytes.Buffer
	if err := printScores(&empty, store, 11, 11); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if !strings.Contains(empty.String(), "No runs recorded yet.") {
		t.Errorf("empty board missing notice:\n%s", empty.String())
	}

	store.SaveRun(storage.Run{Player: "ann", Width: 11, Height: 11, Elapsed: 12300 * time.Millisecond, Moves: 44})
	store.SaveRun(storage.Run{Player: "ben", Width: 11, Height: 11, Elapsed: 9 * time.Second, Moves: 40})

	var out bytes.Buffer
	if err := printScores(&out, store, 11, 11); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	text := out.String()
	if strings.Index(text, "ben") > strings.Index(text, "ann") {
		t.Errorf("faster run should be listed first:\n%s", text)
	}
	if !strings.Contains(text, "12.3s") || !strings.Contains(text, "Runs: 2") {
		t.Errorf("unexpected board:\n%s", text)
	}
}

func TestPrintPlayerRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(storage.Run{Player: "ann", Width: 5, Height: 5, Elapsed: 4 * time.Second, Moves: 12})
	store.SaveRun(storage.Run{Player: "ann", Width: 21, Height: 15, Elapsed: 61 * time.Second, Moves: 210})
	store.SaveRun(storage.Run{Player: "ben", Width: 5, Height: 5, Elapsed: 3 * time.Second, Moves: 10})

	var out bytes.Buffer
	if err := printPlayerRuns(&out, store, "ann"); err != nil {
		t.Fatalf("printPlayerRuns() failed: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "5x5") || !strings.Contains(text, "21x15") {
		t.Errorf("missing ann's runs:\n%s", text)
	}
	if strings.Contains(text, "3.0s") {
		t.Errorf("listed another player's run:\n%s", text)
	}

	var none bytes.Buffer
	if err := printPlayerRuns(&none, store, "cy"); err != nil {
		t.Fatalf("printPlayerRuns() failed: %v", err)
	}
	if !strings.Contains(none.String(), "No runs recorded yet.") {
		t.Errorf("unknown player should get the empty notice:\n%s", none.String())
	}
}

func TestPrintRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	const id = "6f1c2a9e-0d4b-4c7e-9a51-3f0e8b2d7c11"
	if _, err := store.SaveRun(storage.Run{RunID: id, Player: "ann", Seed: 77, Width: 7, Height: 9, Elapsed: 8 * time.Second, Moves: 30}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	var out bytes.Buffer
	if err := printRun(&out, store, id); err != nil {
		t.Fatalf("printRun() failed: %v", err)
	}
	if !strings.Contains(out.String(), "--width 7 --height 9 --seed 77") {
		t.Errorf("missing replay hint:\n%s", out.String())
	}

	if err := printRun(&out, store, "not-a-uuid"); err == nil {
		t.Error("malformed id should fail")
	}
	if err := printRun(&out, store, "00000000-0000-4000-8000-000000000000"); err == nil {
		t.Error("unknown id should fail")
	}
}

func TestClearScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(storage.Run{Width: 5, Height: 5, Elapsed: time.Second})
	store.SaveRun(storage.Run{Width: 11, Height: 11, Elapsed: time.Second})

	var out bytes.Buffer
	if err := clearScores(&out, store, 5, 5); err != nil {
		t.Fatalf("clearScores() failed: %v", err)
	}
	if runs, _ := store.BestRuns(5, 5, 10); len(runs) != 0 {
		t.Errorf("Expected 5x5 runs cleared, got %d", len(runs))
	}
	if runs, _ := store.BestRuns(11, 11, 10); len(runs) != 1 {
		t.Errorf("Expected 11x11 run kept, got %d", len(runs))
	}
}

func TestSettingsFrom(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Width, cfg.Grid.Height = 21, 15
	cfg.Motion.Step = 7

	s := settingsFrom(cfg)
	if s.Width != 21 || s.Height != 15 {
		t.Errorf("size = %dx%d, want 21x15", s.Width, s.Height)
	}
	if s.Geometry.Step != 7 || s.Geometry.CellSize != 48 || s.Geometry.Border != 8 {
		t.Errorf("geometry = %+v", s.Geometry)
	}
}
