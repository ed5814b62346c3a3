package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/termfolio/internal/engine"
	"github.com/vovakirdan/termfolio/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "visits.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestVisitLogFlushSavesOnce(t *testing.T) {
	store := openTestStore(t)
	l := NewVisitLog(store, nil, "guest")

	id := l.Begin("portfolio")
	if id == "" {
		t.Fatal("Begin() returned no session id")
	}
	l.Update(engine.Stats{Frames: 120, FurthestStage: 3})
	l.Update(engine.Stats{Frames: 180, FurthestStage: 2})
	l.Flush()
	l.Flush()

	visits, err := store.TopVisits("portfolio", 10)
	if err != nil {
		t.Fatalf("TopVisits() failed: %v", err)
	}
	if len(visits) != 1 {
		t.Fatalf("saved %d visits, want 1", len(visits))
	}
	v := visits[0]
	if v.SessionID != id || v.Username != "guest" {
		t.Errorf("visit = %+v", v)
	}
	if v.Frames != 180 || v.FurthestStage != 3 {
		t.Errorf("frames/stage = %d/%d, want 180/3", v.Frames, v.FurthestStage)
	}
	if v.EndedAt.Before(v.StartedAt) {
		t.Errorf("ended %v before started %v", v.EndedAt, v.StartedAt)
	}
}

func TestVisitLogBeginFlushesPrevious(t *testing.T) {
	store := openTestStore(t)
	l := NewVisitLog(store, nil, "guest")

	first := l.Begin("portfolio")
	second := l.Begin("playground")
	if first == second {
		t.Fatal("Begin() reused a session id")
	}
	if n, _ := store.VisitCount("portfolio"); n != 1 {
		t.Errorf("portfolio visits = %d, want 1", n)
	}
	if cur, ok := l.Current(); !ok || cur.LevelID != "playground" {
		t.Errorf("Current() = %+v, %v", cur, ok)
	}
}

func TestVisitLogWithoutStore(t *testing.T) {
	l := NewVisitLog(nil, nil, "")
	l.Begin("portfolio")
	l.Update(engine.Stats{Frames: 1})
	l.Flush()
	if _, ok := l.Current(); ok {
		t.Error("Flush() kept the visit")
	}

	var nilLog *VisitLog
	nilLog.Begin("portfolio")
	nilLog.Update(engine.Stats{})
	nilLog.Flush()
	if _, ok := nilLog.Current(); ok {
		t.Error("nil log reported a visit")
	}
}

func TestModelRecordsVisit(t *testing.T) {
	store := openTestStore(t)
	l := NewVisitLog(store, nil, "guest")
	m := newTestModel(t, Options{Visits: l})

	m, _ = send(t, m, keyRight)
	step(t, m, 30)
	l.Flush()

	visits, err := store.TopVisits("portfolio", 1)
	if err != nil || len(visits) != 1 {
		t.Fatalf("TopVisits() = %v, %v", visits, err)
	}
	if visits[0].Frames != 30 {
		t.Errorf("frames = %d, want 30", visits[0].Frames)
	}
}

func TestVisitRows(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	rows := visitRows([]storage.Visit{
		{Username: "ada", FurthestStage: 4, StartedAt: start, EndedAt: start.Add(95 * time.Second)},
		{FurthestStage: 1, StartedAt: start, EndedAt: start.Add(2*time.Hour + 5*time.Minute)},
	})

	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	tests := []struct {
		row  int
		col  int
		want string
	}{
		{0, 0, "#1"},
		{0, 1, "ada"},
		{0, 2, "4"},
		{0, 3, "1:35"},
		{1, 1, "local"},
		{1, 3, "2h05m"},
	}
	for _, tt := range tests {
		if got := rows[tt.row][tt.col]; got != tt.want {
			t.Errorf("rows[%d][%d] = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestRenderVisitsTable(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	out := RenderVisitsTable([]storage.Visit{
		{Username: "ada", FurthestStage: 4, StartedAt: start, EndedAt: start.Add(time.Minute)},
	}, 80)

	for _, want := range []string{"Visitor", "Stage", "ada"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
