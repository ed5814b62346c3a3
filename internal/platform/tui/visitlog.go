package tui

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/termfolio/internal/engine"
	"github.com/vovakirdan/termfolio/internal/storage"
)

// VisitLog tracks the play-through in progress and writes it to the
// ledger when it ends. The SSH middleware flushes it after the program
// exits, which happens on a different goroutine than the updates.
//
// A nil *VisitLog records nothing.
type VisitLog struct {
	mu       sync.Mutex
	store    *storage.Store
	logger   *log.Logger
	username string
	now      func() time.Time
	current  *storage.Visit
}

// NewVisitLog creates a log for one user. store and logger may be nil.
func NewVisitLog(store *storage.Store, logger *log.Logger, username string) *VisitLog {
	return &VisitLog{
		store:    store,
		logger:   logger,
		username: username,
		now:      time.Now,
	}
}

// Begin flushes any visit in progress and starts a new one on a level.
// It returns the new session id.
func (l *VisitLog) Begin(levelID string) string {
	if l == nil {
		return ""
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.flushLocked()
	l.current = &storage.Visit{
		SessionID:     uuid.NewString(),
		Username:      l.username,
		LevelID:       levelID,
		FurthestStage: 1,
		StartedAt:     l.now(),
	}
	return l.current.SessionID
}

// Update records driver totals for the visit in progress.
func (l *VisitLog) Update(st engine.Stats) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == nil {
		return
	}
	l.current.Frames = st.Frames
	l.current.FurthestStage = max(l.current.FurthestStage, st.FurthestStage)
}

// Current returns a copy of the visit in progress.
func (l *VisitLog) Current() (storage.Visit, bool) {
	if l == nil {
		return storage.Visit{}, false
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == nil {
		return storage.Visit{}, false
	}
	return *l.current, true
}

// Flush ends the visit in progress and saves it. Calling it twice saves
// once.
func (l *VisitLog) Flush() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flushLocked()
}

func (l *VisitLog) flushLocked() {
	if l.current == nil {
		return
	}
	v := *l.current
	l.current = nil
	v.EndedAt = l.now()

	if l.store == nil {
		return
	}
	if _, err := l.store.SaveVisit(v); err != nil && l.logger != nil {
		l.logger.Warn("cannot save visit", "session", v.SessionID, "error", err)
		return
	}
	if l.logger != nil {
		l.logger.Debug("visit saved", "session", v.SessionID, "level", v.LevelID,
			"stage", v.FurthestStage, "frames", v.Frames)
	}
}
