package engine

// Phase is the presentation state of a session.
type Phase int

const (
	// PhaseNotStarted shows the intro screen. Initial state of every session.
	PhaseNotStarted Phase = iota
	// PhasePlaying is terminal for a session; only a reset leaves it.
	PhasePlaying
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhasePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// TriggerPanel describes the info panel to show next to a trigger, in
// screen coordinates. X is the panel's left edge, Y its bottom edge.
type TriggerPanel struct {
	X, Y    float64
	ID      string
	Label   string
	Color   string
	Title   string
	Content []string
}

// Overlay is the UI state derived from a frame. It has no lifecycle of its
// own and is recomputed after every tick.
type Overlay struct {
	Phase         Phase
	Panel         *TriggerPanel
	StageComplete bool
	Stage         int
}

// Project derives the overlay from a phase and a resolution. Nothing is
// shown while the intro screen is up.
func Project(phase Phase, res Resolution, cam Camera) Overlay {
	ov := Overlay{Phase: phase}
	if phase != PhasePlaying {
		return ov
	}
	if res.Near != nil {
		t := res.Near.Trigger
		ov.Panel = &TriggerPanel{
			X:       cam.ToScreen(res.Near.WorldX),
			Y:       t.Y - 10,
			ID:      t.ID,
			Label:   t.Label,
			Color:   t.Color,
			Title:   t.Title,
			Content: t.Content,
		}
	}
	ov.StageComplete = res.StageComplete
	ov.Stage = res.Stage
	return ov
}
