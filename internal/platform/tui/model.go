package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termfolio/internal/canvas"
	"github.com/vovakirdan/termfolio/internal/config"
	"github.com/vovakirdan/termfolio/internal/core"
	"github.com/vovakirdan/termfolio/internal/engine"
	"github.com/vovakirdan/termfolio/internal/levels"
	"github.com/vovakirdan/termfolio/internal/metrics"
	"github.com/vovakirdan/termfolio/internal/registry"
)

// Options configure a play model.
type Options struct {
	Level   registry.Level
	Config  config.Config
	Runtime core.RuntimeConfig

	// WatchPath, when set, is a level file reloaded on every save.
	WatchPath string
	// Menu enables esc to leave the stage for the level menu.
	Menu bool

	Visits  *VisitLog
	Metrics *metrics.Metrics
	Logger  *log.Logger
}

// levelRef lets driver hooks follow hot reloads.
type levelRef struct {
	registry.Level
}

// Model is the Bubble Tea model that runs one engine driver.
//
// The last row of the terminal holds the key help; everything above it is
// the stage.
type Model struct {
	opts    Options
	level   *levelRef
	keys    KeyMap
	help    help.Model
	screen  *core.Screen
	canvas  *canvas.Canvas
	hud     *hud
	sched   *frameScheduler
	holds   *keyHold
	driver  *engine.Driver
	watcher *levels.Watcher
	logger  *log.Logger

	quitting   bool
	backToMenu bool
}

// NewModel creates the model and starts its driver.
func NewModel(opts Options) (Model, error) {
	if opts.Level == nil {
		return Model{}, errors.New("tui: no level")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Config

	screen := core.NewScreen(opts.Runtime.ScreenW, playHeight(opts.Runtime.ScreenH))
	cv := canvas.New(screen, cfg.Display.CellWidth, cfg.Display.CellHeight)
	h := newHUD(cv)
	sched := newFrameScheduler(opts.Runtime.TickRate)
	holds := newKeyHold(cfg.Input.InitialHoldFrames, cfg.Input.RepeatHoldFrames)
	lvl := &levelRef{Level: opts.Level}

	keys := DefaultKeyMap()
	keys.Back.SetEnabled(opts.Menu)
	hm := help.New()
	hm.Width = opts.Runtime.ScreenW

	var d *engine.Driver
	d = engine.NewDriver(engine.Options{
		Params:          cfg.EngineParams(),
		Layout:          opts.Level,
		Title:           opts.Level.Title(),
		Touch:           opts.Runtime.Touch,
		TouchBreakpoint: cfg.World.TouchBreakpoint,
		Hooks: engine.Hooks{
			BeforeFrame: func() {
				holds.Tick(d.Input().Release)
			},
			AfterFrame: func(*engine.Session) {
				opts.Metrics.Frame(lvl.ID())
				opts.Visits.Update(d.Stats())
			},
			OnReset: func(*engine.Session) {
				holds.Reset()
				h.pressed = core.ActionNone
				opts.Metrics.Reset()
			},
			OnStageComplete: func(stage int) {
				opts.Metrics.StageComplete(lvl.ID())
				logger.Debug("stage complete", "level", lvl.ID(), "stage", stage)
			},
		},
	}, sched, h, h)
	h.touch = d.Touch

	if err := d.Start(); err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	m := Model{
		opts:   opts,
		level:  lvl,
		keys:   keys,
		help:   hm,
		screen: screen,
		canvas: cv,
		hud:    h,
		sched:  sched,
		holds:  holds,
		driver: d,
		logger: logger,
	}

	if opts.WatchPath != "" {
		w, err := levels.Watch(opts.WatchPath)
		if err != nil {
			logger.Warn("level file will not be reloaded", "path", opts.WatchPath, "error", err)
		} else {
			m.watcher = w
			logger.Info("watching level file", "path", w.Path())
		}
	}

	opts.Visits.Begin(lvl.ID())
	return m, nil
}

// playHeight leaves the bottom row for the help line.
func playHeight(termH int) int {
	return max(termH-1, 0)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.sched.Cmd(), m.waitForLevelChange())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.sched.Fire(msg.ID)
		return m, m.sched.Cmd()

	case levelChangedMsg:
		return m.handleLevelChange(msg)

	case levelWatchErrMsg:
		m.logger.Warn("level watch", "error", msg.err)
		return m, m.waitForLevelChange()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case action == core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	case action == core.ActionBack:
		m.backToMenu = true
		m.Close()
		return m, nil
	}

	in := m.driver.Input()
	if opp, ok := opposite(action); ok {
		m.holds.Drop(opp)
		in.Release(opp)
	}
	m.holds.Press(action)
	in.Press(action)
	return m, m.sched.Cmd()
}

// handleMouse is the pointer source: touch buttons when they are shown,
// and a tap anywhere to dismiss the intro.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.driver.Touch() {
			if a, ok := hitTouchButton(m.hud.buttons, msg.X, msg.Y); ok {
				m.hud.pressed = a
				m.driver.Input().Press(a)
				return m, nil
			}
		}
		if s := m.driver.Session(); s != nil && s.Phase() == engine.PhaseNotStarted {
			m.driver.StartSignal()
		}

	case tea.MouseActionRelease:
		if m.hud.pressed != core.ActionNone {
			m.driver.Input().Release(m.hud.pressed)
			m.hud.pressed = core.ActionNone
		}
	}
	return m, nil
}

// handleResize starts a fresh session at the new size. A size message that
// matches the current screen (Bubble Tea sends one at startup) is ignored.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	h := playHeight(msg.Height)
	if msg.Width == m.screen.Width() && h == m.screen.Height() {
		return m, nil
	}
	m.screen.Resize(msg.Width, h)
	m.hud.layout()
	m.driver.Resize()
	m.logger.Debug("resized", "width", msg.Width, "height", h)
	return m, m.sched.Cmd()
}

func (m Model) handleLevelChange(msg levelChangedMsg) (tea.Model, tea.Cmd) {
	l, err := levels.LoadFile(msg.path, m.opts.Config.World.LoopWidth)
	if err != nil {
		m.logger.Warn("level reload failed", "path", msg.path, "error", err)
		return m, m.waitForLevelChange()
	}
	m.level.Level = l
	m.driver.SetLayout(l, l.Title())
	m.logger.Info("level reloaded", "path", msg.path, "level", l.ID())
	return m, tea.Batch(m.sched.Cmd(), m.waitForLevelChange())
}

// saveScreenshot writes the last frame as plain text.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(config.Dir(), "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.level.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, play continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
	m.logger.Info("screenshot saved", "path", path)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderStage(m.screen) + "\n" + m.help.View(m.keys)
}

// Close stops the driver and the level watcher. It is safe to call more
// than once.
func (m Model) Close() {
	m.driver.Stop()
	if m.watcher != nil {
		//nolint:errcheck // Nothing to do about a failed close on exit
		m.watcher.Close()
	}
}

// Driver returns the engine driver.
func (m Model) Driver() *engine.Driver { return m.driver }

// Screen returns the stage buffer.
func (m Model) Screen() *core.Screen { return m.screen }

// Level returns the level being played.
func (m Model) Level() registry.Level { return m.level.Level }

// BackToMenu reports whether the player asked for the level menu.
func (m Model) BackToMenu() bool { return m.backToMenu }

// IsQuitting reports whether the player quit.
func (m Model) IsQuitting() bool { return m.quitting }

// Run plays a level in the local terminal and records the visit when the
// program exits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // touch buttons and tap-to-start
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.Close()
	}
	opts.Visits.Flush()
	return err
}
