package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termfolio/internal/registry"
	"github.com/vovakirdan/termfolio/internal/storage"
)

// SessionModel manages the full visitor flow: menu -> stage -> menu.
// This is the top-level model for SSH sessions and `termfolio menu`.
type SessionModel struct {
	opts     Options
	store    *storage.Store
	menu     MenuModel
	game     *Model
	err      error
	quitting bool
}

// NewSessionModel creates a session that starts at the level menu. opts is
// the template for every stage played; its Level is ignored.
func NewSessionModel(store *storage.Store, opts Options) SessionModel {
	opts.Menu = true
	opts.Level = nil
	return SessionModel{
		opts:  opts,
		store: store,
		menu:  NewMenuModel(store, opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates while the menu is shown.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	level, err := registry.Create(selected.LevelID)
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	opts := m.opts
	opts.Level = level
	game, err := NewModel(opts)
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	m.game = &game
	return m, m.game.Init()
}

// updateGame handles updates while a stage is played.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		m.opts.Visits.Flush()
		m.game = nil
		m.menu = NewMenuModel(m.store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		return m, m.menu.Init()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}

// Close stops the stage in progress, if any.
func (m SessionModel) Close() {
	if m.game != nil {
		m.game.Close()
	}
}

// InGame reports whether a stage is being played.
func (m SessionModel) InGame() bool { return m.game != nil }

// Err returns the error that ended the session, if any.
func (m SessionModel) Err() error { return m.err }

// RunSession runs the menu flow in the local terminal.
func RunSession(store *storage.Store, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(store, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if sm, ok := final.(SessionModel); ok {
		sm.Close()
		if err == nil {
			err = sm.Err()
		}
	}
	opts.Visits.Flush()
	return err
}
