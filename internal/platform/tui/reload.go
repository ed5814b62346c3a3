package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// levelChangedMsg reports that the watched level file was saved.
type levelChangedMsg struct {
	path string
}

type levelWatchErrMsg struct {
	err error
}

// waitForLevelChange returns a command that waits for the next watcher
// event. Nil when no file is watched.
func (m Model) waitForLevelChange() tea.Cmd {
	w := m.watcher
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return levelChangedMsg{path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return levelWatchErrMsg{err: err}
		}
	}
}
