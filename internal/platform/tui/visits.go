package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termfolio/internal/registry"
	"github.com/vovakirdan/termfolio/internal/storage"
)

// Visits screen layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show level list sidebar
	sidebarWidth       = 20  // Width of level list sidebar
	maxVisits          = 100 // Max visits to load
)

// VisitsKeyMap defines the key bindings for the visits screen.
type VisitsKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k VisitsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k VisitsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Quit},
	}
}

// DefaultVisitsKeyMap returns default key bindings.
func DefaultVisitsKeyMap() VisitsKeyMap {
	return VisitsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev level"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// VisitsModel is the Bubble Tea model for browsing the visit ledger.
type VisitsModel struct {
	levels      []registry.LevelInfo
	cursor      int
	store       *storage.Store
	visits      []storage.Visit
	table       table.Model
	help        help.Model
	keys        VisitsKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewVisitsModel creates the visits screen, opened on levelID when it is
// registered.
func NewVisitsModel(store *storage.Store, levelID string, width, height int) VisitsModel {
	h := help.New()
	h.ShowAll = false

	m := VisitsModel{
		levels:      registry.List(),
		store:       store,
		keys:        DefaultVisitsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, l := range m.levels {
		if l.ID == levelID {
			m.cursor = i
		}
	}

	m.table = newVisitsTable(m.tableWidth(), m.height-8)
	if len(m.levels) > 0 {
		m.loadVisits(m.levels[m.cursor].ID)
	}
	return m
}

func (m VisitsModel) tableWidth() int {
	w := m.width - 4
	if m.showSidebar {
		w -= sidebarWidth + 3
	}
	return w
}

// newVisitsTable creates a table sized to fit width, with height rows.
func newVisitsTable(width, height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Visitor", Width: 12},
		{Title: "Stage", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 12},
	}
	if width > 60 {
		columns[1].Width = min(width-37, 24)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// visitRows formats ledger entries as table rows, best first.
func visitRows(visits []storage.Visit) []table.Row {
	rows := make([]table.Row, len(visits))
	for i, v := range visits {
		who := v.Username
		if who == "" {
			who = "local"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			who,
			fmt.Sprintf("%d", v.FurthestStage),
			formatDuration(v.Duration()),
			v.EndedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return rows
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Hour {
		return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
}

// loadVisits loads the best visits for the given level.
func (m *VisitsModel) loadVisits(levelID string) {
	m.visits = nil
	if m.store != nil {
		if visits, err := m.store.TopVisits(levelID, maxVisits); err == nil {
			m.visits = visits
		}
	}
	m.table.SetRows(visitRows(m.visits))
	m.table.GotoTop()
}

// Init initializes the visits model.
func (m VisitsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the visits screen.
func (m VisitsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor + 1) % len(m.levels)
				m.loadVisits(m.levels[m.cursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor - 1 + len(m.levels)) % len(m.levels)
				m.loadVisits(m.levels[m.cursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = newVisitsTable(m.tableWidth(), m.height-8)
		m.table.SetRows(visitRows(m.visits))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the visits screen.
func (m VisitsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "VISITS"
	if len(m.levels) > 0 {
		title = fmt.Sprintf("VISITS - %s", m.levels[m.cursor].Name)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(centerText(m.renderTable(), m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the table with a level list sidebar.
func (m VisitsModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Levels\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, l := range m.levels {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := l.Name
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", m.renderTable())
}

// renderTable renders the bordered table or an empty message.
func (m VisitsModel) renderTable() string {
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.visits) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return tableStyle.Render(emptyStyle.Render("No visits recorded yet."))
	}
	return tableStyle.Render(m.table.View())
}

// RenderVisitsTable renders a static table of visits, for output that is
// not a terminal.
func RenderVisitsTable(visits []storage.Visit, width int) string {
	t := newVisitsTable(width, len(visits)+1)
	t.SetRows(visitRows(visits))
	t.Blur()
	return t.View()
}

// RunVisits runs the visits screen.
func RunVisits(store *storage.Store, levelID string, width, height int) error {
	p := tea.NewProgram(
		NewVisitsModel(store, levelID, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
