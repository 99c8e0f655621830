package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/geomerge/internal/storage"
)

// Wins view layout constants
const (
	winsTableMinHeight = 4
	winsHeaderRows     = 5 // Title, blank line, table chrome
)

// WinsKeyMap defines the key bindings for the win history view.
type WinsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k WinsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k WinsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back},
	}
}

// DefaultWinsKeyMap returns default key bindings.
func DefaultWinsKeyMap() WinsKeyMap {
	return WinsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "t"),
			key.WithHelp("esc/b", "back"),
		),
	}
}

// WinsModel is the Bubble Tea sub-model for the win history table.
// It is embedded in GameModel and signals completion through Update's
// second return value rather than quitting the program.
type WinsModel struct {
	entries []storage.WinEntry
	table   table.Model
	help    help.Model
	keys    WinsKeyMap
	width   int
	height  int
}

// NewWinsModel creates the win history view over the given entries.
func NewWinsModel(entries []storage.WinEntry, width, height int) WinsModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := WinsModel{
		entries: entries,
		keys:    DefaultWinsKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.fillRows()
	return m
}

// createTable creates the table with appropriate columns.
func (m *WinsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Kind", Width: 8},
		{Title: "Value", Width: 7},
		{Title: "Player", Width: 12},
		{Title: "Date", Width: 18},
	}

	height := m.height - winsHeaderRows
	if height < winsTableMinHeight {
		height = winsTableMinHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// fillRows populates the table from the loaded entries.
func (m *WinsModel) fillRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		player := e.Player
		if player == "" {
			player = "local"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			e.Kind,
			fmt.Sprintf("%d", e.Value),
			player,
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Update handles a key press. The second return value is true when the
// user dismissed the view.
func (m WinsModel) Update(msg tea.KeyMsg) (WinsModel, bool) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, true
	default:
		m.table, _ = m.table.Update(msg)
		return m, false
	}
}

// View renders the win history.
func (m WinsModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("WIN HISTORY"))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(emptyStyle.Render("No wins recorded yet.\nCraft your way up to the goal!"))
	} else {
		b.WriteString(m.table.View())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}
