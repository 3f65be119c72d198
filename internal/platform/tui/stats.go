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

	"github.com/vovakirdan/snake-ultra/internal/assistant"
	"github.com/vovakirdan/snake-ultra/internal/storage"
)

// StatsKeyMap defines the key bindings for the stats screen.
type StatsKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Clear key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Clear, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Clear},
		{k.Back, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear stats"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for the stats screen.
type StatsModel struct {
	store     *storage.Store   // nil shows session counters only
	tracked   *assistant.Stats // Current session, may be nil
	rows      []table.Row
	loadErr   error
	table     table.Model
	help      help.Model
	keys      StatsKeyMap
	width     int
	height    int
	embedded  bool // Back returns to the game instead of quitting
	quitting  bool
	goingBack bool
}

// NewStatsModel creates a stats screen.
func NewStatsModel(store *storage.Store, tracked *assistant.Stats, width, height int) StatsModel {
	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		store:   store,
		tracked: tracked,
		keys:    DefaultStatsKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Stat", Width: 16},
		{Title: "Value", Width: 22},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(len(m.rows)+1, 8)),
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

// load reads the stored counters and refreshes the rows.
func (m *StatsModel) load() {
	var stored *storage.Stats
	m.loadErr = nil
	if m.store != nil {
		stored, m.loadErr = m.store.GetStats()
	}
	m.rows = StatsRows(stored, m.tracked)
	m.table.SetRows(m.rows)
	m.table.GotoTop()
}

// StatsRows lays out stored and session statistics as table rows.
// Either argument may be nil.
func StatsRows(stored *storage.Stats, tracked *assistant.Stats) []table.Row {
	var rows []table.Row
	switch {
	case stored != nil:
		last := "never"
		if !stored.LastPlayed.IsZero() {
			last = stored.LastPlayed.Local().Format("Jan 02 15:04")
		}
		rows = append(rows,
			table.Row{"Games played", fmt.Sprintf("%d", stored.GamesPlayed)},
			table.Row{"Total score", fmt.Sprintf("%d", stored.TotalScore)},
			table.Row{"Average score", fmt.Sprintf("%.0f", stored.AvgScore)},
			table.Row{"High score", fmt.Sprintf("%d", stored.HighScore)},
			table.Row{"Last played", last},
		)
	case tracked != nil:
		rows = append(rows,
			table.Row{"Games played", fmt.Sprintf("%d", tracked.GamesPlayed)},
			table.Row{"Total score", fmt.Sprintf("%d", tracked.TotalScore)},
			table.Row{"Average score", fmt.Sprintf("%d", tracked.AverageScore)},
		)
	}
	if tracked != nil {
		rows = append(rows, table.Row{"Session time", tracked.SessionTime.Round(time.Second).String()})
	}
	return rows
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Clear):
			if m.store != nil {
				m.loadErr = m.store.ClearStats()
				if m.loadErr == nil {
					m.load()
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting || (m.goingBack && !m.embedded) {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("SNAKE STATS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")

	if m.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString(errStyle.Render(m.loadErr.Error()))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m StatsModel) renderTableContent() string {
	if len(m.rows) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No games recorded yet.\nPlay a game to start counting!")
	}
	return m.table.View()
}

// IsGoingBack returns true if the user left the screen.
func (m StatsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}

// RunStats runs the stats screen on its own.
func RunStats(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewStatsModel(store, nil, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
