package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/minigame-arcade/internal/registry"
	"github.com/vovakirdan/minigame-arcade/internal/storage"
	"github.com/vovakirdan/minigame-arcade/internal/theme"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show game list sidebar
	sidebarWidth       = 24 // Width of game list sidebar
	maxScores          = 50 // Max scores to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev game"),
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

// ScoreSource reads ranked scores. *storage.Store satisfies it.
type ScoreSource interface {
	TopScores(gameID string, limit int, order storage.Order) ([]storage.ScoreEntry, error)
}

// ScoreboardModel is the scoreboard screen: one ranked table per game,
// ordered the way the game ranks its scores.
type ScoreboardModel struct {
	catalog   *registry.Catalog
	games     []registry.GameInfo
	cursor    int
	source    ScoreSource
	palette   theme.Palette
	styles    theme.Styles
	scores    []storage.ScoreEntry
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first game's table.
func NewScoreboardModel(catalog *registry.Catalog, source ScoreSource, p theme.Palette, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		catalog: catalog,
		games:   catalog.List(),
		source:  source,
		palette: p,
		styles:  p.Styles(),
		help:    help.New(),
		keys:    DefaultScoreboardKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

// Focus shows the table of the game registered under key.
func (m *ScoreboardModel) Focus(key string) {
	for i, g := range m.games {
		if g.Key == key {
			m.cursor = i
			m.reload()
			return
		}
	}
}

// Game returns the key of the game whose table is shown.
func (m ScoreboardModel) Game() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.cursor].Key
}

// Scores returns the loaded entries, best first.
func (m ScoreboardModel) Scores() []storage.ScoreEntry {
	return m.scores
}

// IsGoingBack reports whether the user left the scoreboard.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit the arcade.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

func (m ScoreboardModel) newTable() table.Model {
	dateWidth := 18
	if m.wide() {
		dateWidth = min(20, max(12, m.width-sidebarWidth-32))
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 5)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.palette.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(m.palette.Highlight).
		Background(m.palette.Border)
	t.SetStyles(s)
	return t
}

// reload fetches the current game's scores in the game's own order.
func (m *ScoreboardModel) reload() {
	m.scores, m.loadErr = nil, nil
	if m.source != nil && len(m.games) > 0 {
		gameID := m.games[m.cursor].Key
		order := storage.HigherIsBetter
		if def, ok := m.catalog.Lookup(gameID); ok && def.LowerIsBetter {
			order = storage.LowerIsBetter
		}
		m.scores, m.loadErr = m.source.TopScores(gameID, maxScores, order)
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) step(delta int) {
	if n := len(m.games); n > 0 {
		m.cursor = ((m.cursor+delta)%n + n) % n
		m.reload()
	}
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.NextGame):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title = "HIGH SCORES - " + m.games[m.cursor].Title
	}

	body := m.styles.Card.Padding(0, 1).Render(m.tableContent())
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", body)
	} else if len(m.games) > 0 {
		body = lipgloss.JoinVertical(lipgloss.Center,
			m.styles.MenuItemActive.Render("< "+m.games[m.cursor].Title+" >"), "", body)
	}

	view := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Title.Render(title),
		"",
		body,
		"",
		m.styles.Help.Render(m.help.View(m.keys)),
	)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, view)
	}
	return view
}

func (m ScoreboardModel) sidebar() string {
	var b strings.Builder
	b.WriteString(m.styles.Label.Render("Games"))
	b.WriteString("\n")
	for i, g := range m.games {
		name := g.Title
		if limit := sidebarWidth - 6; len(name) > limit {
			name = name[:limit-1] + "."
		}
		if i == m.cursor {
			b.WriteString(m.styles.MenuItemActive.Render("> " + name))
		} else {
			b.WriteString(m.styles.MenuItem.Render("  " + name))
		}
		b.WriteString("\n")
	}
	return m.styles.Card.Padding(0, 1).Width(sidebarWidth).Render(strings.TrimSuffix(b.String(), "\n"))
}

func (m ScoreboardModel) tableContent() string {
	switch {
	case m.loadErr != nil:
		return m.styles.Subtitle.Render("Scores are unavailable right now.")
	case len(m.scores) == 0:
		return m.styles.Subtitle.Padding(2, 4).Render("No scores recorded yet.\nPlay a game to set a high score!")
	default:
		return m.table.View()
	}
}
