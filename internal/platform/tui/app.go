package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/registry"
	"github.com/vovakirdan/minigame-arcade/internal/sched"
	"github.com/vovakirdan/minigame-arcade/internal/session"
	"github.com/vovakirdan/minigame-arcade/internal/theme"
)

// AppModel is the Bubble Tea model of one arcade session: the game picker,
// the active game's view and the scoreboard. Game state lives in the
// session manager; the model only tracks cursor, focus and theme.
type AppModel struct {
	manager  *session.Manager
	loop     *sched.Loop
	prefs    theme.PreferenceStore
	scores   ScoreSource
	logger   *log.Logger
	palette  theme.Palette
	games    []registry.GameInfo
	menuKeys MenuKeyMap
	gameKeys GameKeyMap
	help     help.Model
	board    *ScoreboardModel
	cursor   int
	focus    int
	width    int
	height   int
	quitting bool
}

// AppOption configures an AppModel.
type AppOption func(*AppModel)

// WithPreferences loads and persists the theme through store.
func WithPreferences(store theme.PreferenceStore) AppOption {
	return func(m *AppModel) { m.prefs = store }
}

// WithScoreSource enables the scoreboard.
func WithScoreSource(src ScoreSource) AppOption {
	return func(m *AppModel) { m.scores = src }
}

// WithAppLogger sets the logger.
func WithAppLogger(l *log.Logger) AppOption {
	return func(m *AppModel) { m.logger = l }
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) AppOption {
	return func(m *AppModel) {
		m.width = width
		m.height = height
	}
}

// NewAppModel creates the session model. Timer callbacks posted to loop run
// on the Bubble Tea update loop; loop may be nil when the manager's clock is
// driven elsewhere.
func NewAppModel(manager *session.Manager, loop *sched.Loop, opts ...AppOption) AppModel {
	h := help.New()
	h.ShowAll = false

	m := AppModel{
		manager:  manager,
		loop:     loop,
		games:    manager.Catalog().List(),
		menuKeys: DefaultMenuKeyMap(),
		gameKeys: DefaultGameKeyMap(),
		help:     h,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	m.palette = theme.Load(m.prefs)
	m.help.Width = m.width
	return m
}

// Init starts delivering timer callbacks.
func (m AppModel) Init() tea.Cmd {
	if m.loop == nil {
		return nil
	}
	return waitForTimer(m.loop)
}

// Update handles messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TimerMsg:
		msg.fn()
		return m, waitForTimer(m.loop)

	case loopClosedMsg:
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.board != nil {
			board, _ := m.board.Update(msg)
			m.board = &board
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.board != nil:
			return m.updateScores(msg)
		case m.manager.View() == session.ViewGame:
			return m.updateGame(msg)
		default:
			return m.updateMenu(msg)
		}
	}
	return m, nil
}

func (m AppModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.menuKeys.Quit):
		return m.quit()

	case key.Matches(msg, m.menuKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.menuKeys.Down):
		if m.cursor < len(m.games)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.menuKeys.Select):
		if len(m.games) > 0 && m.manager.Select(m.games[m.cursor].Key) {
			m.focus = 0
		}

	case key.Matches(msg, m.menuKeys.Scores):
		if m.scores != nil && len(m.games) > 0 {
			board := NewScoreboardModel(m.manager.Catalog(), m.scores, m.palette, m.width, m.height)
			board.Focus(m.games[m.cursor].Key)
			m.board = &board
		}

	case key.Matches(msg, m.menuKeys.Theme):
		m.nextTheme()
	}
	return m, nil
}

func (m AppModel) updateScores(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	board, cmd := m.board.Update(msg)
	switch {
	case board.IsQuitting():
		return m.quit()
	case board.IsGoingBack():
		m.board = nil
		return m, nil
	}
	m.board = &board
	return m, cmd
}

func (m AppModel) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc":
		m.manager.ReturnToMenu()
		return m, nil
	case "tab":
		m.moveFocus(1)
		return m, nil
	case "shift+tab":
		m.moveFocus(-1)
		return m, nil
	}

	focused := m.focused()
	if focused != nil && focused.Kind() == core.KindInput {
		if m.editInput(focused, msg) {
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.gameKeys.Activate):
		if focused != nil {
			m.manager.Dispatch(core.Click(focused.Role(), focused.Index()))
		}
		return m, nil

	case key.Matches(msg, m.gameKeys.Back):
		m.manager.ReturnToMenu()
		return m, nil

	case key.Matches(msg, m.gameKeys.Theme):
		m.nextTheme()
		return m, nil
	}

	if k, ok := DocumentKey(msg); ok {
		if m.manager.DispatchDocument(core.KeyDown(k)) {
			return m, nil
		}
		// Games without keyboard controls use the arrows to move focus.
		switch k {
		case core.KeyArrowLeft, core.KeyArrowUp:
			m.moveFocus(-1)
		case core.KeyArrowRight, core.KeyArrowDown:
			m.moveFocus(1)
		}
	}
	return m, nil
}

// editInput applies msg to a focused input. It returns false for keys the
// input does not consume.
func (m *AppModel) editInput(e *core.Element, msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEnter:
		m.manager.Dispatch(core.KeyPress(e.Role(), core.KeyEnter))
	case tea.KeyBackspace:
		value := []rune(e.Value())
		if len(value) == 0 {
			return true
		}
		m.manager.Dispatch(core.Input(e.Role(), string(value[:len(value)-1])))
	case tea.KeySpace:
		m.manager.Dispatch(core.Input(e.Role(), e.Value()+" "))
	case tea.KeyRunes:
		m.manager.Dispatch(core.Input(e.Role(), e.Value()+string(msg.Runes)))
	default:
		return false
	}
	return true
}

// focusable returns the active container's focusable elements in order.
func (m AppModel) focusable() []*core.Element {
	inst := m.manager.Active()
	if inst == nil {
		return nil
	}
	var out []*core.Element
	for _, e := range inst.Container().Elements() {
		if e.Kind().Focusable() {
			out = append(out, e)
		}
	}
	return out
}

func (m AppModel) focused() *core.Element {
	elems := m.focusable()
	if len(elems) == 0 {
		return nil
	}
	return elems[m.focus%len(elems)]
}

func (m *AppModel) moveFocus(delta int) {
	n := len(m.focusable())
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
}

func (m *AppModel) nextTheme() {
	m.palette = theme.Next(m.palette.Name)
	if err := theme.Save(m.prefs, m.palette.Name); err != nil {
		m.logger.Warn("cannot save theme", "theme", m.palette.Name, "err", err)
	}
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.manager.Close()
	return m, tea.Quit
}

// Palette returns the current theme.
func (m AppModel) Palette() theme.Palette {
	return m.palette
}

// Focused returns the element holding keyboard focus, nil in the menu.
func (m AppModel) Focused() *core.Element {
	return m.focused()
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch {
	case m.board != nil:
		return m.board.View()
	case m.manager.View() == session.ViewGame:
		content = m.gameView()
	default:
		content = m.menuView()
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m AppModel) menuView() string {
	styles := m.palette.Styles()

	var b strings.Builder
	b.WriteString(styles.Title.Render("M I N I   A R C A D E"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d games  ·  theme: %s", len(m.games), m.palette.Name)))
	b.WriteString("\n\n")

	for i, g := range m.games {
		if i == m.cursor {
			b.WriteString(styles.MenuItemActive.Render("> " + g.Title))
		} else {
			b.WriteString(styles.MenuItem.Render("  " + g.Title))
		}
		b.WriteString("\n")
	}

	if len(m.games) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Subtitle.Render(m.games[m.cursor].Summary))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Help.Render(m.help.View(m.menuKeys)))
	return b.String()
}

func (m AppModel) gameView() string {
	inst := m.manager.Active()
	def := m.manager.ActiveDefinition()
	if inst == nil || def == nil {
		return ""
	}
	styles := m.palette.Styles()

	body := RenderContainer(inst.Container(), m.palette, m.focused())
	return lipgloss.JoinVertical(lipgloss.Center,
		styles.Title.Render(def.Title),
		"",
		styles.Card.Render(body),
		"",
		styles.Help.Render(m.help.View(m.gameKeys)),
	)
}

// Run starts the Bubble Tea program for one local session and disposes the
// active game when it exits.
func Run(manager *session.Manager, loop *sched.Loop, opts ...AppOption) error {
	defer loop.Close()
	defer manager.Close()

	p := tea.NewProgram(
		NewAppModel(manager, loop, opts...),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
