package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/minigame-arcade/internal/config"
	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/games"
	"github.com/vovakirdan/minigame-arcade/internal/games/guessnumber"
	"github.com/vovakirdan/minigame-arcade/internal/games/reaction"
	"github.com/vovakirdan/minigame-arcade/internal/games/t2048"
	"github.com/vovakirdan/minigame-arcade/internal/games/tictactoe"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
	"github.com/vovakirdan/minigame-arcade/internal/sched"
	"github.com/vovakirdan/minigame-arcade/internal/session"
	"github.com/vovakirdan/minigame-arcade/internal/storage"
	"github.com/vovakirdan/minigame-arcade/internal/theme"
)

type memoryPrefs map[string]string

func (p memoryPrefs) Preference(key string) (string, bool, error) {
	v, ok := p[key]
	return v, ok, nil
}

func (p memoryPrefs) SetPreference(key, value string) error {
	p[key] = value
	return nil
}

type recordingSource struct {
	orders map[string]storage.Order
}

func (r *recordingSource) TopScores(gameID string, _ int, order storage.Order) ([]storage.ScoreEntry, error) {
	r.orders[gameID] = order
	return []storage.ScoreEntry{{GameID: gameID, Score: 42, CreatedAt: time.Unix(0, 0)}}, nil
}

func newApp(t *testing.T, opts ...AppOption) (AppModel, *session.Manager) {
	t.Helper()
	manager := session.New(games.Catalog(config.Default()),
		session.WithClock(sched.NewManual(time.Unix(0, 0))),
		session.WithSeed(1),
	)
	return NewAppModel(manager, nil, opts...), manager
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(m AppModel, keys ...string) AppModel {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(AppModel)
	}
	return m
}

// selectGame moves the menu cursor to key and opens it.
func selectGame(t *testing.T, m AppModel, key string) AppModel {
	t.Helper()
	for i, g := range m.games {
		if g.Key == key {
			for range i {
				m = press(m, "down")
			}
			m = press(m, "enter")
			require.Equal(t, key, m.manager.ActiveDefinition().Key)
			return m
		}
	}
	t.Fatalf("game %q not in menu", key)
	return m
}

func statusText(m AppModel) string {
	return m.manager.Active().Container().Get(lifecycle.RoleStatus).Text()
}

func TestMenuSelectAndReturn(t *testing.T) {
	m, manager := newApp(t)
	assert.Equal(t, session.ViewMenu, manager.View())

	m = selectGame(t, m, guessnumber.Key)
	assert.Equal(t, session.ViewGame, manager.View())
	inst := manager.Active()

	m = press(m, "esc")
	assert.Equal(t, session.ViewMenu, manager.View())
	assert.False(t, inst.Alive())
	assert.Nil(t, m.Focused())
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m, _ := newApp(t)
	m = press(m, "up", "up")
	assert.Equal(t, 0, m.cursor)

	for range len(m.games) + 3 {
		m = press(m, "down")
	}
	assert.Equal(t, len(m.games)-1, m.cursor)
}

func TestFocusAndClick(t *testing.T) {
	m, manager := newApp(t)
	m = selectGame(t, m, tictactoe.Key)
	c := manager.Active().Container()

	require.NotNil(t, m.Focused())
	assert.Equal(t, "cell", m.Focused().Role())
	assert.Equal(t, 0, m.Focused().Index())

	m = press(m, "enter", "tab", " ")
	assert.Equal(t, "X", c.At("cell", 0).Text())
	assert.Equal(t, "O", c.At("cell", 1).Text())

	m = press(m, "shift+tab", "shift+tab")
	assert.Equal(t, "restart", m.Focused().Role())
}

func TestArrowsMoveFocusWithoutKeyListeners(t *testing.T) {
	m, _ := newApp(t)
	m = selectGame(t, m, tictactoe.Key)

	m = press(m, "right", "down")
	assert.Equal(t, 2, m.Focused().Index())
	m = press(m, "left", "up", "left")
	assert.Equal(t, "restart", m.Focused().Role())
}

func TestInputEditing(t *testing.T) {
	m, manager := newApp(t)
	m = selectGame(t, m, guessnumber.Key)
	input := manager.Active().Container().Get("guess")
	require.Equal(t, input, m.Focused())

	// Letters that are shortcuts elsewhere are typed into a focused input.
	m = press(m, "5", "b", "t", "backspace", "backspace", "0")
	assert.Equal(t, "50", input.Value())
	assert.Equal(t, session.ViewGame, manager.View())

	before := statusText(m)
	m = press(m, "enter")
	assert.NotEqual(t, before, statusText(m))
	assert.Contains(t, []string{
		"Too low! Try a higher number.",
		"Too high! Try a lower number.",
		"Correct! You guessed it in 1 attempt!",
	}, statusText(m))
}

func TestBackspaceOnEmptyInput(t *testing.T) {
	m, manager := newApp(t)
	m = selectGame(t, m, guessnumber.Key)

	m = press(m, "backspace")
	assert.Empty(t, manager.Active().Container().Get("guess").Value())
	assert.Equal(t, session.ViewGame, manager.View())
}

func TestDocumentKeysReachGame(t *testing.T) {
	m, manager := newApp(t)
	m = selectGame(t, m, t2048.Key)
	c := manager.Active().Container()
	before := c.Revision()

	m = press(m, "up", "right", "down", "left")
	assert.Greater(t, c.Revision(), before)
	assert.Equal(t, "restart", m.Focused().Role())
}

func TestThemeKeyPersists(t *testing.T) {
	prefs := memoryPrefs{}
	m, _ := newApp(t, WithPreferences(prefs))
	assert.Equal(t, theme.DefaultName, m.Palette().Name)

	m = press(m, "t")
	want := theme.Next(theme.DefaultName).Name
	assert.Equal(t, want, m.Palette().Name)
	assert.Equal(t, want, prefs[theme.PreferenceKey])

	m2, _ := newApp(t, WithPreferences(prefs))
	assert.Equal(t, want, m2.Palette().Name)

	m = selectGame(t, m, tictactoe.Key)
	m = press(m, "t")
	assert.Equal(t, theme.Next(want).Name, prefs[theme.PreferenceKey])
}

func TestQuitDisposesActive(t *testing.T) {
	m, manager := newApp(t)
	m = selectGame(t, m, tictactoe.Key)
	inst := manager.Active()

	next, cmd := m.Update(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.False(t, inst.Alive())
	assert.Empty(t, next.View())
}

func TestTimerMsgRunsOnUpdate(t *testing.T) {
	loop := sched.NewLoop(1)
	defer loop.Close()

	manager := session.New(games.Catalog(config.Default()), session.WithClock(sched.NewPosted(loop)))
	m := NewAppModel(manager, loop)

	ran := false
	require.True(t, loop.Post(func() { ran = true }))

	msg := m.Init()()
	require.IsType(t, TimerMsg{}, msg)
	assert.False(t, ran)

	_, cmd := m.Update(msg)
	assert.True(t, ran)
	assert.NotNil(t, cmd)
}

func TestWaitForTimerStopsWhenLoopCloses(t *testing.T) {
	loop := sched.NewLoop(1)
	loop.Close()
	assert.Equal(t, loopClosedMsg{}, waitForTimer(loop)())
}

func TestScoreboardUsesGameOrder(t *testing.T) {
	src := &recordingSource{orders: map[string]storage.Order{}}
	m, _ := newApp(t, WithScoreSource(src), WithSize(100, 40))

	for i, g := range m.games {
		if g.Key == reaction.Key {
			for range i {
				m = press(m, "down")
			}
		}
	}
	m = press(m, "tab")
	require.NotNil(t, m.board)
	assert.Equal(t, reaction.Key, m.board.Game())
	assert.Equal(t, storage.LowerIsBetter, src.orders[reaction.Key])
	assert.Contains(t, m.View(), "42")

	m = press(m, "tab")
	assert.Equal(t, storage.HigherIsBetter, src.orders[m.board.Game()])

	m = press(m, "esc")
	assert.Nil(t, m.board)
}

func TestDocumentKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
		ok   bool
	}{
		{"up", core.KeyArrowUp, true},
		{"down", core.KeyArrowDown, true},
		{"left", core.KeyArrowLeft, true},
		{"right", core.KeyArrowRight, true},
		{"w", "w", true},
		{"s", "s", true},
		{"x", "", false},
	}
	for _, tt := range tests {
		got, ok := DocumentKey(keyMsg(tt.key))
		if got != tt.want || ok != tt.ok {
			t.Errorf("DocumentKey(%q) = %q, %v; want %q, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}
