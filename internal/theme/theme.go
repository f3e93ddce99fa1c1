// Package theme holds the arcade's color palettes and the lipgloss styles
// derived from them. The selected palette is persisted as a preference.
package theme

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/minigame-arcade/internal/core"
)

// PreferenceKey is the preference the selected palette is stored under.
const PreferenceKey = "arcade-theme"

// DefaultName is the palette used when nothing valid is stored.
const DefaultName = "purple"

// Palette is a named set of terminal colors.
type Palette struct {
	Name      string
	Accent    lipgloss.Color // titles, focused controls
	Highlight lipgloss.Color // selected menu item, active classes
	Text      lipgloss.Color
	Muted     lipgloss.Color // labels, help, disabled controls
	Border    lipgloss.Color
}

var palettes = []Palette{
	{Name: "purple", Accent: "135", Highlight: "213", Text: "252", Muted: "243", Border: "99"},
	{Name: "ocean", Accent: "39", Highlight: "51", Text: "252", Muted: "243", Border: "31"},
	{Name: "forest", Accent: "34", Highlight: "156", Text: "252", Muted: "243", Border: "28"},
	{Name: "sunset", Accent: "208", Highlight: "226", Text: "255", Muted: "244", Border: "166"},
	{Name: "mono", Accent: "255", Highlight: "250", Text: "252", Muted: "240", Border: "245"},
}

// ErrUnknown is returned when a palette name is not defined.
var ErrUnknown = errors.New("theme: unknown theme")

// Names lists the palettes in cycle order.
func Names() []string {
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.Name
	}
	return names
}

// Lookup returns the palette called name.
func Lookup(name string) (Palette, bool) {
	for _, p := range palettes {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}

// Default returns the default palette.
func Default() Palette {
	p, _ := Lookup(DefaultName)
	return p
}

// Next returns the palette after name, wrapping around. Unknown names
// restart the cycle.
func Next(name string) Palette {
	i := slices.IndexFunc(palettes, func(p Palette) bool { return p.Name == name })
	return palettes[(i+1)%len(palettes)]
}

// gameColors maps element color names to terminal colors. These do not
// change with the palette so games stay recognizable.
var gameColors = map[core.Color]lipgloss.Color{
	core.ColorRed:     "1",
	core.ColorGreen:   "2",
	core.ColorYellow:  "3",
	core.ColorBlue:    "4",
	core.ColorMagenta: "5",
	core.ColorCyan:    "6",
	core.ColorWhite:   "7",
	core.ColorOrange:  "208",
	core.ColorGray:    "245",
}

// Color returns a foreground style for c. ColorDefault uses the palette's
// text color.
func (p Palette) Color(c core.Color) lipgloss.Style {
	if fg, ok := gameColors[c]; ok {
		return lipgloss.NewStyle().Foreground(fg)
	}
	return lipgloss.NewStyle().Foreground(p.Text)
}

// Styles are the rendered styles of one palette.
type Styles struct {
	Title          lipgloss.Style
	Subtitle       lipgloss.Style
	MenuItem       lipgloss.Style
	MenuItemActive lipgloss.Style
	Status         lipgloss.Style
	Label          lipgloss.Style
	Value          lipgloss.Style
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonActive   lipgloss.Style
	Input          lipgloss.Style
	InputFocused   lipgloss.Style
	Card           lipgloss.Style
	Help           lipgloss.Style
}

// Styles derives the UI styles for p.
func (p Palette) Styles() Styles {
	button := lipgloss.NewStyle().
		Foreground(p.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Muted).
		Padding(0, 1)

	return Styles{
		Title:          lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Subtitle:       lipgloss.NewStyle().Foreground(p.Muted).Italic(true),
		MenuItem:       lipgloss.NewStyle().Foreground(p.Text),
		MenuItemActive: lipgloss.NewStyle().Foreground(p.Highlight).Bold(true),
		Status:         lipgloss.NewStyle().Foreground(p.Highlight),
		Label:          lipgloss.NewStyle().Foreground(p.Muted),
		Value:          lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Button:         button,
		ButtonFocused:  button.BorderForeground(p.Accent).Foreground(p.Accent).Bold(true),
		ButtonDisabled: button.Foreground(p.Muted).BorderForeground(p.Muted).Faint(true),
		ButtonActive:   button.BorderForeground(p.Highlight).Foreground(p.Highlight).Reverse(true),
		Input: lipgloss.NewStyle().
			Foreground(p.Text).
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Muted).
			Width(30),
		InputFocused: lipgloss.NewStyle().
			Foreground(p.Text).
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Accent).
			Width(30),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 2),
		Help: lipgloss.NewStyle().Foreground(p.Muted),
	}
}

// PreferenceStore persists string preferences.
type PreferenceStore interface {
	Preference(key string) (string, bool, error)
	SetPreference(key, value string) error
}

// Load returns the stored palette, or the default when the store is nil,
// empty, failing or holds an unknown name.
func Load(store PreferenceStore) Palette {
	if store == nil {
		return Default()
	}
	name, ok, err := store.Preference(PreferenceKey)
	if err != nil || !ok {
		return Default()
	}
	if p, ok := Lookup(name); ok {
		return p
	}
	return Default()
}

// Save stores name as the selected palette.
func Save(store PreferenceStore, name string) error {
	if _, ok := Lookup(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	if store == nil {
		return nil
	}
	if err := store.SetPreference(PreferenceKey, name); err != nil {
		return fmt.Errorf("theme: cannot save %q: %w", name, err)
	}
	return nil
}
