package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/lifecycle"
	"github.com/vovakirdan/minigame-arcade/internal/theme"
)

// Classes the renderer highlights.
var (
	litClasses = []string{"active", "flipped", "matched", "correct", "winner", "rolling"}
	classTints = map[string]core.Color{
		"wrong":   core.ColorRed,
		"waiting": core.ColorRed,
		"ready":   core.ColorGreen,
	}
)

// cursorGlyph marks the caret of a focused input.
const cursorGlyph = "▏"

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p theme.Palette) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(p.Color(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// elementColor resolves the color an element's text is painted with:
// the color data attribute first, then a tinting class, then a class named
// after a color.
func elementColor(e *core.Element) core.Color {
	if name := e.Data(core.DataColor); name != "" {
		return core.ParseColor(name)
	}
	for _, class := range e.Classes() {
		if c, ok := classTints[class]; ok {
			return c
		}
		if c := core.ParseColor(class); c != core.ColorDefault {
			return c
		}
	}
	return core.ColorDefault
}

func isLit(e *core.Element) bool {
	for _, class := range litClasses {
		if e.HasClass(class) {
			return true
		}
	}
	return false
}

// containerRenderer draws one container with a palette.
type containerRenderer struct {
	palette theme.Palette
	styles  theme.Styles
	focused *core.Element
}

// block is one rendered role and whether it may share a line with its
// neighbours of the same kind.
type block struct {
	text   string
	inline core.ElementKind
	joins  bool
}

// RenderContainer renders every role of c in template order. focused, if
// not nil, is drawn with the focus style.
func RenderContainer(c *core.Container, p theme.Palette, focused *core.Element) string {
	r := containerRenderer{palette: p, styles: p.Styles(), focused: focused}

	var blocks []block
	for _, spec := range c.Template().Roles {
		if spec.Size() > 1 {
			blocks = append(blocks, block{text: r.group(spec, c.Group(spec.Name))})
			continue
		}
		if b, ok := r.single(spec, c.Get(spec.Name)); ok {
			blocks = append(blocks, b)
		}
	}

	var lines []string
	for i := 0; i < len(blocks); {
		j := i + 1
		if blocks[i].joins {
			for j < len(blocks) && blocks[j].joins && blocks[j].inline == blocks[i].inline {
				j++
			}
		}
		parts := make([]string, 0, 2*(j-i))
		for k, b := range blocks[i:j] {
			if k > 0 {
				parts = append(parts, "   ")
			}
			parts = append(parts, b.text)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center, parts...))
		i = j
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (r containerRenderer) single(spec core.RoleSpec, e *core.Element) (block, bool) {
	if e == nil {
		return block{}, false
	}
	switch spec.Kind {
	case core.KindButton:
		return block{text: r.button(e, 0), inline: core.KindButton, joins: true}, true
	case core.KindInput:
		return block{text: r.input(spec, e)}, true
	case core.KindSurface:
		return block{text: r.styles.Card.Padding(0, 1).Render(RenderScreen(e.Surface(), r.palette))}, true
	}

	text := e.Text()
	switch {
	case spec.Name == lifecycle.RoleStatus:
		if text == "" {
			text = " "
		}
		return block{text: r.styles.Status.Render(text)}, true
	case spec.Label != "":
		return block{
			text:   r.styles.Label.Render(spec.Label+": ") + r.value(e),
			inline: core.KindText,
			joins:  true,
		}, true
	case text == "":
		return block{}, false
	default:
		return block{text: r.value(e)}, true
	}
}

func (r containerRenderer) value(e *core.Element) string {
	style := r.styles.Value
	if c := elementColor(e); c != core.ColorDefault {
		style = style.Foreground(r.palette.Color(c).GetForeground())
	}
	return style.Render(e.Text())
}

func (r containerRenderer) button(e *core.Element, width int) string {
	var style lipgloss.Style
	switch {
	case e == r.focused:
		style = r.styles.ButtonFocused
	case e.Disabled():
		style = r.styles.ButtonDisabled
	case isLit(e):
		style = r.styles.ButtonActive
	default:
		style = r.styles.Button
	}
	if c := elementColor(e); c != core.ColorDefault && !e.Disabled() {
		style = style.Foreground(r.palette.Color(c).GetForeground())
	}
	if width > 0 {
		style = style.Width(width + 2).Align(lipgloss.Center)
	}
	text := e.Text()
	if text == "" {
		text = " "
	}
	return style.Render(text)
}

func (r containerRenderer) input(spec core.RoleSpec, e *core.Element) string {
	style := r.styles.Input
	value := e.Value()
	if e == r.focused {
		style = r.styles.InputFocused
		value += cursorGlyph
	} else if value == "" {
		value = r.styles.Label.Render(spec.Text)
	}
	box := style.Render(value)
	if spec.Label == "" {
		return box
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, r.styles.Label.Render(spec.Label+": "), box)
}

// group lays a role group out as a grid of equally wide cells.
func (r containerRenderer) group(spec core.RoleSpec, elems []*core.Element) string {
	width := 1
	for _, e := range elems {
		width = max(width, lipgloss.Width(e.Text()))
	}
	cols := spec.Columns
	if cols <= 0 {
		cols = len(elems)
	}

	var rows []string
	for start := 0; start < len(elems); start += cols {
		end := min(start+cols, len(elems))
		cells := make([]string, 0, end-start)
		for _, e := range elems[start:end] {
			cells = append(cells, r.button(e, width))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
