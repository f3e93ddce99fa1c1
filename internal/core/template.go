package core

// ElementKind classifies what an element is for, which decides how the
// platform renders it and whether it can take focus.
type ElementKind int

const (
	KindText    ElementKind = iota // Read-only text (status, score, board labels)
	KindButton                     // Clickable control
	KindInput                      // Editable single-line text field
	KindSurface                    // Drawable character canvas
)

// String returns a human-readable name for the kind.
func (k ElementKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindButton:
		return "button"
	case KindInput:
		return "input"
	case KindSurface:
		return "surface"
	default:
		return "unknown"
	}
}

// Focusable reports whether elements of this kind accept keyboard focus.
func (k ElementKind) Focusable() bool {
	return k == KindButton || k == KindInput
}

// RoleSpec declares one named role a game's markup exposes.
type RoleSpec struct {
	Name    string      // Stable role name, e.g. "status" or "cell"
	Label   string      // Caption shown by the renderer; empty hides it
	Kind    ElementKind // What the element is
	Count   int         // Number of elements in the group; 0 or 1 means a single element
	Columns int         // Layout hint for groups; 0 lays the group out in one row
	Width   int         // Surface width in cells
	Height  int         // Surface height in cells
	Text    string      // Initial text (button captions, placeholders)
}

// Size returns how many elements the role produces.
func (r RoleSpec) Size() int {
	if r.Count < 1 {
		return 1
	}
	return r.Count
}

// Template is the markup of one game: the ordered set of roles a container
// built from it will expose.
type Template struct {
	Name  string
	Roles []RoleSpec
}

// Role looks up a role declaration by name.
func (t Template) Role(name string) (RoleSpec, bool) {
	for _, r := range t.Roles {
		if r.Name == name {
			return r, true
		}
	}
	return RoleSpec{}, false
}

// Without returns a copy of the template that lacks the named roles.
// Useful for markup variants that omit optional elements.
func (t Template) Without(names ...string) Template {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	out := Template{Name: t.Name, Roles: make([]RoleSpec, 0, len(t.Roles))}
	for _, r := range t.Roles {
		if !drop[r.Name] {
			out.Roles = append(out.Roles, r)
		}
	}
	return out
}
