package core

import "sort"

// Element is one addressable node of a Container.
//
// All methods are safe on a nil receiver: reads return zero values and
// writes are dropped. Games look elements up by role and mutate them without
// checking, so markup that omits an element simply skips that update.
type Element struct {
	owner    *Container
	role     string
	index    int
	kind     ElementKind
	text     string
	value    string
	disabled bool
	classes  map[string]struct{}
	data     map[string]string
	screen   *Screen
}

func newElement(owner *Container, spec RoleSpec, index int) *Element {
	e := &Element{
		owner:   owner,
		role:    spec.Name,
		index:   index,
		kind:    spec.Kind,
		text:    spec.Text,
		classes: make(map[string]struct{}),
		data:    make(map[string]string),
	}
	if spec.Kind == KindSurface {
		e.screen = NewScreen(spec.Width, spec.Height)
	}
	return e
}

func (e *Element) touch() {
	if e.owner != nil {
		e.owner.revision++
	}
}

// Role returns the role name the element was declared under.
func (e *Element) Role() string {
	if e == nil {
		return ""
	}
	return e.role
}

// Index returns the position of the element within its role group.
func (e *Element) Index() int {
	if e == nil {
		return -1
	}
	return e.index
}

// Kind returns the element kind.
func (e *Element) Kind() ElementKind {
	if e == nil {
		return KindText
	}
	return e.kind
}

// Text returns the element's text content.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	return e.text
}

// SetText replaces the element's text content.
func (e *Element) SetText(text string) {
	if e == nil {
		return
	}
	e.text = text
	e.touch()
}

// Value returns the current content of an input element.
func (e *Element) Value() string {
	if e == nil {
		return ""
	}
	return e.value
}

// SetValue replaces the content of an input element.
func (e *Element) SetValue(v string) {
	if e == nil {
		return
	}
	e.value = v
	e.touch()
}

// Disabled reports whether the element ignores clicks.
func (e *Element) Disabled() bool {
	if e == nil {
		return false
	}
	return e.disabled
}

// SetDisabled toggles whether the element accepts clicks.
func (e *Element) SetDisabled(disabled bool) {
	if e == nil {
		return
	}
	e.disabled = disabled
	e.touch()
}

// HasClass reports whether the class is set.
func (e *Element) HasClass(class string) bool {
	if e == nil {
		return false
	}
	_, ok := e.classes[class]
	return ok
}

// AddClass sets one or more classes.
func (e *Element) AddClass(classes ...string) {
	if e == nil {
		return
	}
	for _, c := range classes {
		e.classes[c] = struct{}{}
	}
	e.touch()
}

// RemoveClass clears one or more classes.
func (e *Element) RemoveClass(classes ...string) {
	if e == nil {
		return
	}
	for _, c := range classes {
		delete(e.classes, c)
	}
	e.touch()
}

// SetClasses replaces the whole class set.
func (e *Element) SetClasses(classes ...string) {
	if e == nil {
		return
	}
	e.classes = make(map[string]struct{}, len(classes))
	for _, c := range classes {
		e.classes[c] = struct{}{}
	}
	e.touch()
}

// Classes returns the set classes in sorted order.
func (e *Element) Classes() []string {
	if e == nil {
		return nil
	}
	out := make([]string, 0, len(e.classes))
	for c := range e.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Data returns a data attribute.
func (e *Element) Data(key string) string {
	if e == nil {
		return ""
	}
	return e.data[key]
}

// SetData sets a data attribute.
func (e *Element) SetData(key, value string) {
	if e == nil {
		return
	}
	e.data[key] = value
	e.touch()
}

// Surface returns the drawing buffer of a surface element, nil otherwise.
func (e *Element) Surface() *Screen {
	if e == nil {
		return nil
	}
	return e.screen
}

// Draw runs fn against the element's surface. Elements without a surface
// skip the call.
func (e *Element) Draw(fn func(s *Screen)) {
	if e == nil || e.screen == nil {
		return
	}
	fn(e.screen)
	e.touch()
}
