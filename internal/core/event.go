package core

// EventKind is the kind of interaction an event represents.
type EventKind int

const (
	EventClick    EventKind = iota // Button or cell activation
	EventKeyPress                  // Key pressed while an input has focus
	EventInput                     // Input value changed
	EventKeyDown                   // Key pressed anywhere (document scope)
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventClick:
		return "click"
	case EventKeyPress:
		return "keypress"
	case EventInput:
		return "input"
	case EventKeyDown:
		return "keydown"
	default:
		return "unknown"
	}
}

// Key names used by document-scoped keyboard events.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyEnter      = "Enter"
)

// Event is one user interaction, addressed to an element (role + index) or,
// for document-scoped keyboard events, to nobody in particular.
type Event struct {
	Kind  EventKind
	Role  string
	Index int
	Key   string
	Value string
}

// Click builds a click event on the i-th element of role.
func Click(role string, index int) Event {
	return Event{Kind: EventClick, Role: role, Index: index}
}

// KeyPress builds a keypress event on the first element of role.
func KeyPress(role, key string) Event {
	return Event{Kind: EventKeyPress, Role: role, Key: key}
}

// Input builds an input event carrying the new value of role.
func Input(role, value string) Event {
	return Event{Kind: EventInput, Role: role, Value: value}
}

// KeyDown builds a document-scoped keydown event.
func KeyDown(key string) Event {
	return Event{Kind: EventKeyDown, Key: key}
}
