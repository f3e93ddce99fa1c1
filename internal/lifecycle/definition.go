// Package lifecycle turns immutable game definitions into live, isolated game
// instances and tears them down again.
//
// A Definition describes a game: the template its container must expose, a
// constructor for fresh state and the control bindings that drive it. An
// Instance binds one Definition to one Container. It owns its state, every
// timer it scheduled and every listener it attached, and Dispose releases all
// of them at once.
package lifecycle

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/minigame-arcade/internal/core"
)

// RoleStatus is the conventional role of a game's status line.
const RoleStatus = "status"

// Scope decides where a binding listens.
type Scope int

const (
	// ScopeContainer listens on elements of the instance's own container.
	ScopeContainer Scope = iota
	// ScopeDocument listens to keyboard events of the whole view. The listener
	// is still owned by the instance and detached on Dispose.
	ScopeDocument
)

// HandlerFunc handles one event against an instance's state.
type HandlerFunc func(state any, ctx *Context, ev core.Event)

// Binding maps an interaction on a role to a state transition.
type Binding struct {
	Role   string // Ignored for ScopeDocument
	Kind   core.EventKind
	Scope  Scope
	Handle HandlerFunc
}

// Definition is the immutable descriptor of one game.
type Definition struct {
	Key      string
	Title    string
	Summary  string
	Template core.Template

	// LowerIsBetter marks games whose best score is the smallest one, such
	// as reaction times.
	LowerIsBetter bool

	// NewState builds a fresh state. It must only use the RNG it is given and
	// must not touch anything shared with other instances.
	NewState func(rng *rand.Rand) any

	Bindings []Binding

	// Mount renders the initial state into the container. Optional.
	Mount func(state any, ctx *Context)
}

// Validate checks that the definition is usable.
func (d *Definition) Validate() error {
	if d == nil {
		return errors.New("lifecycle: nil definition")
	}
	if d.Key == "" {
		return errors.New("lifecycle: definition has empty key")
	}
	if d.Title == "" {
		return fmt.Errorf("lifecycle: definition %q has empty title", d.Key)
	}
	if d.NewState == nil {
		return fmt.Errorf("lifecycle: definition %q has no state constructor", d.Key)
	}
	for i, b := range d.Bindings {
		if b.Handle == nil {
			return fmt.Errorf("lifecycle: definition %q binding %d has no handler", d.Key, i)
		}
		if b.Scope == ScopeDocument {
			continue
		}
		if _, ok := d.Template.Role(b.Role); !ok {
			return fmt.Errorf("lifecycle: definition %q binds undeclared role %q", d.Key, b.Role)
		}
	}
	return nil
}

// Init adapts a typed state constructor to Definition.NewState.
func Init[S any](fn func(rng *rand.Rand) *S) func(*rand.Rand) any {
	return func(rng *rand.Rand) any {
		return fn(rng)
	}
}

// On binds fn to kind events on every element of role.
func On[S any](role string, kind core.EventKind, fn func(s *S, ctx *Context, ev core.Event)) Binding {
	return Binding{Role: role, Kind: kind, Scope: ScopeContainer, Handle: typed(fn)}
}

// OnDocument binds fn to document-scoped events of kind.
func OnDocument[S any](kind core.EventKind, fn func(s *S, ctx *Context, ev core.Event)) Binding {
	return Binding{Kind: kind, Scope: ScopeDocument, Handle: typed(fn)}
}

// MountWith adapts a typed mount function to Definition.Mount.
func MountWith[S any](fn func(s *S, ctx *Context)) func(any, *Context) {
	return func(state any, ctx *Context) {
		if s, ok := state.(*S); ok {
			fn(s, ctx)
		}
	}
}

func typed[S any](fn func(s *S, ctx *Context, ev core.Event)) HandlerFunc {
	return func(state any, ctx *Context, ev core.Event) {
		s, ok := state.(*S)
		if !ok {
			return
		}
		fn(s, ctx, ev)
	}
}
