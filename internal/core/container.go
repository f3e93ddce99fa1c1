package core

import "github.com/google/uuid"

// Container is the boundary object a game instance renders into. It exposes
// the elements of one Template by role name and is owned by exactly one
// instance for that instance's lifetime.
type Container struct {
	id       string
	template Template
	groups   map[string][]*Element
	order    []*Element
	revision uint64
}

// NewContainer builds a fresh container with one element per declared role
// slot.
func NewContainer(t Template) *Container {
	c := &Container{
		id:       uuid.NewString(),
		template: t,
		groups:   make(map[string][]*Element, len(t.Roles)),
	}
	for _, spec := range t.Roles {
		n := spec.Size()
		group := make([]*Element, n)
		for i := range n {
			group[i] = newElement(c, spec, i)
			c.order = append(c.order, group[i])
		}
		c.groups[spec.Name] = group
	}
	return c
}

// ID returns the container's unique identifier.
func (c *Container) ID() string {
	if c == nil {
		return ""
	}
	return c.id
}

// Template returns the template the container was built from.
func (c *Container) Template() Template {
	if c == nil {
		return Template{}
	}
	return c.template
}

// Has reports whether the container exposes the role.
func (c *Container) Has(role string) bool {
	if c == nil {
		return false
	}
	_, ok := c.groups[role]
	return ok
}

// Get returns the first element of a role, or nil if the role is absent.
func (c *Container) Get(role string) *Element {
	return c.At(role, 0)
}

// At returns the i-th element of a role group, or nil if absent.
func (c *Container) At(role string, i int) *Element {
	if c == nil {
		return nil
	}
	group := c.groups[role]
	if i < 0 || i >= len(group) {
		return nil
	}
	return group[i]
}

// Group returns every element of a role in index order.
func (c *Container) Group(role string) []*Element {
	if c == nil {
		return nil
	}
	return c.groups[role]
}

// Elements returns all elements in template order.
func (c *Container) Elements() []*Element {
	if c == nil {
		return nil
	}
	return c.order
}

// Revision counts mutations applied to any element of the container.
func (c *Container) Revision() uint64 {
	if c == nil {
		return 0
	}
	return c.revision
}

// ContainerFactory produces isolated containers from templates.
type ContainerFactory interface {
	NewContainer(t Template) *Container
}

// CloneFactory stamps a brand-new container out of the template on every
// call, so no two instances ever share an element.
type CloneFactory struct{}

// NewContainer implements ContainerFactory.
func (CloneFactory) NewContainer(t Template) *Container {
	return NewContainer(t)
}
