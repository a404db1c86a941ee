package stage

import (
	"fmt"

	"github.com/google/uuid"
)

// GameObject is a named container of uniquely-named components plus one event
// bus. Names are not unique across objects, so every object also carries a
// generated instance ID for logging and inspection.
//
// The object owns its components outright; scenes refer to objects only
// through world handles.
type GameObject struct {
	id         uuid.UUID
	name, tag  string
	components map[string]Component
	order      []string
	bus        *EventBus
}

// NewGameObject creates an object with an empty component set and an event
// bus carrying the protected EventCollision channel. The optional tag
// overrides TagGameObject.
func NewGameObject(name string, tag ...string) *GameObject {
	g := &GameObject{
		id:         uuid.New(),
		name:       name,
		tag:        pickTag(TagGameObject, tag),
		components: make(map[string]Component),
	}
	g.bus = newEventBus(g)
	// The bus is empty at this point, so registration cannot collide.
	_ = g.bus.AddDefaultEvent(NewEvent(EventCollision))
	return g
}

// ID returns the generated instance ID.
func (g *GameObject) ID() uuid.UUID {
	return g.id
}

// Name returns the object's name.
func (g *GameObject) Name() string {
	return g.name
}

// Tag returns the object's tag.
func (g *GameObject) Tag() string {
	return g.tag
}

// AddComponent inserts c under its name. If a component with that name is
// already attached the call is a silent no-op and the original stays; callers
// must not assume overwrite.
func (g *GameObject) AddComponent(c Component) {
	if _, exists := g.components[c.Name()]; exists {
		return
	}
	g.components[c.Name()] = c
	g.order = append(g.order, c.Name())
}

// RemoveComponent detaches the named component. Removing an absent name is a
// no-op.
func (g *GameObject) RemoveComponent(name string) {
	if _, exists := g.components[name]; !exists {
		return
	}
	delete(g.components, name)
	for i, n := range g.order {
		if n == name {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

// GetComponent returns the named component.
func (g *GameObject) GetComponent(name string) (Component, error) {
	c, exists := g.components[name]
	if !exists {
		return nil, fmt.Errorf("object %q component %q: %w", g.name, name, ErrUnknownComponent)
	}
	return c, nil
}

// Components returns the attached components in insertion order, so sweeps
// over them are deterministic.
func (g *GameObject) Components() []Component {
	out := make([]Component, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.components[name])
	}
	return out
}

// Bus returns the object's event bus.
func (g *GameObject) Bus() *EventBus {
	return g.bus
}
