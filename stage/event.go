package stage

import (
	"fmt"
	"sort"
)

// EventCollision is the protected channel installed on every GameObject at
// construction. The processor signals it once per colliding counterpart each
// sweep.
const EventCollision = "on_collision"

// Listener is an event callback. self is the object whose bus fired the
// event; sender is the counterpart that triggered it. A non-nil error aborts
// the remaining listeners of the signal and propagates to the invoker.
type Listener func(self, sender *GameObject) error

// Event is a named, ordered list of listeners invoked synchronously in
// registration order.
type Event struct {
	name      string
	listeners []Listener
}

// NewEvent creates an empty event channel.
func NewEvent(name string) *Event {
	return &Event{name: name}
}

// Name returns the channel name.
func (e *Event) Name() string {
	return e.name
}

// AddListener appends fn and returns its assigned index. Indices of listeners
// registered after a removal shift down; they must be re-derived, not cached
// across removals.
func (e *Event) AddListener(fn Listener) int {
	e.listeners = append(e.listeners, fn)
	return len(e.listeners) - 1
}

// RemoveListener removes the listener at index, shifting subsequent indices.
func (e *Event) RemoveListener(index int) error {
	if index < 0 || index >= len(e.listeners) {
		return fmt.Errorf("event %q listener %d: %w", e.name, index, ErrUnknownListener)
	}
	e.listeners = append(e.listeners[:index], e.listeners[index+1:]...)
	return nil
}

// Len returns the number of registered listeners.
func (e *Event) Len() int {
	return len(e.listeners)
}

// Signal invokes every listener in registration order, fully and
// synchronously, before returning. The first listener error stops the
// remaining ones and is returned.
func (e *Event) Signal(self, sender *GameObject) error {
	for _, fn := range e.listeners {
		if err := fn(self, sender); err != nil {
			return fmt.Errorf("event %q: %w", e.name, err)
		}
	}
	return nil
}

type busEntry struct {
	event     *Event
	protected bool
}

// EventBus is the named channel registry bound 1:1 to one GameObject at
// construction. Channels registered as default are immune to removal.
type EventBus struct {
	owner  *GameObject
	events map[string]busEntry
}

func newEventBus(owner *GameObject) *EventBus {
	return &EventBus{
		owner:  owner,
		events: make(map[string]busEntry),
	}
}

// AddEvent registers a removable channel. The name must be free regardless of
// how the existing channel was registered.
func (b *EventBus) AddEvent(ev *Event) error {
	return b.add(ev, false)
}

// AddDefaultEvent registers a protected channel that RemoveEvent refuses to
// drop.
func (b *EventBus) AddDefaultEvent(ev *Event) error {
	return b.add(ev, true)
}

func (b *EventBus) add(ev *Event, protected bool) error {
	if _, exists := b.events[ev.Name()]; exists {
		return fmt.Errorf("event %q: %w", ev.Name(), ErrDuplicateEvent)
	}
	b.events[ev.Name()] = busEntry{event: ev, protected: protected}
	return nil
}

// RemoveEvent removes the named channel. Exactly one of three outcomes holds:
// the removal succeeds, the channel is protected (ErrProtectedEvent), or no
// such channel exists (ErrUnknownEvent).
func (b *EventBus) RemoveEvent(name string) error {
	entry, exists := b.events[name]
	if !exists {
		return fmt.Errorf("event %q: %w", name, ErrUnknownEvent)
	}
	if entry.protected {
		return fmt.Errorf("event %q: %w", name, ErrProtectedEvent)
	}
	delete(b.events, name)
	return nil
}

// GetEvent returns the named channel.
func (b *EventBus) GetEvent(name string) (*Event, error) {
	entry, exists := b.events[name]
	if !exists {
		return nil, fmt.Errorf("event %q: %w", name, ErrUnknownEvent)
	}
	return entry.event, nil
}

// InvokeEvent signals the named channel with self bound to the owning object.
func (b *EventBus) InvokeEvent(name string, sender *GameObject) error {
	ev, err := b.GetEvent(name)
	if err != nil {
		return err
	}
	return ev.Signal(b.owner, sender)
}

// Names returns the registered channel names in sorted order.
func (b *EventBus) Names() []string {
	names := make([]string, 0, len(b.events))
	for name := range b.events {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
