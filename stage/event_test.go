package stage_test

import (
	"errors"
	"testing"

	"github.com/plus3/stage2d/stage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEventDuplicate(t *testing.T) {
	bus := stage.NewGameObject("a").Bus()

	require.NoError(t, bus.AddEvent(stage.NewEvent("on_hit")))

	// Duplicate by name, regardless of how either side was registered.
	assert.ErrorIs(t, bus.AddEvent(stage.NewEvent("on_hit")), stage.ErrDuplicateEvent)
	assert.ErrorIs(t, bus.AddDefaultEvent(stage.NewEvent("on_hit")), stage.ErrDuplicateEvent)
	assert.ErrorIs(t, bus.AddEvent(stage.NewEvent(stage.EventCollision)), stage.ErrDuplicateEvent)
}

func TestRemoveEventOutcomes(t *testing.T) {
	bus := stage.NewGameObject("a").Bus()
	require.NoError(t, bus.AddEvent(stage.NewEvent("on_hit")))

	// Protected default channel can never be removed.
	assert.ErrorIs(t, bus.RemoveEvent(stage.EventCollision), stage.ErrProtectedEvent)

	// Successful removal, then the channel is unknown.
	require.NoError(t, bus.RemoveEvent("on_hit"))
	assert.ErrorIs(t, bus.RemoveEvent("on_hit"), stage.ErrUnknownEvent)
	_, err := bus.GetEvent("on_hit")
	assert.ErrorIs(t, err, stage.ErrUnknownEvent)
}

func TestInvokeEventUnknown(t *testing.T) {
	bus := stage.NewGameObject("a").Bus()
	assert.ErrorIs(t, bus.InvokeEvent("nope", nil), stage.ErrUnknownEvent)
}

func TestSignalOrderAndBinding(t *testing.T) {
	owner := stage.NewGameObject("owner")
	sender := stage.NewGameObject("sender")

	ev := stage.NewEvent("on_hit")
	require.NoError(t, owner.Bus().AddEvent(ev))

	var calls []string
	ev.AddListener(func(self, from *stage.GameObject) error {
		assert.Same(t, owner, self)
		assert.Same(t, sender, from)
		calls = append(calls, "first")
		return nil
	})
	ev.AddListener(func(self, from *stage.GameObject) error {
		calls = append(calls, "second")
		return nil
	})

	require.NoError(t, owner.Bus().InvokeEvent("on_hit", sender))
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestListenerErrorAbortsSignal(t *testing.T) {
	owner := stage.NewGameObject("owner")
	ev := stage.NewEvent("on_hit")
	require.NoError(t, owner.Bus().AddEvent(ev))

	boom := errors.New("boom")
	reached := false
	ev.AddListener(func(self, from *stage.GameObject) error { return boom })
	ev.AddListener(func(self, from *stage.GameObject) error {
		reached = true
		return nil
	})

	err := owner.Bus().InvokeEvent("on_hit", nil)
	assert.ErrorIs(t, err, boom)
	assert.False(t, reached)
}

func TestRemoveListenerShiftsIndices(t *testing.T) {
	ev := stage.NewEvent("on_hit")

	var calls []string
	i0 := ev.AddListener(func(_, _ *stage.GameObject) error {
		calls = append(calls, "a")
		return nil
	})
	i1 := ev.AddListener(func(_, _ *stage.GameObject) error {
		calls = append(calls, "b")
		return nil
	})
	i2 := ev.AddListener(func(_, _ *stage.GameObject) error {
		calls = append(calls, "c")
		return nil
	})
	assert.Equal(t, []int{0, 1, 2}, []int{i0, i1, i2})

	// Removing the middle listener shifts "c" down to index 1.
	require.NoError(t, ev.RemoveListener(1))
	assert.Equal(t, 2, ev.Len())

	require.NoError(t, ev.Signal(nil, nil))
	assert.Equal(t, []string{"a", "c"}, calls)

	// The old tail index no longer exists.
	assert.ErrorIs(t, ev.RemoveListener(2), stage.ErrUnknownListener)
	assert.ErrorIs(t, ev.RemoveListener(-1), stage.ErrUnknownListener)
}

func TestBusNames(t *testing.T) {
	bus := stage.NewGameObject("a").Bus()
	require.NoError(t, bus.AddEvent(stage.NewEvent("on_hit")))
	require.NoError(t, bus.AddEvent(stage.NewEvent("on_death")))

	assert.Equal(t, []string{"on_collision", "on_death", "on_hit"}, bus.Names())
}
