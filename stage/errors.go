package stage

import "errors"

// Failure conditions surfaced by the runtime. All of them are returned to the
// immediate caller of the failing operation; nothing is retried or recovered
// internally. Callers match with errors.Is.
var (
	// ErrUnknownComponent is returned when a component lookup misses.
	ErrUnknownComponent = errors.New("unknown component")

	// ErrUnknownEvent is returned when an event channel lookup misses.
	ErrUnknownEvent = errors.New("unknown event")

	// ErrUnknownScene is returned when a scene registry lookup misses.
	ErrUnknownScene = errors.New("unknown scene")

	// ErrUnknownObject is returned when a world handle no longer resolves.
	ErrUnknownObject = errors.New("unknown object")

	// ErrUnknownListener is returned when a listener index is out of range.
	ErrUnknownListener = errors.New("unknown listener")

	// ErrIndexOutOfRange is returned for an invalid scene index.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDuplicateEvent is returned when registering an event channel whose
	// name is already taken on the bus, regardless of the default flag.
	ErrDuplicateEvent = errors.New("duplicate event")

	// ErrProtectedEvent is returned when removing a default event channel.
	ErrProtectedEvent = errors.New("protected event")

	// ErrAnimationRunning is returned by Start on an enabled animation.
	ErrAnimationRunning = errors.New("animation already running")

	// ErrAnimationStopped is returned by Stop on a disabled animation.
	ErrAnimationStopped = errors.New("animation not running")

	// ErrNoFrames is returned when an animation tick finds no frames for the
	// active status label.
	ErrNoFrames = errors.New("no frames for status")
)
