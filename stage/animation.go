package stage

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// AnimationState is the animation's lifecycle state.
type AnimationState int

const (
	// AnimationDisabled means no background task is cycling frames.
	AnimationDisabled AnimationState = iota
	// AnimationEnabled means a periodic task is advancing frames.
	AnimationEnabled
)

// String implements fmt.Stringer.
func (s AnimationState) String() string {
	switch s {
	case AnimationDisabled:
		return "disabled"
	case AnimationEnabled:
		return "enabled"
	default:
		return fmt.Sprintf("AnimationState(%d)", int(s))
	}
}

// Animation cycles a sprite through per-status frame sequences. It is owned
// by exactly one Sprite and pushes frame updates through it. Frames advance
// either from the animation's own periodic timer (Start/Stop) or by the host
// calling Advance from its frame loop.
//
// Frame data and state are guarded by a mutex: the timer goroutine mutates
// them while the processor's sweep renders the sprite.
type Animation struct {
	mu     sync.Mutex
	sprite *Sprite
	frames map[string][]Image
	status string
	state  AnimationState
	timer  Timer
	log    *zap.Logger
}

func newAnimation(sprite *Sprite) *Animation {
	return &Animation{
		sprite: sprite,
		frames: make(map[string][]Image),
		log:    zap.NewNop(),
	}
}

// SetLogger routes background-tick failures to the given logger. Timer
// callbacks run off any caller's stack, so their errors can only be logged.
func (a *Animation) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	a.mu.Lock()
	a.log = log
	a.mu.Unlock()
}

// SetFrames installs the frame sequence for a status label, replacing any
// previous sequence. The slice is copied.
func (a *Animation) SetFrames(status string, frames []Image) {
	a.mu.Lock()
	defer a.mu.Unlock()
	seq := make([]Image, len(frames))
	copy(seq, frames)
	a.frames[status] = seq
}

// Frames returns a copy of the current sequence for a status label.
func (a *Animation) Frames(status string) []Image {
	a.mu.Lock()
	defer a.mu.Unlock()
	seq := make([]Image, len(a.frames[status]))
	copy(seq, a.frames[status])
	return seq
}

// SetStatus selects which frame sequence is cycling.
func (a *Animation) SetStatus(status string) {
	a.mu.Lock()
	a.status = status
	a.mu.Unlock()
}

// Status returns the active status label.
func (a *Animation) Status() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// State returns the current lifecycle state. Read-only.
func (a *Animation) State() AnimationState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Start transitions the animation to enabled and begins advancing frames
// every interval on a background task. Returns ErrAnimationRunning if the
// animation is already enabled.
func (a *Animation) Start(interval time.Duration) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state == AnimationEnabled {
		return fmt.Errorf("start animation: %w", ErrAnimationRunning)
	}
	a.state = AnimationEnabled
	a.timer.SetInterval(a.tick, interval)
	return nil
}

// Stop signals the background task to exit and resets the animation to
// disabled, so it can be started again. Returns ErrAnimationStopped if the
// animation is not enabled. Stop does not wait for the task: a tick whose
// wait has already elapsed may still push one more frame.
func (a *Animation) Stop() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state == AnimationDisabled {
		return fmt.Errorf("stop animation: %w", ErrAnimationStopped)
	}
	a.timer.Stop()
	a.state = AnimationDisabled
	return nil
}

// Advance performs one animation tick: the sprite's displayed frame becomes
// the first frame of the active sequence, and the sequence rotates left by
// one. Returns ErrNoFrames if the active status has no frames; the sequence
// is never indexed blindly.
func (a *Animation) Advance() error {
	a.mu.Lock()
	seq := a.frames[a.status]
	if len(seq) == 0 {
		status := a.status
		a.mu.Unlock()
		return fmt.Errorf("status %q: %w", status, ErrNoFrames)
	}
	next := seq[0]
	copy(seq, seq[1:])
	seq[len(seq)-1] = next
	a.mu.Unlock()

	// Outside the lock: the texture is external code.
	a.sprite.SetImage(next)
	return nil
}

// tick is the timer callback. It drops ticks that race a Stop and logs
// failures, since there is no caller to return them to.
func (a *Animation) tick() {
	if a.State() != AnimationEnabled {
		return
	}
	if err := a.Advance(); err != nil {
		a.mu.Lock()
		log := a.log
		a.mu.Unlock()
		log.Warn("animation tick failed",
			zap.String("sprite", a.sprite.Name()),
			zap.Error(err),
		)
	}
}
