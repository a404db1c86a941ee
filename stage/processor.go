package stage

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Processor is the per-tick system swept over a scene. Specializing the frame
// behavior means supplying another implementation; there is no partial hook
// into the built-in sweep.
type Processor interface {
	Process(scene *Scene) error
}

// SweepStats describes processor execution. Counters other than Sweeps and
// the durations refer to the most recent sweep.
type SweepStats struct {
	Sweeps        int64
	Objects       int
	Colliders     int
	Renderables   int
	Notifications int
	LastDuration  time.Duration
	TotalDuration time.Duration
}

// bearer pairs a collider-bearing object with its first collider, in scene
// discovery order.
type bearer struct {
	obj *GameObject
	col Collider
}

// SweepProcessor is the default per-tick system. One pass partitions the
// scene into collider-bearing objects and renderables; every pair of distinct
// collider bearers is then notified of each other through their
// EventCollision channels (no geometric test gates the firing; see
// CollisionProcessor for the overlap-aware variant); finally all renderables
// draw in discovery order.
type SweepProcessor struct {
	world *World
	log   *zap.Logger
	stats SweepStats
}

// NewSweepProcessor creates a processor resolving scene handles against
// world. A nil logger disables logging.
func NewSweepProcessor(world *World, log *zap.Logger) *SweepProcessor {
	if log == nil {
		log = zap.NewNop()
	}
	return &SweepProcessor{world: world, log: log}
}

// Process runs one sweep. For N collider-bearing objects it fires exactly
// N*(N-1) collision notifications: each object of a pair once, with the other
// as sender. A listener error aborts the rest of the sweep and is returned;
// rendering then does not happen that tick.
func (p *SweepProcessor) Process(scene *Scene) error {
	start := time.Now()

	bearers, renderables, objects := collect(scene, p.world, p.log)

	notifications := 0
	for i, a := range bearers {
		for _, b := range bearers[i+1:] {
			if err := notifyPair(a.obj, b.obj); err != nil {
				return err
			}
			notifications += 2
		}
	}

	for _, r := range renderables {
		r.Render()
	}

	p.stats.record(objects, len(bearers), len(renderables), notifications, time.Since(start))
	p.log.Debug("sweep complete",
		zap.String("scene", scene.Name()),
		zap.Int("objects", objects),
		zap.Int("colliders", len(bearers)),
		zap.Int("notifications", notifications),
	)
	return nil
}

// Stats returns execution statistics.
func (p *SweepProcessor) Stats() SweepStats {
	return p.stats
}

// CollisionProcessor is the overlap-aware specialization of the sweep: the
// pair notification only fires when the two colliders' bounds intersect.
type CollisionProcessor struct {
	world *World
	log   *zap.Logger
	stats SweepStats
}

// NewCollisionProcessor creates an overlap-gated processor resolving scene
// handles against world. A nil logger disables logging.
func NewCollisionProcessor(world *World, log *zap.Logger) *CollisionProcessor {
	if log == nil {
		log = zap.NewNop()
	}
	return &CollisionProcessor{world: world, log: log}
}

// Process runs one sweep, notifying only pairs whose bounds overlap, then
// renders all renderables in discovery order.
func (p *CollisionProcessor) Process(scene *Scene) error {
	start := time.Now()

	bearers, renderables, objects := collect(scene, p.world, p.log)

	notifications := 0
	for i, a := range bearers {
		for _, b := range bearers[i+1:] {
			if !a.col.Bounds().Overlaps(*b.col.Bounds()) {
				continue
			}
			if err := notifyPair(a.obj, b.obj); err != nil {
				return err
			}
			notifications += 2
		}
	}

	for _, r := range renderables {
		r.Render()
	}

	p.stats.record(objects, len(bearers), len(renderables), notifications, time.Since(start))
	return nil
}

// Stats returns execution statistics.
func (p *CollisionProcessor) Stats() SweepStats {
	return p.stats
}

// collect partitions a scene in a single pass: collider-bearing objects (one
// entry per object, first collider wins) and all renderables, both in
// discovery order. Dangling handles are logged and skipped rather than
// failing the whole sweep.
func collect(scene *Scene, world *World, log *zap.Logger) (bearers []bearer, renderables []Renderable, objects int) {
	for _, h := range scene.Handles() {
		obj, err := world.Get(h)
		if err != nil {
			log.Warn("skipping dangling handle",
				zap.String("scene", scene.Name()),
				zap.Uint64("handle", uint64(h)),
			)
			continue
		}
		objects++

		var firstCollider Collider
		for _, c := range obj.Components() {
			if col, ok := c.(Collider); ok && firstCollider == nil {
				firstCollider = col
			}
			if r, ok := c.(Renderable); ok {
				renderables = append(renderables, r)
			}
		}
		if firstCollider != nil {
			bearers = append(bearers, bearer{obj: obj, col: firstCollider})
		}
	}
	return bearers, renderables, objects
}

// notifyPair signals both directions of one unordered pair.
func notifyPair(a, b *GameObject) error {
	if err := a.Bus().InvokeEvent(EventCollision, b); err != nil {
		return fmt.Errorf("notify %q of %q: %w", a.Name(), b.Name(), err)
	}
	if err := b.Bus().InvokeEvent(EventCollision, a); err != nil {
		return fmt.Errorf("notify %q of %q: %w", b.Name(), a.Name(), err)
	}
	return nil
}

func (s *SweepStats) record(objects, colliders, renderables, notifications int, dur time.Duration) {
	s.Sweeps++
	s.Objects = objects
	s.Colliders = colliders
	s.Renderables = renderables
	s.Notifications = notifications
	s.LastDuration = dur
	s.TotalDuration += dur
}
