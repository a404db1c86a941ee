package stage

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunnerStats provides statistics about tick execution.
type RunnerStats struct {
	Ticks         int64
	Errors        int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

// Runner drives a processor over one scene at a fixed tick interval. The host
// owns the loop policy: tick errors are logged and counted, not fatal.
type Runner struct {
	proc  Processor
	scene *Scene
	log   *zap.Logger

	ticks    int64
	errors   int64
	minDur   time.Duration
	maxDur   time.Duration
	lastDur  time.Duration
	totalDur time.Duration
}

// NewRunner creates a runner for the given processor and scene. A nil logger
// disables logging.
func NewRunner(proc Processor, scene *Scene, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		proc:   proc,
		scene:  scene,
		log:    log,
		minDur: time.Duration(1<<63 - 1),
	}
}

// RunOnce executes a single tick and returns its error.
func (r *Runner) RunOnce() error {
	start := time.Now()
	err := r.proc.Process(r.scene)
	dur := time.Since(start)

	r.ticks++
	r.lastDur = dur
	r.totalDur += dur
	if dur < r.minDur {
		r.minDur = dur
	}
	if dur > r.maxDur {
		r.maxDur = dur
	}
	if err != nil {
		r.errors++
	}
	return err
}

// Run ticks the processor at the given interval until the context is
// cancelled. Tick errors are logged and the loop continues.
func (r *Runner) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.RunOnce(); err != nil {
				r.log.Error("tick failed",
					zap.String("scene", r.scene.Name()),
					zap.Error(err),
				)
			}
		}
	}
}

// Stats returns statistics about tick execution.
func (r *Runner) Stats() RunnerStats {
	avg := time.Duration(0)
	if r.ticks > 0 {
		avg = r.totalDur / time.Duration(r.ticks)
	}
	min := r.minDur
	if r.ticks == 0 {
		min = 0
	}
	return RunnerStats{
		Ticks:         r.ticks,
		Errors:        r.errors,
		MinDuration:   min,
		MaxDuration:   r.maxDur,
		AvgDuration:   avg,
		LastDuration:  r.lastDur,
		TotalDuration: r.totalDur,
	}
}
