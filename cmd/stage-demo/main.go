// Command stage-demo runs a headless scene: objects loaded from an embedded
// YAML file, a collision processor ticking at a fixed rate, animations cycling
// on background timers, and one object marching toward another until the
// collision channel fires. Rendering goes to the log instead of a window.
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/plus3/stage2d/geom"
	"github.com/plus3/stage2d/scenefile"
	"github.com/plus3/stage2d/stage"
)

//go:embed scene.yaml
var sceneYAML []byte

func main() {
	duration := flag.Duration("duration", 5*time.Second, "How long to run the demo for.")
	tick := flag.Duration("tick", 100*time.Millisecond, "Processor tick interval.")
	frame := flag.Duration("frame", 250*time.Millisecond, "Animation frame interval.")
	sceneName := flag.String("scene", "demo", "Scene to run.")
	verbose := flag.Bool("verbose", false, "Log every render call.")
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log, *duration, *tick, *frame, *sceneName, *verbose); err != nil {
		log.Fatal("demo failed", zap.Error(err))
	}
}

func run(log *zap.Logger, duration, tick, frame time.Duration, sceneName string, verbose bool) error {
	// 1. Load the world from the embedded scene file. Textures draw to the
	// log; images are just their names.
	loader := &scenefile.Loader{
		Texture: func(object, component string) (stage.Texture, error) {
			return newLogTexture(log, object, verbose), nil
		},
		Image: func(name string) (stage.Image, error) {
			return name, nil
		},
		Log: log,
	}
	world, registry, err := loader.LoadBytes(sceneYAML)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	scene, err := registry.Get(sceneName)
	if err != nil {
		return err
	}
	log.Info("scene loaded",
		zap.String("scene", scene.Name()),
		zap.Int("objects", scene.Len()),
	)

	// 2. Subscribe to every object's collision channel and start animations.
	for _, h := range scene.Handles() {
		obj, err := world.Get(h)
		if err != nil {
			return err
		}
		ev, err := obj.Bus().GetEvent(stage.EventCollision)
		if err != nil {
			return err
		}
		ev.AddListener(func(self, sender *stage.GameObject) error {
			log.Info("collision",
				zap.String("object", self.Name()),
				zap.String("sender", sender.Name()),
			)
			return nil
		})

		for _, c := range obj.Components() {
			sprite, ok := c.(*stage.Sprite)
			if !ok {
				continue
			}
			sprite.Animation().SetLogger(log)
			if err := sprite.Animation().Start(frame); err != nil {
				return fmt.Errorf("object %q: %w", obj.Name(), err)
			}
			defer sprite.Animation().Stop()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	// 3. Tick the processor and march the hero toward the crate concurrently.
	proc := stage.NewCollisionProcessor(world, log)
	runner := stage.NewRunner(proc, scene, log)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		runner.Run(ctx, tick)
		return nil
	})
	g.Go(func() error {
		return march(ctx, world, scene, tick)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	// 4. Dump the counters.
	rstats := runner.Stats()
	pstats := proc.Stats()
	log.Info("demo finished",
		zap.Int64("ticks", rstats.Ticks),
		zap.Int64("tickErrors", rstats.Errors),
		zap.Duration("avgTick", rstats.AvgDuration),
		zap.Int("notifications", pstats.Notifications),
	)
	return nil
}

// march moves the scene's first object right one pixel per tick until the
// context ends.
func march(ctx context.Context, world *stage.World, scene *stage.Scene, tick time.Duration) error {
	h, err := scene.At(0)
	if err != nil {
		return err
	}
	obj, err := world.Get(h)
	if err != nil {
		return err
	}

	step := geom.Vector{DX: 1, DY: 0}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			for _, c := range obj.Components() {
				if m, ok := c.(stage.Movable); ok {
					m.MoveBy(step)
				}
			}
		}
	}
}

// logTexture satisfies stage.Texture by logging instead of drawing.
type logTexture struct {
	mu      sync.Mutex
	log     *zap.Logger
	object  string
	verbose bool
	pos     geom.Point
	img     stage.Image
}

func newLogTexture(log *zap.Logger, object string, verbose bool) *logTexture {
	return &logTexture{log: log, object: object, verbose: verbose}
}

func (t *logTexture) MoveBy(v geom.Vector) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pos.MoveBy(v)
}

func (t *logTexture) MoveTo(p geom.Point) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pos.MoveTo(p)
}

func (t *logTexture) SetImage(img stage.Image) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.img = img
}

func (t *logTexture) Render() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.verbose {
		return
	}
	t.log.Debug("render",
		zap.String("object", t.object),
		zap.Int("x", t.pos.X),
		zap.Int("y", t.pos.Y),
		zap.Any("image", t.img),
	)
}
