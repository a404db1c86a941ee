package stage_test

import (
	"sync"

	"github.com/plus3/stage2d/geom"
	"github.com/plus3/stage2d/stage"
)

// fakeTexture records everything the runtime pushes into the rendering
// surface. Guarded because animation timers push frames from their own
// goroutines.
type fakeTexture struct {
	mu      sync.Mutex
	pos     geom.Point
	images  []stage.Image
	renders int
}

func (t *fakeTexture) MoveBy(v geom.Vector) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pos.MoveBy(v)
}

func (t *fakeTexture) MoveTo(p geom.Point) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pos.MoveTo(p)
}

func (t *fakeTexture) SetImage(img stage.Image) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.images = append(t.images, img)
}

func (t *fakeTexture) Render() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.renders++
}

func (t *fakeTexture) position() geom.Point {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pos
}

func (t *fakeTexture) lastImage() stage.Image {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.images) == 0 {
		return nil
	}
	return t.images[len(t.images)-1]
}

func (t *fakeTexture) imageCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.images)
}

func (t *fakeTexture) renderCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.renders
}
