// Package ebiten adapts Ebiten images to the stage.Texture contract, so
// sprites can draw into an Ebiten game loop.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/stage2d/geom"
	"github.com/plus3/stage2d/stage"
)

// Texture is a stage.Texture backed by an *ebiten.Image. The host points it
// at the current frame's screen from its Draw callback; Render then blits the
// displayed image at the texture's position.
type Texture struct {
	img    *ebiten.Image
	pos    geom.Point
	screen *ebiten.Image
}

// NewTexture creates a texture displaying img at the origin.
func NewTexture(img *ebiten.Image) *Texture {
	return &Texture{img: img}
}

// SetScreen sets the render target for subsequent Render calls. Call it from
// ebiten.Game.Draw each frame before processing the scene.
func (t *Texture) SetScreen(screen *ebiten.Image) {
	t.screen = screen
}

// MoveBy shifts the draw position by the given displacement.
func (t *Texture) MoveBy(v geom.Vector) {
	t.pos.MoveBy(v)
}

// MoveTo relocates the draw position.
func (t *Texture) MoveTo(p geom.Point) {
	t.pos.MoveTo(p)
}

// Position returns the current draw position.
func (t *Texture) Position() geom.Point {
	return t.pos
}

// SetImage replaces the displayed image. Frames that are not *ebiten.Image
// are dropped; the runtime treats frames as opaque, so the mismatch can only
// be detected here.
func (t *Texture) SetImage(img stage.Image) {
	if ei, ok := img.(*ebiten.Image); ok {
		t.img = ei
	}
}

// Render blits the displayed image onto the current screen. Without a screen
// or an image there is nothing to draw.
func (t *Texture) Render() {
	if t.screen == nil || t.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(t.pos.X), float64(t.pos.Y))
	t.screen.DrawImage(t.img, op)
}
