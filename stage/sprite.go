package stage

import "github.com/plus3/stage2d/geom"

// Sprite is a Renderable component that draws through an external Texture
// and owns one Animation. Movement and drawing delegate to the texture; the
// animation pushes frame updates back through SetImage.
type Sprite struct {
	component
	texture   Texture
	animation *Animation
}

// NewSprite creates a sprite over the given texture. The optional tag
// overrides TagSprite.
func NewSprite(name string, texture Texture, tag ...string) *Sprite {
	s := &Sprite{
		component: component{name: name, tag: pickTag(TagSprite, tag)},
		texture:   texture,
	}
	s.animation = newAnimation(s)
	return s
}

// MoveBy shifts the sprite's texture by the given displacement.
func (s *Sprite) MoveBy(v geom.Vector) {
	s.texture.MoveBy(v)
}

// MoveTo relocates the sprite's texture.
func (s *Sprite) MoveTo(p geom.Point) {
	s.texture.MoveTo(p)
}

// SetImage forwards the displayed frame to the texture.
func (s *Sprite) SetImage(img Image) {
	s.texture.SetImage(img)
}

// Render asks the texture to draw itself.
func (s *Sprite) Render() {
	s.texture.Render()
}

// Animation returns the sprite's animation state machine.
func (s *Sprite) Animation() *Animation {
	return s.animation
}
