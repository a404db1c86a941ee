package stage

import "github.com/plus3/stage2d/geom"

// BoxCollider is a Collider wrapping an axis-aligned rectangle. Movement
// delegates to the rectangle.
type BoxCollider struct {
	component
	rect geom.Rect
}

// NewBoxCollider creates a collider over the given rectangle. The optional
// tag overrides TagBoxCollider.
func NewBoxCollider(name string, rect geom.Rect, tag ...string) *BoxCollider {
	return &BoxCollider{
		component: component{name: name, tag: pickTag(TagBoxCollider, tag)},
		rect:      rect,
	}
}

// MoveBy shifts the collider's rectangle by the given displacement.
func (b *BoxCollider) MoveBy(v geom.Vector) {
	b.rect.MoveBy(v)
}

// MoveTo relocates the collider's rectangle, preserving its size.
func (b *BoxCollider) MoveTo(p geom.Point) {
	b.rect.MoveTo(p)
}

// Bounds returns the collider's rectangle.
func (b *BoxCollider) Bounds() *geom.Rect {
	return &b.rect
}
