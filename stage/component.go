// Package stage implements a minimal 2D game-object runtime: named objects
// composed of pluggable components, a synchronous per-object event bus, a
// per-tick processor that performs collision notification and rendering, and
// a background timer that drives sprite animation.
package stage

import "github.com/plus3/stage2d/geom"

// Default tags assigned when a constructor is not given an explicit tag.
const (
	TagComponent   = "component"
	TagGameObject  = "gameobject"
	TagBoxCollider = "box_collider"
	TagSprite      = "sprite"
)

// Image is an opaque frame handle. The runtime never inspects image contents;
// it only passes them through to the rendering surface.
type Image any

// Component is a named, tagged unit of behavior attached to a GameObject.
// Concrete kinds advertise what they can do through capability interfaces
// (Movable, Collider, Renderable); new kinds are added by implementing those
// capabilities, not by extending a closed type catalog.
type Component interface {
	Name() string
	Tag() string
}

// Movable is anything that can be displaced by a vector or relocated to a
// point.
type Movable interface {
	MoveBy(v geom.Vector)
	MoveTo(p geom.Point)
}

// Collider is the capability the processor queries when gathering objects for
// the collision notification pass.
type Collider interface {
	Component
	Movable
	Bounds() *geom.Rect
}

// Renderable is the capability the processor queries when gathering visuals
// for the render pass.
type Renderable interface {
	Component
	Render()
}

// Texture is the external rendering surface a Sprite draws through. The host
// supplies the implementation; the runtime assumes SetImage and Render
// perform the actual blit.
type Texture interface {
	Movable
	SetImage(img Image)
	Render()
}

// component carries the identity shared by all built-in component kinds.
type component struct {
	name, tag string
}

func (c component) Name() string { return c.name }
func (c component) Tag() string  { return c.tag }

func pickTag(fallback string, tag []string) string {
	if len(tag) > 0 {
		return tag[0]
	}
	return fallback
}
