package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/stage2d/stage"
)

// ComponentInspector shows the selected object's identity, event channels and
// components, with capability-specific detail for colliders and sprites.
type ComponentInspector struct{}

// Render draws the inspector window for the object behind selected.
func (ci *ComponentInspector) Render(world *stage.World, selected stage.Handle) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if selected == 0 {
		imgui.Text("No object selected")
		imgui.End()
		return
	}

	obj, err := world.Get(selected)
	if err != nil {
		imgui.Text(fmt.Sprintf("Handle %d no longer resolves", selected))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Name: %s", obj.Name()))
	imgui.Text(fmt.Sprintf("Tag: %s", obj.Tag()))
	imgui.Text(fmt.Sprintf("ID: %s", obj.ID()))
	imgui.Separator()

	if imgui.TreeNodeStr("Event Channels") {
		for _, name := range obj.Bus().Names() {
			ev, err := obj.Bus().GetEvent(name)
			if err != nil {
				continue
			}
			imgui.BulletText(fmt.Sprintf("%s (%d listeners)", name, ev.Len()))
		}
		imgui.TreePop()
	}

	for _, c := range obj.Components() {
		if imgui.TreeNodeStr(fmt.Sprintf("%s (%s)", c.Name(), c.Tag())) {
			ci.renderComponent(c)
			imgui.TreePop()
		}
	}

	imgui.End()
}

func (ci *ComponentInspector) renderComponent(c stage.Component) {
	if col, ok := c.(stage.Collider); ok {
		bounds := col.Bounds()
		imgui.Text(fmt.Sprintf("UL: (%d, %d)", bounds.UL.X, bounds.UL.Y))
		imgui.Text(fmt.Sprintf("BR: (%d, %d)", bounds.BR.X, bounds.BR.Y))
		imgui.Text(fmt.Sprintf("Size: %d x %d", bounds.Width(), bounds.Height()))
	}

	if sprite, ok := c.(*stage.Sprite); ok {
		anim := sprite.Animation()
		imgui.Text(fmt.Sprintf("Animation: %s", anim.State()))
		imgui.Text(fmt.Sprintf("Status: %q", anim.Status()))
		imgui.Text(fmt.Sprintf("Frames: %d", len(anim.Frames(anim.Status()))))
	}

	if _, ok := c.(stage.Renderable); ok {
		imgui.Text("Renderable")
	}
	if _, ok := c.(stage.Movable); ok {
		imgui.Text("Movable")
	}
}
