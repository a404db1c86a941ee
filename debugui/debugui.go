// Package debugui provides a Dear ImGui inspection overlay for stage worlds:
// an object browser over the scene registry, a component inspector for the
// selected object, and a frame stats window fed by a Runner.
package debugui

import (
	"github.com/plus3/stage2d/stage"
)

// Overlay bundles the three windows and wires the browser's selection into
// the inspector. Call Render between the ImGui backend's BeginFrame and
// EndFrame.
type Overlay struct {
	Browser   ObjectBrowser
	Inspector ComponentInspector
	Stats     FrameStats

	frameTimer FrameTimer
}

// NewOverlay creates an overlay keeping historyFrames of tick history in the
// stats window.
func NewOverlay(historyFrames int) *Overlay {
	return &Overlay{
		Stats:      NewFrameStats(historyFrames),
		frameTimer: NewFrameTimer(),
	}
}

// Render draws all three windows. runner may be nil when the host drives the
// processor itself; the stats window is skipped then.
func (o *Overlay) Render(world *stage.World, registry *stage.SceneRegistry, runner *stage.Runner) {
	o.Browser.Render(world, registry)
	o.Inspector.Render(world, o.Browser.Selected())
	if runner != nil {
		o.Stats.Render(runner, o.frameTimer.DeltaTime())
	}
}
