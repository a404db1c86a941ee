// Package ebiten provides Dear ImGui backend integration for hosts driving
// the overlay from an Ebiten game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// Backend wraps the Ebiten-specific Dear ImGui backend. Call BeginFrame
// before Overlay.Render and EndFrame after, then Draw from ebiten.Game.Draw.
type Backend struct {
	*ebitenbackend.EbitenBackend
}
