package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/stage2d/stage"
)

// FrameStats plots tick durations and shows the runner's counters.
type FrameStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// NewFrameStats creates a stats window keeping historyFrames samples.
func NewFrameStats(historyFrames int) FrameStats {
	return FrameStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Render draws the stats window and records deltaTime into the history.
func (fs *FrameStats) Render(runner *stage.Runner, deltaTime float32) {
	if !imgui.BeginV("Frame Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	fs.frameHistory[fs.frameIndex] = deltaTime * 1000.0
	fs.frameIndex = (fs.frameIndex + 1) % fs.historyFrames

	stats := runner.Stats()

	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Errors: %d", stats.Errors))
	imgui.Text(fmt.Sprintf("Last: %v  Avg: %v", stats.LastDuration, stats.AvgDuration))
	imgui.Text(fmt.Sprintf("Min: %v  Max: %v", stats.MinDuration, stats.MaxDuration))

	var avgFrameTime float32
	for _, ft := range fs.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(fs.historyFrames)
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &fs.frameHistory[0], int32(len(fs.frameHistory)))

	imgui.End()
}

// FrameTimer measures the wall-clock delta between overlay renders.
type FrameTimer struct {
	lastFrameTime time.Time
}

// NewFrameTimer creates a timer starting now.
func NewFrameTimer() FrameTimer {
	return FrameTimer{lastFrameTime: time.Now()}
}

// DeltaTime returns the seconds since the previous call.
func (ft *FrameTimer) DeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
