package debug

import (
	"fmt"
	"runtime"

	"axis-gizmo/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	statsFontSize   = 20
	statsPadding    = 12
	statsLineHeight = statsFontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws the rendering statistics overlay. Off by default.
type Debug struct {
	ShowStatistics bool
	frameCount     uint32
	lines          []string
	lastMemStats   runtime.MemStats
}

// New returns a Debug overlay with statistics hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowStatistics sets whether the statistics block is drawn (top-left, green).
func (d *Debug) SetShowStatistics(show bool) {
	d.ShowStatistics = show
}

// Lines formats the statistics block for the given frame rate, scene stats and draw count.
func Lines(fps int32, st scene.Stats, draws int, heapBytes uint64) []string {
	return []string{
		fmt.Sprintf("FPS: %d", fps),
		fmt.Sprintf("Nodes: %d  Geometry: %d  Lights: %d  Cameras: %d", st.Nodes, st.Geometries, st.Lights, st.Cameras),
		fmt.Sprintf("Draws: %d", draws),
		fmt.Sprintf("Mem: %.2f MiB", float64(heapBytes)/(1024*1024)),
	}
}

// Draw renders the statistics block when enabled. Call after EndMode3D.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw(st scene.Stats, draws int) {
	if !d.ShowStatistics {
		return
	}
	d.frameCount++
	if d.lines == nil || d.frameCount%updateInterval == 0 {
		runtime.ReadMemStats(&d.lastMemStats)
		d.lines = Lines(rl.GetFPS(), st, draws, d.lastMemStats.Alloc)
	}
	y := int32(statsPadding)
	for _, line := range d.lines {
		rl.DrawText(line, statsPadding, y, statsFontSize, rl.Green)
		y += statsLineHeight
	}
}
