package graphics

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	windowTitle  = "axis gizmo"
)

// Run opens a resizable window and runs the main loop. Each frame it calls update (e.g. camera
// control), clears to background and calls draw. ESC closes the window.
func Run(background color.RGBA, targetFPS int32, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, windowTitle)
	defer rl.CloseWindow()

	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(background)
		draw()
		rl.EndDrawing()
	}
}
