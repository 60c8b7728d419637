package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/rranshous/raceon/steering"
)

// readIntents samples the driving keys. Arrows and WASD both work.
func readIntents() steering.Intents {
	return steering.Intents{
		Accelerate: rl.IsKeyDown(rl.KeyUp) || rl.IsKeyDown(rl.KeyW),
		Brake:      rl.IsKeyDown(rl.KeyDown) || rl.IsKeyDown(rl.KeyS),
		SteerLeft:  rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA),
		SteerRight: rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD),
	}
}

// handleInput processes the shell keys and hands the driving keys to the
// player behavior. A and D belong to steering, so the debug overlay sits
// on F3.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyP) {
		if !g.combat.gameOver {
			g.paused = !g.paused
		}
	}

	if rl.IsKeyPressed(rl.KeyF3) {
		g.debugMode = !g.debugMode
	}

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	g.handleZoomInput()

	g.playerCtl.SetIntents(readIntents())
}

// handleZoomInput adjusts the camera zoom from the wheel and keyboard.
func (g *Game) handleZoomInput() {
	wheelMove := rl.GetMouseWheelMove()
	if wheelMove != 0 {
		zoomFactor := 1.0 + float64(wheelMove)*0.1
		g.cam.ZoomBy(zoomFactor)
	}

	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.cam.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.cam.ZoomBy(0.8)
	}
}

// handleResize propagates window size changes to the camera and HUD.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.screenW = int32(rl.GetScreenWidth())
	g.screenH = int32(rl.GetScreenHeight())
	g.cam.Resize(float64(g.screenW), float64(g.screenH))
}
