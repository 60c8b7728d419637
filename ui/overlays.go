package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// MenuAction is what the player picked on a menu overlay.
type MenuAction int

const (
	MenuNone MenuAction = iota
	MenuResume
	MenuRestart
	MenuQuit
)

// Menus draws the pause and game-over overlays.
type Menus struct {
	renderer *Renderer
}

// NewMenus creates the overlay drawer.
func NewMenus() *Menus {
	return &Menus{renderer: NewRenderer()}
}

func (m *Menus) dimBackground(screenW, screenH int32) {
	rl.DrawRectangle(0, 0, screenW, screenH, rl.Color{R: 0, G: 0, B: 0, A: 140})
}

// DrawPause renders the pause menu and returns the chosen action.
func (m *Menus) DrawPause(screenW, screenH int32) MenuAction {
	m.dimBackground(screenW, screenH)

	panelW := int32(260)
	panelH := int32(190)
	px := screenW/2 - panelW/2
	py := screenH/2 - panelH/2
	m.renderer.DrawPanel(px, py, panelW, panelH)

	rl.DrawText("Paused", px+panelW/2-36, py+16, m.renderer.Theme.TitleFontSize, rl.White)

	bx := float32(px + 30)
	bw := float32(panelW - 60)
	by := float32(py + 56)

	if gui.Button(rl.Rectangle{X: bx, Y: by, Width: bw, Height: 32}, "Resume") {
		return MenuResume
	}
	by += 42
	if gui.Button(rl.Rectangle{X: bx, Y: by, Width: bw, Height: 32}, "Restart") {
		return MenuRestart
	}
	by += 42
	if gui.Button(rl.Rectangle{X: bx, Y: by, Width: bw, Height: 32}, "Quit") {
		return MenuQuit
	}

	return MenuNone
}

// DrawGameOver renders the end screen with the final tally.
func (m *Menus) DrawGameOver(screenW, screenH int32, score, bestStreak, wrecks int) MenuAction {
	m.dimBackground(screenW, screenH)

	panelW := int32(300)
	panelH := int32(230)
	px := screenW/2 - panelW/2
	py := screenH/2 - panelH/2
	m.renderer.DrawPanel(px, py, panelW, panelH)

	rl.DrawText("Wrecked", px+panelW/2-48, py+16, m.renderer.Theme.TitleFontSize, m.renderer.Theme.AlertColor)

	y := py + 56
	y = m.renderer.DrawLabelValue(px+30, y, "Score", fmt.Sprintf("%d", score))
	y = m.renderer.DrawLabelValue(px+30, y, "Streak", fmt.Sprintf("x%d", bestStreak))
	y = m.renderer.DrawLabelValue(px+30, y, "Wrecks", fmt.Sprintf("%d", wrecks))
	y += 10

	bx := float32(px + 30)
	bw := float32(panelW - 60)

	if gui.Button(rl.Rectangle{X: bx, Y: float32(y), Width: bw, Height: 32}, "Restart") {
		return MenuRestart
	}
	if gui.Button(rl.Rectangle{X: bx, Y: float32(y) + 42, Width: bw, Height: 32}, "Quit") {
		return MenuQuit
	}

	return MenuNone
}
