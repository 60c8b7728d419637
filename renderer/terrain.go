// Package renderer draws the world, vehicles, and effects with raylib.
// Everything here is draw-only; no simulation state changes.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/rranshous/raceon/camera"
	"github.com/rranshous/raceon/vec"
	"github.com/rranshous/raceon/world"
)

// Terrain palette.
var (
	groundColor   = rl.Color{R: 112, G: 96, B: 70, A: 255}
	groundOutside = rl.Color{R: 58, G: 50, B: 38, A: 255}
	mudColor      = rl.Color{R: 82, G: 62, B: 38, A: 255}
	waterDeep     = rl.Color{R: 38, G: 92, B: 140, A: 255}
	waterRim      = rl.Color{R: 90, G: 150, B: 190, A: 255}
	rockColor     = rl.Color{R: 110, G: 108, B: 104, A: 255}
	rockRim       = rl.Color{R: 70, G: 68, B: 66, A: 255}
)

// TerrainRenderer draws the static world: ground, mud, water, rocks.
type TerrainRenderer struct{}

// NewTerrainRenderer creates a terrain renderer.
func NewTerrainRenderer() *TerrainRenderer {
	return &TerrainRenderer{}
}

// Draw renders the terrain under everything else.
func (r *TerrainRenderer) Draw(w *world.World, cam *camera.Camera) {
	if w == nil {
		return
	}

	r.drawGround(w, cam)

	for _, z := range w.Zones() {
		if !cam.IsVisible(z.Position, z.Radius) {
			continue
		}
		s := cam.WorldToScreen(z.Position)
		zr := float32(z.Radius * cam.Zoom)

		// Stickier mud reads darker.
		c := mudColor
		c.A = uint8(120 + 110*(1-z.Slowdown))
		rl.DrawCircleV(rl.Vector2{X: float32(s.X), Y: float32(s.Y)}, zr, c)
	}

	for _, o := range w.Water() {
		if !cam.IsVisible(o.Position, o.Radius) {
			continue
		}
		s := cam.WorldToScreen(o.Position)
		or := float32(o.Radius * cam.Zoom)
		rl.DrawCircleV(rl.Vector2{X: float32(s.X), Y: float32(s.Y)}, or, waterDeep)
		rl.DrawCircleLines(int32(s.X), int32(s.Y), or, waterRim)
	}

	for _, o := range w.Rocks() {
		if !cam.IsVisible(o.Position, o.Radius) {
			continue
		}
		s := cam.WorldToScreen(o.Position)
		or := float32(o.Radius * cam.Zoom)
		rl.DrawCircleV(rl.Vector2{X: float32(s.X), Y: float32(s.Y)}, or, rockColor)
		rl.DrawCircleLines(int32(s.X), int32(s.Y), or, rockRim)
	}
}

// drawGround fills the playable area, leaving the darker void visible
// when the camera view extends past the world edge.
func (r *TerrainRenderer) drawGround(w *world.World, cam *camera.Camera) {
	rl.ClearBackground(groundOutside)

	topLeft := cam.WorldToScreen(vec.New(0, 0))
	x := float32(topLeft.X)
	y := float32(topLeft.Y)
	rl.DrawRectangleV(
		rl.Vector2{X: x, Y: y},
		rl.Vector2{X: float32(w.Width * cam.Zoom), Y: float32(w.Height * cam.Zoom)},
		groundColor,
	)
}
