// Terrain generation preview tool - tune world gen parameters with sliders.
//
// Usage: go run ./cmd/worldview
package main

import (
	"fmt"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/rranshous/raceon/camera"
	"github.com/rranshous/raceon/config"
	"github.com/rranshous/raceon/renderer"
	"github.com/rranshous/raceon/vec"
	"github.com/rranshous/raceon/world"
)

const (
	windowWidth  = 1160
	windowHeight = 660
	previewW     = 800
	previewH     = 600
	panelWidth   = windowWidth - previewW - 30
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}
	gen := cfg.World.Gen
	worldW := float64(cfg.World.Width)
	worldH := float64(cfg.World.Height)

	params := world.GenParams{
		Seed:             12345,
		Ponds:            gen.Ponds,
		PondRadiusMin:    gen.PondRadiusMin,
		PondRadiusMax:    gen.PondRadiusMax,
		Rocks:            gen.Rocks,
		RockRadiusMin:    gen.RockRadiusMin,
		RockRadiusMax:    gen.RockRadiusMax,
		MudPatches:       gen.MudPatches,
		MudRadiusMin:     gen.MudRadiusMin,
		MudRadiusMax:     gen.MudRadiusMax,
		MudSlowdownMin:   gen.MudSlowdownMin,
		MudSlowdownMax:   gen.MudSlowdownMax,
		EdgeMargin:       gen.EdgeMargin,
		MinSpacing:       gen.MinSpacing,
		StartClearRadius: gen.StartClearRadius,
	}
	defaults := params

	rl.InitWindow(windowWidth, windowHeight, "World Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	cam := camera.New(previewW, previewH, worldW, worldH, 6.0)
	cam.SetZoom(cam.MinZoom)
	cam.SnapTo(vec.New(worldW/2, worldH/2))

	terrain := renderer.NewTerrainRenderer()
	debug := renderer.NewDebugRenderer()

	w := world.Generate(worldW, worldH, params)
	showGrid := false
	needsRegen := false

	for !rl.WindowShouldClose() {
		if needsRegen {
			w = world.Generate(worldW, worldH, params)
			needsRegen = false
		}

		rl.BeginDrawing()

		terrain.Draw(w, cam)
		if showGrid {
			debug.DrawAvoidanceGrid(w, cam)
		}
		rl.DrawRectangleLines(0, 0, previewW, previewH, rl.DarkGray)

		// Feature counts under the preview
		statsY := int32(previewH + 12)
		rl.DrawText(
			fmt.Sprintf("Ponds: %d  Rocks: %d  Mud: %d  Pond anchors: %d",
				len(w.Water()), len(w.Rocks()), len(w.Zones()), len(w.Anchors(world.AnchorPond))),
			10, statsY, 16, rl.DarkGray,
		)
		rl.DrawText(fmt.Sprintf("Seed: %d", params.Seed), 10, statsY+22, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewW + 20)
		panelY := float32(10)
		rl.DrawRectangle(previewW+10, 0, windowWidth-previewW-10, windowHeight, rl.RayWhite)

		rl.DrawText("World Generation", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		params.Ponds, needsRegen = intSlider(panelX, &panelY, "Ponds", params.Ponds, 0, 12, needsRegen)
		params.Rocks, needsRegen = intSlider(panelX, &panelY, "Rocks", params.Rocks, 0, 30, needsRegen)
		params.MudPatches, needsRegen = intSlider(panelX, &panelY, "Mud patches", params.MudPatches, 0, 20, needsRegen)
		params.MinSpacing, needsRegen = floatSlider(panelX, &panelY, "Min spacing", params.MinSpacing, 20, 120, needsRegen)
		params.StartClearRadius, needsRegen = floatSlider(panelX, &panelY, "Start clearing", params.StartClearRadius, 100, 400, needsRegen)
		params.PondRadiusMax, needsRegen = floatSlider(panelX, &panelY, "Pond radius max", params.PondRadiusMax, params.PondRadiusMin, 160, needsRegen)
		params.MudRadiusMax, needsRegen = floatSlider(panelX, &panelY, "Mud radius max", params.MudRadiusMax, params.MudRadiusMin, 220, needsRegen)

		panelY += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 140, Height: 30}, "Random Seed") {
			params.Seed = int64(rand.Int31n(99999))
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 150, Y: panelY, Width: 140, Height: 30}, "Reset Defaults") {
			params = defaults
			needsRegen = true
		}
		panelY += 40
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 140, Height: 30}, toggleText(showGrid, "Grid: on", "Grid: off")) {
			showGrid = !showGrid
		}

		rl.EndDrawing()
	}
}

// intSlider draws a labeled slider for an integer parameter and reports
// whether it changed.
func intSlider(x float32, y *float32, label string, value, min, max int, regen bool) (int, bool) {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	next := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf("%d", min), fmt.Sprintf("%d", max),
		float32(value), float32(min), float32(max),
	)
	rl.DrawText(fmt.Sprintf("%d", value), int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 35
	if int(next) != value {
		return int(next), true
	}
	return value, regen
}

// floatSlider is intSlider for float64 parameters.
func floatSlider(x float32, y *float32, label string, value, min, max float64, regen bool) (float64, bool) {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	next := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf("%.0f", min), fmt.Sprintf("%.0f", max),
		float32(value), float32(min), float32(max),
	)
	rl.DrawText(fmt.Sprintf("%.0f", value), int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 35
	if float64(next) != value {
		return float64(next), true
	}
	return value, regen
}

func toggleText(on bool, yes, no string) string {
	if on {
		return yes
	}
	return no
}
