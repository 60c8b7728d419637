package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/rranshous/raceon/telemetry"
	"github.com/rranshous/raceon/ui"
)

const controlsHint = "arrows/wasd drive   space pause   f3 debug   wheel zoom"

// Draw renders one frame: terrain, tracks, vehicles, particles, debug
// overlays, HUD, and whichever menu is active.
func (g *Game) Draw() {
	g.perf.StartPhase(telemetry.PhaseRender)

	// Shake shifts a copy of the camera so the real one never drifts.
	cam := *g.cam
	shake := g.effects.ShakeOffset()
	cam.X += shake.X
	cam.Y += shake.Y

	rl.BeginDrawing()

	g.terrainR.Draw(g.world, &cam)
	g.particleR.DrawTracks(g.effects, &cam)
	g.vehicleR.Draw(g.sim.Vehicles(), g.sim.Player(), &cam)
	g.particleR.DrawParticles(g.effects, &cam)

	if g.debugMode {
		g.debugR.DrawAvoidanceGrid(g.world, &cam)
		g.debugR.DrawVehicleDebug(g.sim.Vehicles(), g.sim.Player(), &cam)
	}

	g.hud.Draw(g.hudData())
	g.hud.DrawControls(g.screenH, controlsHint)
	g.drawMenus()

	rl.EndDrawing()

	g.perf.EndTick()
	g.perf.RecordFrame()
}

// drawMenus shows the pause or game-over panel and applies its action.
func (g *Game) drawMenus() {
	if g.combat.gameOver {
		switch g.menus.DrawGameOver(g.screenW, g.screenH, g.combat.score, g.combat.bestStreak, g.combat.kills) {
		case ui.MenuRestart:
			g.wantsRestart = true
		case ui.MenuQuit:
			g.wantsQuit = true
		}
		return
	}
	if g.paused {
		switch g.menus.DrawPause(g.screenW, g.screenH) {
		case ui.MenuResume:
			g.paused = false
		case ui.MenuRestart:
			g.wantsRestart = true
		case ui.MenuQuit:
			g.wantsQuit = true
		}
	}
}

func (g *Game) hudData() ui.HUDData {
	player := g.sim.Player()
	return ui.HUDData{
		Score:        g.combat.score,
		Streak:       g.combat.streak,
		Health:       g.combat.health,
		MaxHealth:    g.combat.maxHealth,
		LiveVehicles: g.liveFleet(),
		Invulnerable: g.combat.invulnFor > 0 && player != nil && player.Alive,
		Tick:         g.Tick(),
		FPS:          rl.GetFPS(),
		Paused:       g.paused,
		DebugOn:      g.debugMode,
		ScreenWidth:  g.screenW,
		ScreenHeight: g.screenH,
	}
}
