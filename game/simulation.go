package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/rranshous/raceon/telemetry"
)

// trackSpeedFraction is how fast the player must move, as a fraction of
// top speed, before tires mark the ground.
const trackSpeedFraction = 0.35

// dustInterval throttles mud dust so a slog through a puddle reads as
// puffs instead of a solid plume.
const dustInterval = 0.12

// Update advances one windowed frame: input, then simulation steps at the
// measured frame time, then the camera. Draw closes out the perf tick.
func (g *Game) Update() {
	g.perf.StartTick()
	g.perf.StartPhase(telemetry.PhaseInput)
	g.handleInput()

	if g.paused {
		return
	}

	dt := float64(rl.GetFrameTime())
	if dt <= 0 {
		dt = headlessDT
	}

	if g.combat.gameOver {
		// The world freezes behind the game-over panel, but wreck
		// smoke still plays out.
		g.perf.StartPhase(telemetry.PhaseEffects)
		g.effects.Update(dt)
		return
	}

	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step(dt)
	}

	if player := g.sim.Player(); player != nil && player.Alive {
		g.cam.Follow(player.Position, dt)
	}
}

// UpdateHeadless advances fixed-dt simulation steps with no input, camera,
// or effects work.
func (g *Game) UpdateHeadless() {
	g.perf.StartTick()
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step(headlessDT)
	}
	g.perf.EndTick()
}

// step runs one simulation tick and everything downstream of it.
func (g *Game) step(dt float64) {
	g.perf.StartPhase(telemetry.PhaseSim)
	g.sim.Tick(dt)

	g.perf.StartPhase(telemetry.PhaseCombat)
	g.resolveCombat(dt)

	g.perf.StartPhase(telemetry.PhaseEffects)
	g.updateEffects(dt)

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.advanceTelemetry(dt)
}

// updateEffects ages particles and emits the player's ground cosmetics:
// tire tracks at speed and dust puffs in mud.
func (g *Game) updateEffects(dt float64) {
	if g.headless {
		return
	}
	g.effects.Update(dt)

	player := g.sim.Player()
	if player == nil || !player.Alive {
		return
	}
	speed := math.Abs(player.Speed)
	if speed > trackSpeedFraction*player.Type.MaxSpeed {
		g.effects.LayTracks(player.ID, player.Position, player.Angle, player.Width)
	}

	g.dustCooldown -= dt
	if g.dustCooldown <= 0 && speed > 30 && g.world.FrictionAt(player.Position) < 1 {
		g.effects.EmitMudDust(player.Position, player.Angle)
		g.dustCooldown = dustInterval
	}
}

// advanceTelemetry accumulates sim time and flushes a stats window when
// one completes.
func (g *Game) advanceTelemetry(dt float64) {
	if !g.collector.Advance(dt) {
		return
	}
	row := g.collector.Flush(g.Tick(), g.liveTotal(), g.combat.score, g.liveSpeeds())
	if err := g.output.WriteTelemetry(row); err != nil {
		g.telLog.Warn("telemetry write failed", zap.Error(err))
	}
	if err := g.output.WritePerf(g.perf.Stats(), row.WindowEndTick); err != nil {
		g.telLog.Warn("perf write failed", zap.Error(err))
	}
	g.logWindowStats(row)
}

// liveSpeeds samples every live vehicle's speed for the window stats.
func (g *Game) liveSpeeds() []float64 {
	vehicles := g.sim.Vehicles()
	speeds := make([]float64, 0, len(vehicles)+1)
	if p := g.sim.Player(); p != nil && p.Alive {
		speeds = append(speeds, math.Abs(p.Speed))
	}
	for _, v := range vehicles {
		if v.Alive {
			speeds = append(speeds, math.Abs(v.Speed))
		}
	}
	return speeds
}
