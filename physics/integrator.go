// Package physics moves vehicles through the world. Behaviors decide angle
// and speed; this package decides where the vehicle actually ends up, by
// testing the intended move against terrain before committing it.
package physics

import (
	"github.com/rranshous/raceon/entity"
	"github.com/rranshous/raceon/events"
	"github.com/rranshous/raceon/vec"
	"github.com/rranshous/raceon/world"
)

const (
	// MaxStep caps a single integration step. Longer frames are subdivided
	// so a fast vehicle cannot tunnel through an obstacle in one jump.
	MaxStep = 1.0 / 15.0
	// MaxSubsteps bounds the subdivision per call; time beyond
	// MaxSubsteps steps is dropped rather than simulated.
	MaxSubsteps = 4
)

// Advance integrates v through dt seconds, splitting oversized frames into
// substeps of at most MaxStep each.
func Advance(v *entity.Vehicle, w *world.World, dt float64, bus *events.Bus) {
	for i := 0; i < MaxSubsteps && dt > 0; i++ {
		step := dt
		if step > MaxStep {
			step = MaxStep
		}
		Step(v, w, step, bus)
		dt -= step
	}
}

// Step integrates exactly one step. One of three things happens: the vehicle
// bounces off a rock, bounces off water, or the move commits and terrain
// friction applies. Velocity is rederived from angle and speed on every
// path, so it can never drift from them.
func Step(v *entity.Vehicle, w *world.World, dt float64, bus *events.Bus) {
	if !v.Alive {
		return
	}
	phys := &v.Type.Physics
	v.Velocity = vec.FromAngle(v.Angle, v.Speed)
	candidate := v.Position.Add(v.Velocity.Scale(dt))
	radius := v.CollisionRadius()

	if rock, ok := w.FirstRockHit(candidate, radius*phys.RockQueryMultiplier); ok {
		resolveBounce(v, rock, candidate, radius, bus, events.PlayerRockHit, events.EnemyRockHit)
		return
	}
	if pond, ok := w.FirstWaterHit(candidate, radius*phys.WaterQueryMultiplier); ok {
		resolveBounce(v, pond, candidate, radius, bus, events.PlayerWaterHit, events.EnemyWaterHit)
		return
	}

	v.Position = candidate
	applyTerrainFriction(v, w, dt)
	v.Velocity = vec.FromAngle(v.Angle, v.Speed)
}

// resolveBounce rejects the candidate move: the vehicle is pushed back off
// the obstacle from its pre-move position and its speed is kicked by the
// bounce factor, then the hit is published.
func resolveBounce(v *entity.Vehicle, o world.Obstacle, candidate vec.Vec2, radius float64, bus *events.Bus, playerType, enemyType events.Type) {
	phys := &v.Type.Physics
	collision := v.Position.Sub(o.Position)
	overlap := radius + o.Radius - candidate.Distance(o.Position)

	v.Position = v.Position.Add(collision.Normalize().Scale(phys.BounceDistance))
	v.Speed *= phys.BounceFactor
	v.Velocity = vec.FromAngle(v.Angle, v.Speed)

	t := enemyType
	if v.IsPlayer {
		t = playerType
	}
	bus.Publish(events.NewObstacleHit(t, v, o.Position, o.Radius, collision, overlap))
}

// applyTerrainFriction bleeds speed toward zero inside sticky zones. The
// drag never pulls speed below the type's floor, so mud slows a vehicle but
// cannot strand it; a vehicle already at or under the floor is left alone.
func applyTerrainFriction(v *entity.Vehicle, w *world.World, dt float64) {
	factor := w.FrictionAt(v.Position)
	if factor >= 1 {
		return
	}
	phys := &v.Type.Physics
	decel := (1 - factor) * phys.TerrainFrictionMultiplier * dt

	switch {
	case v.Speed > 0:
		floor := v.Type.MaxSpeed * phys.MinSpeedMultiplier
		if v.Speed > floor {
			v.Speed -= decel
			if v.Speed < floor {
				v.Speed = floor
			}
		}
	case v.Speed < 0:
		floor := -v.Type.MaxSpeed * phys.MinReverseSpeedMultiplier
		if v.Speed < floor {
			v.Speed += decel
			if v.Speed > floor {
				v.Speed = floor
			}
		}
	}
}
