// Package steering decides what each vehicle wants: behaviors turn a
// vehicle's angle and speed toward a goal, and the physics integrator
// decides what the terrain lets happen. Behaviors never write position.
//
// Behavior instances are stateless and shared across every vehicle of a
// type; per-vehicle scratch lives in the vehicle's SteeringState.
package steering

import (
	"math"
	"math/rand"
	"time"

	"github.com/rranshous/raceon/entity"
	"github.com/rranshous/raceon/vec"
	"github.com/rranshous/raceon/world"
)

const (
	// sampleInterval throttles avoidance grid probes per vehicle.
	sampleInterval = 500 * time.Millisecond

	// avoidWeight blends the held avoidance vector three-to-one against
	// the behavior's own target direction.
	avoidWeight = 0.75
	// avoidTurnBoost widens the turn budget while dodging.
	avoidTurnBoost = 1.5

	// arriveDistance is how close to the target counts as arrived; inside
	// it the vehicle coasts.
	arriveDistance = 10.0

	// stuckSpeed is the movement rate below which a vehicle counts as
	// stuck, in units/sec.
	stuckSpeed = 5.0
)

// lookaheads are the probe distances along the current facing, nearest
// first. The first flagged cell wins.
var lookaheads = [3]float64{60, 100, 140}

// Behavior steers one vehicle for one tick of dt seconds.
type Behavior interface {
	Update(v *entity.Vehicle, w *world.World, dt float64)
}

// Pursuer is implemented by behaviors that chase a moving mark. The
// simulation pushes the fresh position before each update; a behavior that
// stops hearing pushes keeps hunting the last position it saw.
type Pursuer interface {
	SetQuarry(v *entity.Vehicle, target vec.Vec2)
}

// Registry maps behavior names to shared instances.
type Registry struct {
	behaviors map[string]Behavior
}

// NewRegistry returns an empty behavior registry.
func NewRegistry() *Registry {
	return &Registry{behaviors: make(map[string]Behavior)}
}

// Register adds a behavior under name, replacing any previous entry.
func (r *Registry) Register(name string, b Behavior) {
	r.behaviors[name] = b
}

// Lookup returns the behavior registered under name.
func (r *Registry) Lookup(name string) (Behavior, bool) {
	b, ok := r.behaviors[name]
	return b, ok
}

// core carries what the AI behaviors share: the RNG driving wander and edge
// picks, and a clock hook so tests can drive the avoidance throttle.
type core struct {
	rng *rand.Rand
	now func() time.Time
}

func newCore(rng *rand.Rand, now func() time.Time) core {
	if now == nil {
		now = time.Now
	}
	return core{rng: rng, now: now}
}

// drive is the shared steering pipeline: stuck tracking, the avoidance
// cache, wander drift, then a blended heading fed through the turn clamp
// and throttle. targetWeight and wanderWeight apply when not avoiding.
func (c *core) drive(v *entity.Vehicle, w *world.World, dt, targetWeight, wanderWeight float64) {
	st := &v.Steering

	toTarget := st.Target.Sub(v.Position)
	if toTarget.Length() < arriveDistance {
		coast(v, dt)
		return
	}

	c.trackStuck(v, dt)
	c.updateAvoidance(v, w)
	st.WanderAngle += (c.rng.Float64() - 0.5) * v.Type.AI.WanderStrength * dt

	targetDir := toTarget.Normalize()
	turnSpeed := v.Type.TurnSpeed
	var desired vec.Vec2
	if st.Avoiding {
		desired = st.Avoid.Scale(avoidWeight).Add(targetDir.Scale(1 - avoidWeight)).Normalize()
		turnSpeed *= avoidTurnBoost
	} else {
		wanderDir := vec.FromAngle(st.WanderAngle, 1)
		desired = targetDir.Scale(targetWeight).Add(wanderDir.Scale(wanderWeight))
	}

	steerToward(v, desired.Angle(), turnSpeed, dt)
	throttle(v, dt)
}

// updateAvoidance maintains the cached steer-away vector: a held vector
// persists for the type's avoid duration, then rests for its cooldown; when
// neither applies the grid is probed at most every sampleInterval.
func (c *core) updateAvoidance(v *entity.Vehicle, w *world.World) {
	st := &v.Steering
	ai := &v.Type.AI
	now := c.now()

	if st.Avoiding {
		if now.Before(st.AvoidExpires) {
			return
		}
		st.Avoiding = false
		st.CooldownUntil = now.Add(seconds(ai.AvoidCooldown))
	}
	if now.Before(st.CooldownUntil) || now.Before(st.NextSample) {
		return
	}
	st.NextSample = now.Add(sampleInterval)

	for _, dist := range lookaheads {
		probe := v.Position.Add(vec.FromAngle(v.Angle, dist))
		if dir, ok := w.AvoidanceAt(probe); ok {
			st.Avoid = dir
			st.Avoiding = true
			st.AvoidExpires = now.Add(seconds(ai.AvoidDuration))
			return
		}
	}
}

// trackStuck watches for a vehicle grinding in place. Once movement stays
// under stuckSpeed for the type's stuck timeout, the wander heading flips
// and the avoidance throttle is cleared for an immediate resample.
func (c *core) trackStuck(v *entity.Vehicle, dt float64) {
	st := &v.Steering
	if !st.HasLastPos {
		st.LastPos = v.Position
		st.HasLastPos = true
		return
	}
	moved := v.Position.Distance(st.LastPos)
	st.LastPos = v.Position

	if dt <= 0 {
		return
	}
	if moved/dt < stuckSpeed {
		st.StuckFor += dt
	} else {
		st.StuckFor = 0
	}
	if st.StuckFor >= v.Type.AI.StuckTimeout {
		st.StuckFor = 0
		st.WanderAngle += math.Pi
		st.NextSample = time.Time{}
		st.CooldownUntil = time.Time{}
	}
}

// steerToward turns the vehicle toward the desired heading within the turn
// budget for this tick, taking the shorter way around.
func steerToward(v *entity.Vehicle, desired, turnSpeed, dt float64) {
	delta := normalizeAngle(desired - v.Angle)
	budget := turnSpeed * dt
	switch {
	case math.Abs(delta) <= budget:
		v.Angle = desired
	case delta > 0:
		v.Angle += budget
	default:
		v.Angle -= budget
	}
	v.Angle = normalizeAngle(v.Angle)
}

// throttle accelerates toward the type's max speed. AI behaviors only ever
// push forward; slowing down is the terrain's job.
func throttle(v *entity.Vehicle, dt float64) {
	v.Speed += v.Type.Acceleration * dt
	if v.Speed > v.Type.MaxSpeed {
		v.Speed = v.Type.MaxSpeed
	}
}

// coast bleeds speed toward zero with the type's passive friction.
func coast(v *entity.Vehicle, dt float64) {
	decel := v.Type.Friction * dt
	switch {
	case v.Speed > decel:
		v.Speed -= decel
	case v.Speed < -decel:
		v.Speed += decel
	default:
		v.Speed = 0
	}
}

// normalizeAngle wraps an angle into (-Pi, Pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
