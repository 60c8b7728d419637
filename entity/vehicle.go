package entity

import (
	"math"
	"time"

	"github.com/rranshous/raceon/vec"
)

// SteeringState is the per-vehicle scratch space the steering behaviors
// read and write. It lives on the vehicle itself so behavior instances stay
// stateless and shareable across every vehicle of a type.
type SteeringState struct {
	// Target is the point the behavior is currently driving toward.
	Target    vec.Vec2
	HasTarget bool

	// WanderAngle is the drifting heading mixed into steering.
	WanderAngle float64

	// Avoidance cache: the held steer-away vector and the wall-clock
	// deadlines governing hold, cooldown, and resampling.
	Avoid         vec.Vec2
	Avoiding      bool
	AvoidExpires  time.Time
	CooldownUntil time.Time
	NextSample    time.Time

	// Stuck detection bookkeeping.
	LastPos    vec.Vec2
	HasLastPos bool
	StuckFor   float64
}

// Vehicle is a live instance in the simulation. Position is only ever
// written by the physics integrator (and the player bounds clamp);
// behaviors steer by mutating Angle and Speed.
type Vehicle struct {
	ID   uint64
	Type *Type

	Position vec.Vec2
	// Velocity is derived from Angle and Speed each integration step,
	// kept on the struct for observers.
	Velocity vec.Vec2
	// Angle is the facing in radians.
	Angle float64
	// Speed is signed scalar speed along the facing; negative is reverse.
	Speed float64

	Width  float64
	Height float64

	IsPlayer bool
	Alive    bool

	Steering SteeringState
}

// NewVehicle returns a live vehicle of the given type at pos, facing angle.
func NewVehicle(id uint64, t *Type, pos vec.Vec2, angle float64) *Vehicle {
	return &Vehicle{
		ID:       id,
		Type:     t,
		Position: pos,
		Angle:    angle,
		Width:    t.Width,
		Height:   t.Height,
		Alive:    true,
	}
}

// CollisionRadius is the body's bounding circle radius: the larger body
// dimension scaled by the type's radius multiplier.
func (v *Vehicle) CollisionRadius() float64 {
	return math.Max(v.Width, v.Height) * v.Type.Physics.RadiusMultiplier
}

// Front returns the point offset units ahead of the vehicle's center along
// its facing.
func (v *Vehicle) Front(offset float64) vec.Vec2 {
	return v.Position.Add(vec.FromAngle(v.Angle, offset))
}
