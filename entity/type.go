// Package entity defines the vehicles that populate the world: the
// config-driven type definitions and the live instances the simulation
// updates every tick.
package entity

import "fmt"

// Physics holds the per-type collision and terrain response tuning consumed
// by the integrator.
type Physics struct {
	// RadiusMultiplier scales max(Width, Height) into the collision radius.
	RadiusMultiplier float64
	// BounceDistance is how far a vehicle is pushed back off an obstacle.
	BounceDistance float64
	// BounceFactor scales speed on impact; negative values throw the
	// vehicle into reverse.
	BounceFactor float64
	// TerrainFrictionMultiplier converts a zone's slowdown into a
	// deceleration in units/sec^2.
	TerrainFrictionMultiplier float64
	// MinSpeedMultiplier floors forward speed under terrain friction as a
	// fraction of MaxSpeed, so mud slows but never strands.
	MinSpeedMultiplier float64
	// MinReverseSpeedMultiplier is the same floor for reverse.
	MinReverseSpeedMultiplier float64
	// WaterQueryMultiplier inflates the collision radius when testing
	// against water.
	WaterQueryMultiplier float64
	// RockQueryMultiplier inflates the collision radius when testing
	// against rocks.
	RockQueryMultiplier float64
}

// AITuning holds the steering knobs shared by the AI behaviors.
type AITuning struct {
	// WanderStrength scales the random drift added to the wander heading.
	WanderStrength float64
	// StuckTimeout is how long (seconds) a vehicle may sit nearly
	// motionless before its wander heading is flipped.
	StuckTimeout float64
	// AvoidDuration is how long (seconds) a sampled avoidance vector is
	// held before releasing.
	AvoidDuration float64
	// AvoidCooldown is the rest period (seconds) after an avoidance hold
	// expires before the grid is sampled again.
	AvoidCooldown float64
}

// SpawnPolicy controls automatic spawning of a type. A zero Interval marks
// the type manual-spawn only.
type SpawnPolicy struct {
	// Interval is the seconds between automatic spawn attempts.
	Interval float64
	// MaxActive caps how many live instances the timer will maintain.
	MaxActive int
	// Anchor names the world anchor group new instances appear near.
	Anchor string
	// DistanceMin and DistanceMax bound the spawn distance from the anchor.
	DistanceMin float64
	DistanceMax float64
}

// Type is an immutable vehicle definition shared by every instance of that
// kind. Built once from config at startup.
type Type struct {
	Name     string
	Behavior string

	// Width is across the body, Height along the facing axis.
	Width  float64
	Height float64

	MaxSpeed     float64
	Acceleration float64
	// Friction is the passive coast deceleration when not under throttle.
	Friction  float64
	TurnSpeed float64
	// ReverseFraction caps reverse speed as a fraction of MaxSpeed.
	ReverseFraction float64

	Physics Physics
	AI      AITuning
	Spawn   SpawnPolicy

	// Extra carries opaque gameplay values the simulation never reads,
	// such as the point award for wrecking this type.
	Extra map[string]float64
}

// Registry maps type names to their definitions, preserving registration
// order for iteration.
type Registry struct {
	types map[string]*Type
	order []string
}

// NewRegistry returns an empty type registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*Type)}
}

// Register adds a type definition. Names must be non-empty and unique.
func (r *Registry) Register(t *Type) error {
	if t.Name == "" {
		return fmt.Errorf("register vehicle type: empty name")
	}
	if _, exists := r.types[t.Name]; exists {
		return fmt.Errorf("register vehicle type %q: already registered", t.Name)
	}
	r.types[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (*Type, bool) {
	t, ok := r.types[name]
	return t, ok
}

// Names returns the registered type names in registration order.
func (r *Registry) Names() []string {
	return r.order
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.order)
}
