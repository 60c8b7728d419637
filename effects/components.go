// Package effects runs the cosmetic layer: particles, tire tracks, and
// screen shake. It subscribes to simulation events and never feeds back
// into physics.
package effects

import (
	"github.com/rranshous/raceon/vec"
)

// ParticleKind selects how the renderer draws a particle.
type ParticleKind uint8

const (
	KindSplash ParticleKind = iota
	KindSpark
	KindDust
	KindSmoke
)

// Position is the ECS position component.
type Position struct {
	Pos vec.Vec2
}

// Motion is the ECS velocity component. Drag damps velocity per second.
type Motion struct {
	Vel  vec.Vec2
	Drag float64
}

// Particle ages out after TTL seconds. Life holds the initial TTL so the
// renderer can fade by remaining fraction.
type Particle struct {
	TTL  float64
	Life float64
	Size float64
	Kind ParticleKind
}

// Track is one tire mark left on the ground.
type Track struct {
	TTL   float64
	Life  float64
	Angle float64
	Width float64
}
