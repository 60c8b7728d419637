// Package sim owns the live vehicle set and the tick loop: automatic
// spawning, behavior and physics updates, and escape and destruction
// pruning. Everything runs on the caller's goroutine; one vehicle is fully
// updated before the next begins.
package sim

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/rranshous/raceon/entity"
	"github.com/rranshous/raceon/events"
	"github.com/rranshous/raceon/physics"
	"github.com/rranshous/raceon/steering"
	"github.com/rranshous/raceon/vec"
	"github.com/rranshous/raceon/world"
)

// MaxTickSeconds caps the simulated time of a single tick. A stalled frame
// plays back as brief slow motion instead of one huge jump.
const MaxTickSeconds = physics.MaxSubsteps * physics.MaxStep

// Params are the simulation knobs wired in from config.
type Params struct {
	// EscapeMargin is how close to a world edge counts as escaped.
	EscapeMargin float64
	Seed         int64
}

// Simulation drives the vehicles through the world.
type Simulation struct {
	world     *world.World
	types     *entity.Registry
	behaviors *steering.Registry
	bus       *events.Bus
	log       *zap.Logger
	rng       *rand.Rand

	escapeMargin float64

	player   *entity.Vehicle
	vehicles []*entity.Vehicle
	timers   map[string]float64
	counts   map[string]int
	nextID   uint64
	ticks    uint64
}

// New builds a simulation over w. The registries are the caller's: types
// from config, behaviors with whatever RNG and clock the caller wants.
func New(w *world.World, types *entity.Registry, behaviors *steering.Registry, bus *events.Bus, p Params, log *zap.Logger) *Simulation {
	if log == nil {
		log = zap.NewNop()
	}
	return &Simulation{
		world:        w,
		types:        types,
		behaviors:    behaviors,
		bus:          bus,
		log:          log,
		rng:          rand.New(rand.NewSource(p.Seed)),
		escapeMargin: p.EscapeMargin,
		timers:       make(map[string]float64),
		counts:       make(map[string]int),
	}
}

// Tick advances the whole simulation by dt seconds: spawn timers, then the
// player, then each AI vehicle (behavior and physics together), then
// pruning. Oversized dt is clamped to MaxTickSeconds.
func (s *Simulation) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	if dt > MaxTickSeconds {
		dt = MaxTickSeconds
	}
	s.ticks++

	s.advanceSpawns(dt)
	s.updatePlayer(dt)
	s.updateVehicles(dt)
	s.prune()
}

// Player returns the player vehicle, nil before CreatePlayer.
func (s *Simulation) Player() *entity.Vehicle {
	return s.player
}

// Vehicles returns the live AI vehicle slice. Callers must treat it as
// read-only; it is reused between ticks.
func (s *Simulation) Vehicles() []*entity.Vehicle {
	return s.vehicles
}

// LiveCount returns how many live vehicles of the named type exist.
func (s *Simulation) LiveCount(typeName string) int {
	return s.counts[typeName]
}

// Ticks returns how many ticks have run.
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// Destroy marks a vehicle dead and reports it with the given cause.
// The carcass drops out of the vehicle set on the next prune.
func (s *Simulation) Destroy(v *entity.Vehicle, cause events.Cause) {
	if v == nil || !v.Alive {
		return
	}
	v.Alive = false
	s.bus.Publish(events.NewDestroyed(v, cause))
	s.log.Debug("vehicle destroyed",
		zap.Uint64("id", v.ID),
		zap.String("type", v.Type.Name),
		zap.String("cause", cause.String()),
	)
}

// CollisionsWithPlayer returns every live AI vehicle whose collision circle
// overlaps the player's. Deciding who wrecked whom is the caller's business.
func (s *Simulation) CollisionsWithPlayer() []*entity.Vehicle {
	if s.player == nil || !s.player.Alive {
		return nil
	}
	var hits []*entity.Vehicle
	for _, v := range s.vehicles {
		if !v.Alive {
			continue
		}
		if physics.Overlap(s.player, v) {
			hits = append(hits, v)
		}
	}
	return hits
}

func (s *Simulation) updatePlayer(dt float64) {
	v := s.player
	if v == nil || !v.Alive {
		return
	}
	if b, ok := s.behaviors.Lookup(v.Type.Behavior); ok {
		b.Update(v, s.world, dt)
	}
	physics.Advance(v, s.world, dt, s.bus)
	s.clampToBounds(v)
}

func (s *Simulation) updateVehicles(dt float64) {
	playerLive := s.player != nil && s.player.Alive
	for _, v := range s.vehicles {
		if !v.Alive {
			continue
		}
		b, ok := s.behaviors.Lookup(v.Type.Behavior)
		if !ok {
			continue
		}
		if p, isPursuer := b.(steering.Pursuer); isPursuer && playerLive {
			p.SetQuarry(v, s.player.Position)
		}
		b.Update(v, s.world, dt)
		physics.Advance(v, s.world, dt, s.bus)
	}
}

// clampToBounds pins the player inside the world. Only the player is
// clamped; AI vehicles that reach the edge are escaping on purpose.
func (s *Simulation) clampToBounds(v *entity.Vehicle) {
	r := v.CollisionRadius()
	v.Position = vec.New(
		clamp(v.Position.X, r, s.world.Width-r),
		clamp(v.Position.Y, r, s.world.Height-r),
	)
}

// prune sweeps the vehicle slice: destroyed carcasses drop out, and live
// vehicles past the escape margin leave play with an escape event.
func (s *Simulation) prune() {
	kept := s.vehicles[:0]
	for _, v := range s.vehicles {
		switch {
		case !v.Alive:
			s.counts[v.Type.Name]--
		case s.hasEscaped(v):
			v.Alive = false
			s.counts[v.Type.Name]--
			s.bus.Publish(events.NewEscaped(v))
			s.log.Debug("vehicle escaped",
				zap.Uint64("id", v.ID),
				zap.String("type", v.Type.Name),
			)
		default:
			kept = append(kept, v)
		}
	}
	for i := len(kept); i < len(s.vehicles); i++ {
		s.vehicles[i] = nil
	}
	s.vehicles = kept
}

func (s *Simulation) hasEscaped(v *entity.Vehicle) bool {
	m := s.escapeMargin
	p := v.Position
	return p.X < m || p.X > s.world.Width-m || p.Y < m || p.Y > s.world.Height-m
}

func (s *Simulation) allocID() uint64 {
	s.nextID++
	return s.nextID
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
