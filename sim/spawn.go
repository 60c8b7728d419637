package sim

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/rranshous/raceon/entity"
	"github.com/rranshous/raceon/events"
	"github.com/rranshous/raceon/vec"
)

// CreatePlayer instantiates the player vehicle at pos. Call once during
// setup, before the first tick.
func (s *Simulation) CreatePlayer(typeName string, pos vec.Vec2) (*entity.Vehicle, error) {
	t, ok := s.types.Lookup(typeName)
	if !ok {
		return nil, fmt.Errorf("create player: unknown vehicle type %q", typeName)
	}
	if _, ok := s.behaviors.Lookup(t.Behavior); !ok {
		return nil, fmt.Errorf("create player: unknown behavior %q", t.Behavior)
	}
	v := entity.NewVehicle(s.allocID(), t, pos, -math.Pi/2)
	v.IsPlayer = true
	s.player = v
	s.bus.Publish(events.NewSpawned(v))
	return v, nil
}

// Spawn creates a vehicle of the named type on demand, bypassing the
// interval timer and the live cap. With a nil position the type's anchor
// placement applies.
func (s *Simulation) Spawn(typeName string, at *vec.Vec2) (*entity.Vehicle, error) {
	t, ok := s.types.Lookup(typeName)
	if !ok {
		return nil, fmt.Errorf("spawn: unknown vehicle type %q", typeName)
	}
	return s.spawn(t, at)
}

// advanceSpawns runs the per-type timers. A timer past its interval spawns
// only while the type is under its live cap; a blocked timer keeps its
// accumulated time and fires the moment a slot frees up.
func (s *Simulation) advanceSpawns(dt float64) {
	for _, name := range s.types.Names() {
		t, _ := s.types.Lookup(name)
		if t.Spawn.Interval <= 0 {
			continue
		}
		s.timers[name] += dt
		if s.timers[name] < t.Spawn.Interval {
			continue
		}
		if s.counts[name] >= t.Spawn.MaxActive {
			continue
		}
		if _, err := s.spawn(t, nil); err != nil {
			s.log.Warn("spawn failed", zap.String("type", name), zap.Error(err))
		}
		s.timers[name] = 0
	}
}

func (s *Simulation) spawn(t *entity.Type, at *vec.Vec2) (*entity.Vehicle, error) {
	if _, ok := s.behaviors.Lookup(t.Behavior); !ok {
		return nil, fmt.Errorf("spawn %q: unknown behavior %q", t.Name, t.Behavior)
	}

	var pos vec.Vec2
	if at != nil {
		pos = *at
	} else {
		anchors := s.world.Anchors(t.Spawn.Anchor)
		if len(anchors) == 0 {
			return nil, fmt.Errorf("spawn %q: no %q anchors in world", t.Name, t.Spawn.Anchor)
		}
		anchor := anchors[s.rng.Intn(len(anchors))]
		dist := t.Spawn.DistanceMin + s.rng.Float64()*(t.Spawn.DistanceMax-t.Spawn.DistanceMin)
		bearing := s.rng.Float64() * 2 * math.Pi
		pos = anchor.Add(vec.FromAngle(bearing, dist))
	}

	v := entity.NewVehicle(s.allocID(), t, pos, s.rng.Float64()*2*math.Pi)
	v.Steering.WanderAngle = v.Angle
	s.vehicles = append(s.vehicles, v)
	s.counts[t.Name]++
	s.bus.Publish(events.NewSpawned(v))
	return v, nil
}
