// Package events defines the typed notifications the simulation publishes
// and the synchronous bus observers subscribe on. Events are fire-and-forget
// from the simulation's side; handlers cannot influence the tick that
// produced them.
package events

import (
	"github.com/rranshous/raceon/entity"
	"github.com/rranshous/raceon/vec"
)

// Type discriminates event kinds.
type Type uint8

const (
	VehicleSpawned Type = iota
	VehicleDestroyed
	VehicleEscaped
	PlayerWaterHit
	EnemyWaterHit
	PlayerRockHit
	EnemyRockHit
)

func (t Type) String() string {
	switch t {
	case VehicleSpawned:
		return "vehicle_spawned"
	case VehicleDestroyed:
		return "vehicle_destroyed"
	case VehicleEscaped:
		return "vehicle_escaped"
	case PlayerWaterHit:
		return "player_water_hit"
	case EnemyWaterHit:
		return "enemy_water_hit"
	case PlayerRockHit:
		return "player_rock_hit"
	case EnemyRockHit:
		return "enemy_rock_hit"
	default:
		return "unknown"
	}
}

// Cause says what removed a destroyed vehicle.
type Cause uint8

const (
	// CausePlayer marks a wreck credited to the player.
	CausePlayer Cause = iota
	// CauseEnvironment covers everything else.
	CauseEnvironment
)

func (c Cause) String() string {
	switch c {
	case CausePlayer:
		return "player"
	default:
		return "environment"
	}
}

// Event is a single simulation notification. Type, Vehicle, TypeName, and
// Position are always set; the rest is filled per kind.
type Event struct {
	Type     Type
	Vehicle  *entity.Vehicle
	TypeName string
	Position vec.Vec2
	Velocity vec.Vec2

	// Destruction only.
	Cause Cause

	// Obstacle hits only: the obstacle struck, the center-to-center
	// collision vector at detection, its unit normal, and how deep the
	// candidate position had penetrated.
	ObstaclePos    vec.Vec2
	ObstacleRadius float64
	Collision      vec.Vec2
	Normal         vec.Vec2
	Overlap        float64
}

// NewSpawned reports a vehicle entering the simulation.
func NewSpawned(v *entity.Vehicle) Event {
	return Event{
		Type:     VehicleSpawned,
		Vehicle:  v,
		TypeName: v.Type.Name,
		Position: v.Position,
		Velocity: v.Velocity,
	}
}

// NewDestroyed reports a vehicle wrecked, with what wrecked it.
func NewDestroyed(v *entity.Vehicle, cause Cause) Event {
	return Event{
		Type:     VehicleDestroyed,
		Vehicle:  v,
		TypeName: v.Type.Name,
		Position: v.Position,
		Velocity: v.Velocity,
		Cause:    cause,
	}
}

// NewEscaped reports a vehicle that reached the world edge and left play.
func NewEscaped(v *entity.Vehicle) Event {
	return Event{
		Type:     VehicleEscaped,
		Vehicle:  v,
		TypeName: v.Type.Name,
		Position: v.Position,
		Velocity: v.Velocity,
	}
}

// NewObstacleHit reports a bounce off water or rock. The vehicle's position
// and velocity are its post-bounce state; collision is the vector from the
// obstacle center to the pre-bounce position.
func NewObstacleHit(t Type, v *entity.Vehicle, obstaclePos vec.Vec2, obstacleRadius float64, collision vec.Vec2, overlap float64) Event {
	return Event{
		Type:           t,
		Vehicle:        v,
		TypeName:       v.Type.Name,
		Position:       v.Position,
		Velocity:       v.Velocity,
		ObstaclePos:    obstaclePos,
		ObstacleRadius: obstacleRadius,
		Collision:      collision,
		Normal:         collision.Normalize(),
		Overlap:        overlap,
	}
}
