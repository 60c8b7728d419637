package steering

import (
	"github.com/rranshous/raceon/entity"
	"github.com/rranshous/raceon/world"
)

// Intents are the player's controls for one tick, already decoded from raw
// input by the shell.
type Intents struct {
	Accelerate bool
	Brake      bool
	SteerLeft  bool
	SteerRight bool
}

// Player translates input intents into angle and speed changes. Unlike the
// AI behaviors it never wanders and never consults the avoidance grid; the
// driver is the steering.
type Player struct {
	intents Intents
}

// NewPlayer returns a player behavior with no buttons held.
func NewPlayer() *Player {
	return &Player{}
}

// SetIntents replaces the controls consumed by the next Update.
func (p *Player) SetIntents(i Intents) {
	p.intents = i
}

func (p *Player) Update(v *entity.Vehicle, w *world.World, dt float64) {
	if !v.Alive {
		return
	}
	t := v.Type

	switch {
	case p.intents.Accelerate:
		v.Speed += t.Acceleration * dt
		if v.Speed > t.MaxSpeed {
			v.Speed = t.MaxSpeed
		}
	case p.intents.Brake:
		// Brake bleeds forward speed through zero into reverse.
		v.Speed -= t.Acceleration * dt
		if floor := -t.MaxSpeed * t.ReverseFraction; v.Speed < floor {
			v.Speed = floor
		}
	default:
		coast(v, dt)
	}

	if p.intents.SteerLeft {
		v.Angle -= t.TurnSpeed * dt
	}
	if p.intents.SteerRight {
		v.Angle += t.TurnSpeed * dt
	}
	v.Angle = normalizeAngle(v.Angle)
}
