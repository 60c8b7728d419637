package steering

import (
	"math/rand"
	"time"

	"github.com/rranshous/raceon/entity"
	"github.com/rranshous/raceon/vec"
	"github.com/rranshous/raceon/world"
)

const (
	chaserTargetWeight = 0.90
	chaserWanderWeight = 0.10
)

// Chaser hunts a moving mark. The simulation pushes the mark's position via
// SetQuarry before each update; if the pushes stop (the player wrecked), the
// chaser keeps driving at the last position it saw.
type Chaser struct {
	core
}

// NewChaser returns a chaser behavior. A nil now falls back to time.Now.
func NewChaser(rng *rand.Rand, now func() time.Time) *Chaser {
	return &Chaser{core: newCore(rng, now)}
}

// SetQuarry updates the vehicle's hunt target.
func (c *Chaser) SetQuarry(v *entity.Vehicle, target vec.Vec2) {
	v.Steering.Target = target
	v.Steering.HasTarget = true
}

func (c *Chaser) Update(v *entity.Vehicle, w *world.World, dt float64) {
	if !v.Alive {
		return
	}
	st := &v.Steering
	if !st.HasTarget {
		// No quarry yet; hold near the spawn point.
		st.Target = v.Position
		st.HasTarget = true
	}
	c.drive(v, w, dt, chaserTargetWeight, chaserWanderWeight)
}
