package steering

import (
	"math/rand"
	"time"

	"github.com/rranshous/raceon/entity"
	"github.com/rranshous/raceon/vec"
	"github.com/rranshous/raceon/world"
)

const (
	runnerTargetWeight = 0.85
	runnerWanderWeight = 0.15

	// edgeInset pulls the flight target just inside the world border so it
	// stays a reachable point rather than a line.
	edgeInset = 10.0
)

// Runner bolts for the fence: at first update it picks a point near a random
// world edge and drives for it until it escapes or gets wrecked.
type Runner struct {
	core
}

// NewRunner returns a runner behavior. A nil now falls back to time.Now.
func NewRunner(rng *rand.Rand, now func() time.Time) *Runner {
	return &Runner{core: newCore(rng, now)}
}

func (r *Runner) Update(v *entity.Vehicle, w *world.World, dt float64) {
	if !v.Alive {
		return
	}
	st := &v.Steering
	if !st.HasTarget {
		st.Target = r.pickEdgePoint(w)
		st.HasTarget = true
	}
	r.drive(v, w, dt, runnerTargetWeight, runnerWanderWeight)
}

func (r *Runner) pickEdgePoint(w *world.World) vec.Vec2 {
	switch r.rng.Intn(4) {
	case 0:
		return vec.New(edgeInset, r.rng.Float64()*w.Height)
	case 1:
		return vec.New(w.Width-edgeInset, r.rng.Float64()*w.Height)
	case 2:
		return vec.New(r.rng.Float64()*w.Width, edgeInset)
	default:
		return vec.New(r.rng.Float64()*w.Width, w.Height-edgeInset)
	}
}
