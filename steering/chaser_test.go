package steering

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rranshous/raceon/vec"
	"github.com/rranshous/raceon/world"
)

func TestChaserHoldsSpawnPointWithoutQuarry(t *testing.T) {
	w := world.New(2400, 1800)
	w.BuildAvoidanceGrid()
	c := NewChaser(rand.New(rand.NewSource(1)), newFakeClock().Now)

	v := aiVehicle(vec.New(500, 500), 0)
	v.Speed = 20
	c.Update(v, w, 0.1)

	if v.Steering.Target != vec.New(500, 500) {
		t.Errorf("default target = %v, want the spawn point", v.Steering.Target)
	}
	// On top of its own target the chaser coasts rather than drives.
	if math.Abs(v.Speed-16) > 1e-9 {
		t.Errorf("speed = %v, want coasted to 16", v.Speed)
	}
}

func TestChaserFollowsQuarry(t *testing.T) {
	w := world.New(2400, 1800)
	w.BuildAvoidanceGrid()
	clock := newFakeClock()
	c := NewChaser(rand.New(rand.NewSource(1)), clock.Now)

	v := aiVehicle(vec.New(1200, 900), -2)

	const dt = 0.05
	for i := 0; i < 100; i++ {
		c.SetQuarry(v, vec.New(2000, 900))
		c.Update(v, w, dt)
	}

	if math.Abs(normalizeAngle(v.Angle)) > 0.1 {
		t.Errorf("angle = %v, want converged toward the quarry at +X", v.Angle)
	}
	if v.Speed != v.Type.MaxSpeed {
		t.Errorf("speed = %v, want max under pursuit", v.Speed)
	}

	// The quarry moves; the chaser swings after it.
	for i := 0; i < 100; i++ {
		c.SetQuarry(v, vec.New(1200, 1800))
		c.Update(v, w, dt)
	}
	// Wander keeps a fixed 10% pull, so convergence sits near +Y rather
	// than exactly on it.
	if math.Abs(normalizeAngle(v.Angle-math.Pi/2)) > 0.15 {
		t.Errorf("angle = %v, want converged near the moved quarry at +Y", v.Angle)
	}
}

func TestChaserKeepsLastKnownQuarry(t *testing.T) {
	w := world.New(2400, 1800)
	w.BuildAvoidanceGrid()
	c := NewChaser(rand.New(rand.NewSource(1)), newFakeClock().Now)

	v := aiVehicle(vec.New(1200, 900), 0)
	c.SetQuarry(v, vec.New(300, 900))
	c.Update(v, w, 0.05)

	// Pushes stop; the last seen position stays the target.
	for i := 0; i < 10; i++ {
		c.Update(v, w, 0.05)
	}

	if v.Steering.Target != vec.New(300, 900) {
		t.Errorf("target = %v, want the last pushed quarry position", v.Steering.Target)
	}
	if !v.Steering.HasTarget {
		t.Error("chaser dropped its target")
	}
}
